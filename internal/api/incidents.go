package api

import (
	"strconv" // String conversion
	"time"    // Cache TTL

	"school_system/internal/cache"      // Incident list cache
	"school_system/internal/domain"     // Importing domain models
	"school_system/internal/middleware" // Session access
	"school_system/internal/store"      // Data access layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// IncidentLists reads incident lists through the cache
type IncidentLists struct {
	Cache cache.Cache   // Redis or no-op cache
	TTL   time.Duration // Lifetime of a cached list
}

// All returns every incident
func (l IncidentLists) All(c *gin.Context) ([]domain.Incident, error) {
	return l.load(c, cache.AllIncidentsKey, store.ListIncidents)
}

// Actions returns the incidents with an assigned action
func (l IncidentLists) Actions(c *gin.Context) ([]domain.Incident, error) {
	return l.load(c, cache.ActionIncidentsKey, store.ListActionIncidents)
}

// ForStudent returns the incidents recorded against a student id
func (l IncidentLists) ForStudent(c *gin.Context, studentID uint) ([]domain.Incident, error) {
	ref := strconv.FormatUint(uint64(studentID), 10)
	return l.load(c, cache.StudentIncidentsKey(ref), func(s *store.Session) ([]domain.Incident, error) {
		return store.ListIncidentsByStudent(s, ref)
	})
}

// Invalidate retires every cached incident list; call it after the mutation committed
func (l IncidentLists) Invalidate(c *gin.Context) {
	cache.InvalidateIncidents(c.Request.Context(), l.Cache)
}

// load reads a list under the current generation.
// The request's read snapshot is dropped first so the list is read after the generation is.
func (l IncidentLists) load(c *gin.Context, key string, read func(s *store.Session) ([]domain.Incident, error)) ([]domain.Incident, error) {
	ctx := c.Request.Context()
	s := middleware.SessionFrom(c)
	if err := s.Rollback(); err != nil {
		return nil, err
	}
	gen, err := cache.IncidentGeneration(ctx, l.Cache)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache generation unavailable")
		return read(s)
	}
	return cache.Load(ctx, l.Cache, cache.VersionedKey(key, gen), l.TTL, func() ([]domain.Incident, error) {
		return read(s)
	})
}
