package middleware

import (
	"school_system/internal/store" // Data access layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

const sessionKey = "session"

// Session opens a store session for the request and closes it on every exit path
func Session(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := store.Open(c.Request.Context(), db)
		defer func() {
			// Close rolls back whatever the handler did not commit
			if err := s.Close(); err != nil {
				logrus.WithFields(logrus.Fields{
					"path":  c.Request.URL.Path,
					"error": err.Error(),
				}).Error("Failed to close session")
			}
		}()
		c.Set(sessionKey, s)
		c.Next()
	}
}

// SessionFrom returns the session opened by the Session middleware
func SessionFrom(c *gin.Context) *store.Session {
	return c.MustGet(sessionKey).(*store.Session)
}
