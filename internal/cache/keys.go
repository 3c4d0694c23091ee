package cache

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Keys of the cached incident lists
const (
	AllIncidentsKey    = "incidents:all"
	ActionIncidentsKey = "incidents:actions"
)

// IncidentGenerationKey counts incident invalidations; list keys carry its value
const IncidentGenerationKey = "incidents:gen"

// StudentIncidentsKey is the key of the incident list of one student
func StudentIncidentsKey(studentID string) string {
	return "incidents:student:" + studentID
}

// VersionedKey scopes a list key to one invalidation generation
func VersionedKey(key string, gen int64) string {
	return key + "@" + strconv.FormatInt(gen, 10)
}

// IncidentGeneration returns the current invalidation generation, 0 before the first one
func IncidentGeneration(ctx context.Context, c Cache) (int64, error) {
	var gen int64
	if _, err := c.Get(ctx, IncidentGenerationKey, &gen); err != nil {
		return 0, err
	}
	return gen, nil
}

// InvalidateIncidents moves every incident list to a new generation.
// A list loaded under an older generation is written to a key nobody reads anymore.
func InvalidateIncidents(ctx context.Context, c Cache) {
	if _, err := c.Incr(ctx, IncidentGenerationKey); err != nil {
		logrus.WithFields(logrus.Fields{"key": IncidentGenerationKey, "error": err.Error()}).Warn("Cache invalidation failed")
	}
}
