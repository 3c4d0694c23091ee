package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrUniqueViolation is returned when an insert or update hits a unique key
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrSessionClosed is returned by operations on a closed Session
	ErrSessionClosed = errors.New("session closed")
)

// driver messages for drivers that do not translate their errors
var duplicateMessages = []string{
	"UNIQUE constraint failed", // sqlite
	"Duplicate entry",          // mysql
	"duplicate key value",      // postgres
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	for _, m := range duplicateMessages {
		if strings.Contains(err.Error(), m) {
			return true
		}
	}
	return false
}

// wrapWrite annotates a failed write, mapping unique key failures onto ErrUniqueViolation
func wrapWrite(err error, op string) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return errors.Wrapf(ErrUniqueViolation, "%s: %v", op, err)
	}
	return errors.Wrap(err, op)
}

// notFound reports whether err means the lookup matched no row
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
