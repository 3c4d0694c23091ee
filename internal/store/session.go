package store

import (
	"context" // Request scoped cancellation

	"github.com/pkg/errors" // Error wrapping
	"gorm.io/gorm"          // GORM ORM library
)

// Session is the unit of work of a single request.
// A transaction is begun lazily by the first operation and ends with Commit or
// Rollback; the next operation begins a new one. Close must always be called.
type Session struct {
	db     *gorm.DB // Handle bound to the request context
	tx     *gorm.DB // Open transaction, nil between commits
	closed bool     // Set by Close
}

// Open starts a session on db; no connection is taken until the first operation
func Open(ctx context.Context, db *gorm.DB) *Session {
	return &Session{db: db.WithContext(ctx)}
}

// conn returns the open transaction, beginning one if needed
func (s *Session) conn() (*gorm.DB, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.tx == nil {
		tx := s.db.Begin()
		if tx.Error != nil {
			return nil, errors.Wrap(tx.Error, "beginning transaction")
		}
		s.tx = tx
	}
	return s.tx, nil
}

// Commit commits the open transaction, if any
func (s *Session) Commit() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit().Error
	s.tx = nil
	return errors.Wrap(err, "committing transaction")
}

// Rollback discards the open transaction, if any
func (s *Session) Rollback() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback().Error
	s.tx = nil
	return errors.Wrap(err, "rolling back transaction")
}

// Close rolls back uncommitted work and releases the connection. Safe to call twice.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	err := s.Rollback()
	s.closed = true
	return err
}

// read runs fn inside the open transaction
func (s *Session) read(fn func(tx *gorm.DB) error) error {
	tx, err := s.conn()
	if err != nil {
		return err
	}
	return fn(tx)
}

// write runs fn and commits it on its own, rolling back on failure
func (s *Session) write(fn func(tx *gorm.DB) error) error {
	tx, err := s.conn()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = s.Rollback()
		return err
	}
	return s.Commit()
}
