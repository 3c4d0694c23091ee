package store

import (
	"school_system/internal/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateUser inserts a signed-up user
func CreateUser(s *Session, in domain.UserInput) (domain.User, error) {
	row := newUserRow(in)
	err := s.write(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return domain.User{}, wrapWrite(err, "creating user")
	}
	return toUser(row), nil
}

// ListUsers returns every user in insertion order
func ListUsers(s *Session) ([]domain.User, error) {
	var rows []userRow
	err := s.read(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing users")
	}
	return mapRows(rows, toUser), nil
}
