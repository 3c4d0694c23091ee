package store

import (
	"school_system/internal/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateStaffMember inserts a staff member with an already parsed role
func CreateStaffMember(s *Session, in domain.StaffInput, role domain.Role) (domain.StaffMember, error) {
	row := newStaffRow(in, role)
	err := s.write(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return domain.StaffMember{}, wrapWrite(err, "creating staff member")
	}
	return toStaff(row), nil
}

// GetStaffByCredentials matches username and password exactly; nil when nothing matches
func GetStaffByCredentials(s *Session, username, password string) (*domain.StaffMember, error) {
	return findStaff(s, "finding staff by credentials", "username = ? AND password = ?", username, password)
}

// GetStaffByID returns the staff member with the given id, or nil
func GetStaffByID(s *Session, id uint) (*domain.StaffMember, error) {
	return findStaff(s, "finding staff by id", "id = ?", id)
}

func findStaff(s *Session, op string, query string, args ...any) (*domain.StaffMember, error) {
	var row staffRow
	err := s.read(func(tx *gorm.DB) error {
		return tx.Where(query, args...).First(&row).Error
	})
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	m := toStaff(row)
	return &m, nil
}

// ListStaff returns every staff member in insertion order
func ListStaff(s *Session) ([]domain.StaffMember, error) {
	var rows []staffRow
	err := s.read(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing staff")
	}
	return mapRows(rows, toStaff), nil
}

// UpdateStaffMember overwrites every field of a staff member; nil when the id is unknown
func UpdateStaffMember(s *Session, id uint, in domain.StaffInput, role domain.Role) (*domain.StaffMember, error) {
	var row staffRow
	found := true
	err := s.write(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			if notFound(err) {
				found = false
				return nil
			}
			return err
		}
		row.Name = in.Name
		row.Username = in.Username
		row.Password = in.Password
		row.Role = string(role)
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, wrapWrite(err, "updating staff member")
	}
	if !found {
		return nil, nil
	}
	m := toStaff(row)
	return &m, nil
}

// DeleteStaffMember removes a staff member
func DeleteStaffMember(s *Session, id uint) (bool, error) {
	var affected int64
	err := s.write(func(tx *gorm.DB) error {
		res := tx.Delete(&staffRow{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, errors.Wrap(err, "deleting staff member")
	}
	return affected > 0, nil
}
