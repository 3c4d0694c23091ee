package store

import (
	"school_system/internal/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateStudent inserts a student and returns it with its generated id
func CreateStudent(s *Session, in domain.StudentInput) (domain.Student, error) {
	row := newStudentRow(in)
	err := s.write(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return domain.Student{}, wrapWrite(err, "creating student")
	}
	return toStudent(row), nil
}

// GetStudentByCredentials matches username and password exactly; nil when nothing matches
func GetStudentByCredentials(s *Session, username, password string) (*domain.Student, error) {
	return findStudent(s, "finding student by credentials", "username = ? AND password = ?", username, password)
}

// GetStudentByID returns the student with the given id, or nil
func GetStudentByID(s *Session, id uint) (*domain.Student, error) {
	return findStudent(s, "finding student by id", "id = ?", id)
}

func findStudent(s *Session, op string, query string, args ...any) (*domain.Student, error) {
	var row studentRow
	err := s.read(func(tx *gorm.DB) error {
		return tx.Where(query, args...).First(&row).Error
	})
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	st := toStudent(row)
	return &st, nil
}

// ListStudents returns every student in insertion order
func ListStudents(s *Session) ([]domain.Student, error) {
	var rows []studentRow
	err := s.read(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing students")
	}
	return mapRows(rows, toStudent), nil
}

// UpdateStudent overwrites every field of a student; nil when the id is unknown
func UpdateStudent(s *Session, id uint, in domain.StudentInput) (*domain.Student, error) {
	var row studentRow
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
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, wrapWrite(err, "updating student")
	}
	if !found {
		return nil, nil
	}
	st := toStudent(row)
	return &st, nil
}

// DeleteStudent removes a student. Incidents naming the student are kept.
func DeleteStudent(s *Session, id uint) (bool, error) {
	var affected int64
	err := s.write(func(tx *gorm.DB) error {
		res := tx.Delete(&studentRow{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, errors.Wrap(err, "deleting student")
	}
	return affected > 0, nil
}
