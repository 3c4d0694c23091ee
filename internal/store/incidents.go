package store

import (
	"school_system/internal/domain"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateIncident records a new incident with status Pending.
// StudentID is stored as given; it does not have to name an existing student.
func CreateIncident(s *Session, in domain.IncidentInput) (domain.Incident, error) {
	row := newIncidentRow(in)
	err := s.write(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return domain.Incident{}, wrapWrite(err, "creating incident")
	}
	return toIncident(row), nil
}

// GetIncidentByID returns the incident with the given id, or nil
func GetIncidentByID(s *Session, id uint) (*domain.Incident, error) {
	var row incidentRow
	err := s.read(func(tx *gorm.DB) error {
		return tx.First(&row, id).Error
	})
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding incident")
	}
	inc := toIncident(row)
	return &inc, nil
}

// ListIncidents returns all incidents in insertion order
func ListIncidents(s *Session) ([]domain.Incident, error) {
	return listIncidents(s, "listing incidents", nil)
}

// ListIncidentsByStudent returns the incidents whose student id equals studentID
func ListIncidentsByStudent(s *Session, studentID string) ([]domain.Incident, error) {
	return listIncidents(s, "listing student incidents", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("student_id = ?", studentID)
	})
}

// ListActionIncidents returns the incidents a committee assigned an action to
func ListActionIncidents(s *Session) ([]domain.Incident, error) {
	return listIncidents(s, "listing action incidents", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status LIKE ?", "%"+domain.ActionAssignedMarker+"%")
	})
}

func listIncidents(s *Session, op string, scope func(*gorm.DB) *gorm.DB) ([]domain.Incident, error) {
	var rows []incidentRow
	err := s.read(func(tx *gorm.DB) error {
		q := tx.Model(&incidentRow{})
		if scope != nil {
			q = scope(q)
		}
		return q.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	return mapRows(rows, toIncident), nil
}

// UpdateIncidentStatus replaces the status text; nil when the id is unknown
func UpdateIncidentStatus(s *Session, id uint, status string) (*domain.Incident, error) {
	var row incidentRow
	found := true
	err := s.write(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			if notFound(err) {
				found = false
				return nil
			}
			return err
		}
		row.Status = status
		return tx.Model(&row).Update("status", status).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "updating incident status")
	}
	if !found {
		return nil, nil
	}
	inc := toIncident(row)
	return &inc, nil
}

// AssignAction sets the status to "Action Assigned: <action>"
func AssignAction(s *Session, id uint, action string) (*domain.Incident, error) {
	return UpdateIncidentStatus(s, id, domain.ActionAssignedStatus(action))
}
