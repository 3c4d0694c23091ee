package store

import (
	"time"

	"school_system/internal/domain"
)

// Persisted shapes. Handlers only ever see the domain structs.

type userRow struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:255"`
	Email string `gorm:"size:255;uniqueIndex"`
}

func (userRow) TableName() string { return "users" }

type studentRow struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;index"`
	Username string `gorm:"size:255;uniqueIndex"`
	Password string `gorm:"size:255"`
}

func (studentRow) TableName() string { return "students" }

type staffRow struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null"`
	Username string `gorm:"size:255;uniqueIndex;not null"`
	Password string `gorm:"size:255;not null"`
	Role     string `gorm:"size:32;index;not null"`
}

func (staffRow) TableName() string { return "staff_members" }

type incidentRow struct {
	ID           uint      `gorm:"primaryKey"`
	StudentID    string    `gorm:"size:64;index"`
	StudentName  string    `gorm:"size:255"`
	ClassName    string    `gorm:"size:255"`
	Department   string    `gorm:"size:255"`
	IncidentDate time.Time `gorm:"type:date"`
	Description  string    `gorm:"type:text"`
	Status       string    `gorm:"size:255;default:Pending"`
}

func (incidentRow) TableName() string { return "discipline_incidents" }

func toUser(r userRow) domain.User {
	return domain.User{ID: r.ID, Name: r.Name, Email: r.Email}
}

func newUserRow(in domain.UserInput) userRow {
	return userRow{Name: in.Name, Email: in.Email}
}

func toStudent(r studentRow) domain.Student {
	return domain.Student{ID: r.ID, Name: r.Name, Username: r.Username, Password: r.Password}
}

func newStudentRow(in domain.StudentInput) studentRow {
	return studentRow{Name: in.Name, Username: in.Username, Password: in.Password}
}

func toStaff(r staffRow) domain.StaffMember {
	return domain.StaffMember{
		ID:       r.ID,
		Name:     r.Name,
		Username: r.Username,
		Password: r.Password,
		Role:     domain.Role(r.Role),
	}
}

func newStaffRow(in domain.StaffInput, role domain.Role) staffRow {
	return staffRow{Name: in.Name, Username: in.Username, Password: in.Password, Role: string(role)}
}

func toIncident(r incidentRow) domain.Incident {
	return domain.Incident{
		ID:           r.ID,
		StudentID:    r.StudentID,
		StudentName:  r.StudentName,
		ClassName:    r.ClassName,
		Department:   r.Department,
		IncidentDate: dateOnly(r.IncidentDate),
		Description:  r.Description,
		Status:       r.Status,
	}
}

func newIncidentRow(in domain.IncidentInput) incidentRow {
	return incidentRow{
		StudentID:    in.StudentID,
		StudentName:  in.StudentName,
		ClassName:    in.ClassName,
		Department:   in.Department,
		IncidentDate: dateOnly(in.IncidentDate),
		Description:  in.Description,
		Status:       domain.StatusPending,
	}
}

// dateOnly drops the clock and zone drivers attach to DATE columns
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mapRows[R, T any](rows []R, fn func(R) T) []T {
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}
	return out
}
