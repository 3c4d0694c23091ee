package domain

import (
	"strings"
	"time"
)

const (
	// StatusPending is the status of a freshly reported incident
	StatusPending = "Pending"

	// ActionAssignedPrefix starts the status of an incident a committee member acted on.
	// Action views select on ActionAssignedMarker, so the text must not change.
	ActionAssignedPrefix = "Action Assigned: "
	ActionAssignedMarker = "Action Assigned"

	// IncidentDateLayout is the layout of the incident_date form field
	IncidentDateLayout = "2006-01-02"
)

// Incident is a discipline incident reported against a student
type Incident struct {
	ID           uint      // Primary key
	StudentID    string    // Loose reference to Student.ID, not enforced
	StudentName  string    // Student name as typed by the reporter
	ClassName    string    // Class of the student
	Department   string    // Department of the student
	IncidentDate time.Time // Day of the incident
	Description  string    // What happened
	Status       string    // Pending, "Action Assigned: ..." or any admin text
}

// IncidentInput carries the faculty incident form
type IncidentInput struct {
	StudentID    string    // Loose reference to Student.ID
	StudentName  string    // Student name
	ClassName    string    // Class name
	Department   string    // Department
	IncidentDate time.Time // Day of the incident
	Description  string    // What happened
}

// ActionAssignedStatus builds the status recorded when a committee assigns an action
func ActionAssignedStatus(action string) string {
	return ActionAssignedPrefix + action
}

// HasAction reports whether the incident status marks an assigned action
func (i Incident) HasAction() bool {
	return strings.Contains(i.Status, ActionAssignedMarker)
}

// Action returns the assigned action text, or "" when none was assigned
func (i Incident) Action() string {
	if !strings.HasPrefix(i.Status, ActionAssignedPrefix) {
		return ""
	}
	return strings.TrimPrefix(i.Status, ActionAssignedPrefix)
}
