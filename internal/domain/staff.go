package domain

import "strings"

// Role is the sub-role of a staff member
type Role string

const (
	RolePrincipal Role = "principal"
	RoleFaculty   Role = "faculty"
	RoleCommittee Role = "committee"
)

// Roles lists every staff role in display order
var Roles = []Role{RolePrincipal, RoleFaculty, RoleCommittee}

// ParseRole maps a form value onto a Role, ignoring case and surrounding spaces
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RolePrincipal, RoleFaculty, RoleCommittee:
		return true
	}
	return false
}

// Title returns the role name with its first letter upper-cased
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// StaffMember is a principal, faculty or committee account
type StaffMember struct {
	ID       uint   // Primary key
	Name     string // Full name
	Username string // Unique login name
	Password string // Plaintext password
	Role     Role   // principal, faculty or committee
}

// StaffInput carries the fields of the add/update staff forms
type StaffInput struct {
	Name     string `form:"name" binding:"required"`     // Full name
	Username string `form:"username" binding:"required"` // Unique login name
	Password string `form:"password" binding:"required"` // Plaintext password
	Role     string `form:"role" binding:"required"`     // Parsed with ParseRole
}
