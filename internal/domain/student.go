package domain

// Student is a student account managed by the admin
type Student struct {
	ID       uint   // Primary key
	Name     string // Full name
	Username string // Unique login name
	Password string // Plaintext password
}

// StudentInput carries the fields of the add/update student forms
type StudentInput struct {
	Name     string `form:"name" binding:"required"`     // Full name
	Username string `form:"username" binding:"required"` // Unique login name
	Password string `form:"password" binding:"required"` // Plaintext password
}
