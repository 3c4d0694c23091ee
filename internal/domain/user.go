package domain

// User is a generic account created through the signup form
type User struct {
	ID    uint   // Primary key
	Name  string // Display name
	Email string // Unique email
}

// UserInput carries the signup form fields
type UserInput struct {
	Name  string `form:"name" binding:"required"`  // Display name
	Email string `form:"email" binding:"required"` // Unique email
}
