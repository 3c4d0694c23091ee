package middleware

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"school_system/internal/domain" // Importing domain models
	"school_system/internal/store"  // Data access layer

	"github.com/gin-gonic/gin" // Gin web framework
)

const (
	studentKey = "student"
	staffKey   = "staff"
)

// UserID parses the user_id query parameter
func UserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// StudentIdentity resolves user_id to a student, answering 404 when it does not
func StudentIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			ErrorView(c, http.StatusNotFound, "Student not found")
			c.Abort()
			return
		}
		student, err := store.GetStudentByID(SessionFrom(c), id)
		if err != nil {
			_ = c.Error(err) // Rendered by ErrorPage
			c.Abort()
			return
		}
		if student == nil {
			ErrorView(c, http.StatusNotFound, "Student not found")
			c.Abort()
			return
		}
		c.Set(studentKey, *student)
		c.Next()
	}
}

// StaffIdentity resolves user_id to a staff member, answering 404 when it does not
func StaffIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			ErrorView(c, http.StatusNotFound, "Staff not found")
			c.Abort()
			return
		}
		staff, err := store.GetStaffByID(SessionFrom(c), id)
		if err != nil {
			_ = c.Error(err) // Rendered by ErrorPage
			c.Abort()
			return
		}
		if staff == nil {
			ErrorView(c, http.StatusNotFound, "Staff not found")
			c.Abort()
			return
		}
		c.Set(staffKey, *staff)
		c.Next()
	}
}

// CurrentStudent returns the student set by StudentIdentity
func CurrentStudent(c *gin.Context) domain.Student {
	return c.MustGet(studentKey).(domain.Student)
}

// CurrentStaff returns the staff member set by StaffIdentity
func CurrentStaff(c *gin.Context) domain.StaffMember {
	return c.MustGet(staffKey).(domain.StaffMember)
}
