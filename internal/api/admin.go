package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"school_system/internal/domain"     // Importing domain models
	"school_system/internal/middleware" // Session and error views
	"school_system/internal/store"      // Data access layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// IncidentStatusRequest is the admin status form
type IncidentStatusRequest struct {
	IncidentID uint   `form:"incident_id" binding:"required"` // Incident to update
	Status     string `form:"status" binding:"required"`      // New status text
}

// pathID parses the {id} route parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// AdminDashboardHandler lists every incident for the admin
func AdminDashboardHandler(incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The admin has no row; only its sentinel id resolves
		if id, ok := middleware.UserID(c); !ok || id != adminUserID {
			middleware.ErrorView(c, http.StatusNotFound, "Admin not found")
			return
		}
		list, err := incidents.All(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "admindashboard.html", gin.H{
			"Title":     "Admin Dashboard",
			"Incidents": list,
			"UserID":    adminUserID,
		})
	}
}

// StudentsHandler lists students next to the add form
func StudentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderStudents(c, http.StatusOK, "")
	}
}

// AddStudentHandler creates a student account
func AddStudentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.StudentInput
		if err := c.ShouldBind(&in); err != nil {
			renderStudents(c, http.StatusBadRequest, "Name, username and password are required")
			return
		}
		student, err := store.CreateStudent(middleware.SessionFrom(c), in)
		if err != nil {
			_ = c.Error(err) // Duplicate usernames end up here too
			return
		}
		logrus.WithFields(logrus.Fields{
			"student_id": student.ID,
			"username":   student.Username,
		}).Info("Student created")
		renderStudents(c, http.StatusOK, "Student added successfully!")
	}
}

// EditStudentHandler renders the edit form of a student
func EditStudentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			middleware.ErrorView(c, http.StatusNotFound, "Student not found")
			return
		}
		student, err := store.GetStudentByID(middleware.SessionFrom(c), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if student == nil {
			middleware.ErrorView(c, http.StatusNotFound, "Student not found")
			return
		}
		c.HTML(http.StatusOK, "edit_student.html", gin.H{"Title": "Edit Student", "Student": student})
	}
}

// UpdateStudentHandler overwrites every field of a student
func UpdateStudentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			renderStudents(c, http.StatusNotFound, "Student not found")
			return
		}
		var in domain.StudentInput
		if err := c.ShouldBind(&in); err != nil {
			renderStudents(c, http.StatusBadRequest, "Name, username and password are required")
			return
		}
		student, err := store.UpdateStudent(middleware.SessionFrom(c), id, in)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if student == nil {
			renderStudents(c, http.StatusNotFound, "Student not found")
			return
		}
		logrus.WithFields(logrus.Fields{
			"student_id": student.ID,
			"username":   student.Username,
		}).Info("Student updated")
		renderStudents(c, http.StatusOK, "Student updated successfully!")
	}
}

// DeleteStudentHandler removes a student; their incidents stay
func DeleteStudentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			renderStudents(c, http.StatusNotFound, "Student not found")
			return
		}
		deleted, err := store.DeleteStudent(middleware.SessionFrom(c), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if !deleted {
			renderStudents(c, http.StatusNotFound, "Student not found")
			return
		}
		logrus.WithField("student_id", id).Info("Student deleted")
		renderStudents(c, http.StatusOK, "Student deleted successfully!")
	}
}

func renderStudents(c *gin.Context, status int, message string) {
	students, err := store.ListStudents(middleware.SessionFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.HTML(status, "students.html", gin.H{"Title": "Students", "Students": students, "Message": message})
}

// StaffMembersHandler lists staff members next to the add form
func StaffMembersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderStaff(c, http.StatusOK, "")
	}
}

// AddStaffHandler creates a principal, faculty or committee account
func AddStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.StaffInput
		if err := c.ShouldBind(&in); err != nil {
			renderStaff(c, http.StatusBadRequest, "Name, username, password and role are required")
			return
		}
		role, ok := domain.ParseRole(in.Role)
		if !ok {
			renderStaff(c, http.StatusBadRequest, "Invalid role")
			return
		}
		staff, err := store.CreateStaffMember(middleware.SessionFrom(c), in, role)
		if err != nil {
			_ = c.Error(err) // Duplicate usernames end up here too
			return
		}
		logrus.WithFields(logrus.Fields{
			"staff_id": staff.ID,
			"username": staff.Username,
			"role":     staff.Role,
		}).Info("Staff member created")
		renderStaff(c, http.StatusOK, role.Title()+" added successfully!")
	}
}

// EditStaffHandler renders the edit form of a staff member
func EditStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			middleware.ErrorView(c, http.StatusNotFound, "Staff not found")
			return
		}
		staff, err := store.GetStaffByID(middleware.SessionFrom(c), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if staff == nil {
			middleware.ErrorView(c, http.StatusNotFound, "Staff not found")
			return
		}
		c.HTML(http.StatusOK, "edit_staff.html", gin.H{"Title": "Edit Staff", "Staff": staff, "Roles": domain.Roles})
	}
}

// UpdateStaffHandler overwrites every field of a staff member
func UpdateStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			renderStaff(c, http.StatusNotFound, "Staff not found")
			return
		}
		var in domain.StaffInput
		if err := c.ShouldBind(&in); err != nil {
			renderStaff(c, http.StatusBadRequest, "Name, username, password and role are required")
			return
		}
		role, ok := domain.ParseRole(in.Role)
		if !ok {
			renderStaff(c, http.StatusBadRequest, "Invalid role")
			return
		}
		staff, err := store.UpdateStaffMember(middleware.SessionFrom(c), id, in, role)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if staff == nil {
			renderStaff(c, http.StatusNotFound, "Staff not found")
			return
		}
		logrus.WithFields(logrus.Fields{
			"staff_id": staff.ID,
			"role":     staff.Role,
		}).Info("Staff member updated")
		renderStaff(c, http.StatusOK, "Staff updated successfully!")
	}
}

// DeleteStaffHandler removes a staff member
func DeleteStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			renderStaff(c, http.StatusNotFound, "Staff not found")
			return
		}
		deleted, err := store.DeleteStaffMember(middleware.SessionFrom(c), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if !deleted {
			renderStaff(c, http.StatusNotFound, "Staff not found")
			return
		}
		logrus.WithField("staff_id", id).Info("Staff member deleted")
		renderStaff(c, http.StatusOK, "Staff deleted successfully!")
	}
}

func renderStaff(c *gin.Context, status int, message string) {
	staff, err := store.ListStaff(middleware.SessionFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.HTML(status, "staffmembers.html", gin.H{
		"Title":        "Staff Members",
		"StaffMembers": staff,
		"Roles":        domain.Roles,
		"Message":      message,
	})
}

// DisciplineIncidentsHandler lists incidents with the status form
func DisciplineIncidentsHandler(incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := incidents.All(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "disciplineincidents.html", gin.H{"Title": "Discipline Incidents", "Incidents": list})
	}
}

// IncidentListHandler renders every incident under the given title
func IncidentListHandler(title string, incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := incidents.All(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "incidents.html", gin.H{
			"Title":     title,
			"Incidents": list,
			"Back":      dashboardURL("/admindashboard", adminUserID),
		})
	}
}

// UpdateIncidentStatusHandler lets the admin set any status text
func UpdateIncidentStatusHandler(incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IncidentStatusRequest
		if err := c.ShouldBind(&req); err != nil {
			middleware.ErrorView(c, http.StatusBadRequest, "Incident and status are required")
			return
		}
		incident, err := store.UpdateIncidentStatus(middleware.SessionFrom(c), req.IncidentID, req.Status)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if incident == nil {
			logrus.WithField("incident_id", req.IncidentID).Warn("Status update for unknown incident")
		} else {
			incidents.Invalidate(c)
			logrus.WithFields(logrus.Fields{
				"incident_id": incident.ID,
				"status":      incident.Status,
			}).Info("Incident status updated")
		}
		c.Redirect(http.StatusSeeOther, "/disciplineincidents")
	}
}

// InfoPageHandler renders a static informational page
func InfoPageHandler(title, body string, back func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "info.html", gin.H{
			"Title": title,
			"Body":  body,
			"Back":  back(c),
		})
	}
}

// adminBack links informational pages back to the admin dashboard
func adminBack(*gin.Context) string {
	return dashboardURL("/admindashboard", adminUserID)
}
