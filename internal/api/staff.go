package api

import (
	"net/http" // HTTP status codes
	"net/url"  // Query escaping
	"strings"  // String manipulation
	"time"     // Incident dates

	"school_system/internal/domain"     // Importing domain models
	"school_system/internal/middleware" // Identity of the staff member
	"school_system/internal/store"      // Data access layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// IncidentRequest is the faculty incident form
type IncidentRequest struct {
	StudentID    string `form:"student_id" binding:"required"`    // Loose reference to a student
	StudentName  string `form:"student_name" binding:"required"`  // Student name
	ClassName    string `form:"class_name" binding:"required"`    // Class name
	Department   string `form:"department" binding:"required"`    // Department
	IncidentDate string `form:"incident_date" binding:"required"` // YYYY-MM-DD
	Description  string `form:"description" binding:"required"`   // What happened
	UserID       string `form:"user_id"`                          // Reporter, carried into the redirect
}

// AssignActionRequest is the committee action form
type AssignActionRequest struct {
	IncidentID uint   `form:"incident_id" binding:"required"` // Incident to act on
	Action     string `form:"action" binding:"required"`      // Remedial measure
	UserID     string `form:"user_id"`                        // Committee member, carried into the redirect
}

// StaffDashboardHandler renders the dashboard view of one role
func StaffDashboardHandler(role domain.Role, incidents IncidentLists) gin.HandlerFunc {
	route := staffDashboards[role]
	title := role.Title() + " Dashboard"
	return func(c *gin.Context) {
		list, err := incidents.All(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, route.Template, gin.H{
			"Title":     title,
			"Staff":     middleware.CurrentStaff(c),
			"Incidents": list,
		})
	}
}

// StaffIncidentsHandler renders every incident with the staff member's context
func StaffIncidentsHandler(view, title string, incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := incidents.All(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, view, gin.H{
			"Title":     title,
			"Staff":     middleware.CurrentStaff(c),
			"Incidents": list,
			"Back":      staffBack(c),
		})
	}
}

// StaffActionsHandler lists incidents a committee assigned an action to
func StaffActionsHandler(title string, incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := incidents.Actions(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "actions.html", gin.H{
			"Title":   title,
			"Actions": list,
			"Back":    staffBack(c),
		})
	}
}

// SubmitIncidentHandler records an incident reported by faculty
func SubmitIncidentHandler(incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IncidentRequest
		if err := c.ShouldBind(&req); err != nil {
			middleware.ErrorView(c, http.StatusBadRequest, "All incident fields are required")
			return
		}
		date, err := time.Parse(domain.IncidentDateLayout, strings.TrimSpace(req.IncidentDate))
		if err != nil {
			middleware.ErrorView(c, http.StatusBadRequest, "Invalid incident date")
			return
		}
		incident, err := store.CreateIncident(middleware.SessionFrom(c), domain.IncidentInput{
			StudentID:    req.StudentID,
			StudentName:  req.StudentName,
			ClassName:    req.ClassName,
			Department:   req.Department,
			IncidentDate: date,
			Description:  req.Description,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		incidents.Invalidate(c)
		logrus.WithFields(logrus.Fields{
			"incident_id": incident.ID,
			"student_id":  incident.StudentID,
			"reported_by": req.UserID,
		}).Info("Incident reported")
		c.Redirect(http.StatusSeeOther, withUserID("/fd_disciplineincidents", req.UserID))
	}
}

// AssignActionHandler records the action a committee member chose for an incident
func AssignActionHandler(incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AssignActionRequest
		if err := c.ShouldBind(&req); err != nil {
			middleware.ErrorView(c, http.StatusBadRequest, "Incident and action are required")
			return
		}
		incident, err := store.AssignAction(middleware.SessionFrom(c), req.IncidentID, req.Action)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if incident == nil {
			logrus.WithField("incident_id", req.IncidentID).Warn("Action assigned to unknown incident")
		} else {
			incidents.Invalidate(c)
			logrus.WithFields(logrus.Fields{
				"incident_id": incident.ID,
				"status":      incident.Status,
				"assigned_by": req.UserID,
			}).Info("Action assigned")
		}
		c.Redirect(http.StatusSeeOther, withUserID("/cd_assignactions", req.UserID))
	}
}

// withUserID appends user_id to path when the form carried one
func withUserID(path, userID string) string {
	if userID == "" {
		return path
	}
	return path + "?user_id=" + url.QueryEscape(userID)
}

// staffBack links staff pages back to the dashboard of the member's role
func staffBack(c *gin.Context) string {
	staff := middleware.CurrentStaff(c)
	route, ok := staffDashboards[staff.Role]
	if !ok {
		return "/login"
	}
	return dashboardURL(route.Path, staff.ID)
}
