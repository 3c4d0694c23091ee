package api

import (
	"net/http" // HTTP status codes

	"school_system/internal/middleware" // Identity of the student

	"github.com/gin-gonic/gin" // Gin web framework
)

// StudentDashboardHandler shows the student and their incidents
func StudentDashboardHandler(incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		student := middleware.CurrentStudent(c)
		list, err := incidents.ForStudent(c, student.ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "studentdashboard.html", gin.H{
			"Title":     "Student Dashboard",
			"Student":   student,
			"Incidents": list,
		})
	}
}

// StudentIncidentsHandler lists the incidents recorded against the student
func StudentIncidentsHandler(incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		student := middleware.CurrentStudent(c)
		list, err := incidents.ForStudent(c, student.ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "incidents.html", gin.H{
			"Title":     "My Discipline Incidents",
			"Incidents": list,
			"Back":      studentBack(c),
		})
	}
}

// StudentActionsHandler lists the student's incidents with their actions
func StudentActionsHandler(incidents IncidentLists) gin.HandlerFunc {
	return func(c *gin.Context) {
		student := middleware.CurrentStudent(c)
		list, err := incidents.ForStudent(c, student.ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "actions.html", gin.H{
			"Title":   "My Discipline Actions",
			"Actions": list,
			"Back":    studentBack(c),
		})
	}
}

// studentBack links student pages back to the student dashboard
func studentBack(c *gin.Context) string {
	return dashboardURL("/studentdashboard", middleware.CurrentStudent(c).ID)
}
