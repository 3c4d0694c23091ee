package api

import (
	"html/template" // Parsed views

	"school_system/internal/domain"     // Importing domain models
	"school_system/internal/middleware" // Custom package for middleware
	"school_system/web"                 // Embedded static assets

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter wires every route onto a gin engine
func NewRouter(db *gorm.DB, views *template.Template, incidents IncidentLists) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery(), middleware.ErrorPage(), middleware.Session(db))
	r.SetHTMLTemplate(views)
	r.StaticFS("/static", web.Static())

	// Home & login
	r.GET("/", HomeHandler())
	r.GET("/login", LoginPageHandler())
	r.POST("/login", LoginHandler())
	r.GET("/users", UsersHandler())
	r.POST("/users", SignupHandler())

	// Admin dashboard & CRUD
	r.GET("/admindashboard", AdminDashboardHandler(incidents))
	r.GET("/students", StudentsHandler())
	r.POST("/add_student", AddStudentHandler())
	r.GET("/edit_student/:id", EditStudentHandler())
	r.POST("/update_student/:id", UpdateStudentHandler())
	r.POST("/delete_student/:id", DeleteStudentHandler())
	r.GET("/staffmembers", StaffMembersHandler())
	r.POST("/add_staff", AddStaffHandler())
	r.GET("/edit_staff/:id", EditStaffHandler())
	r.POST("/update_staff/:id", UpdateStaffHandler())
	r.POST("/delete_staff/:id", DeleteStaffHandler())
	r.GET("/disciplineincidents", DisciplineIncidentsHandler(incidents))
	r.POST("/update_incident_status", UpdateIncidentStatusHandler(incidents))
	r.GET("/disciplineactions", IncidentListHandler("Discipline Actions", incidents))
	r.GET("/assignactions", IncidentListHandler("Assign Actions", incidents))
	r.GET("/checkbeststudentawards", InfoPageHandler("Best Student Awards", "Award nominations submitted by faculty.", adminBack))
	r.GET("/applyscholarship", InfoPageHandler("Apply for Scholarship", "Scholarship applications are reviewed by the principal.", adminBack))
	r.GET("/applybeststudentaward", InfoPageHandler("Apply for Best Student Award", "Award applications are reviewed by the principal.", adminBack))
	r.GET("/severitylevels", InfoPageHandler("Severity Levels", "Incident severity levels used by the discipline committee.", adminBack))
	r.GET("/checkscholarship", InfoPageHandler("Scholarships", "Scholarship applications and their state.", adminBack))
	r.GET("/departments", InfoPageHandler("Departments", "Departments of the school.", adminBack))
	r.GET("/classes", InfoPageHandler("Classes", "Classes of the school.", adminBack))

	// Student views
	student := r.Group("", middleware.StudentIdentity())
	student.GET("/studentdashboard", StudentDashboardHandler(incidents))
	student.GET("/sd_disciplineincidents", StudentIncidentsHandler(incidents))
	student.GET("/sd_viewdisciplineactions", StudentActionsHandler(incidents))
	student.GET("/sd_applyscholarship", InfoPageHandler("Apply for Scholarship", "Ask your faculty to recommend you for a scholarship.", studentBack))
	student.GET("/sd_applyaward", InfoPageHandler("Apply for Award", "Ask your faculty to nominate you for the best student award.", studentBack))

	// Staff views; any staff member may open any of them
	staff := r.Group("", middleware.StaffIdentity())
	for _, role := range domain.Roles {
		staff.GET(staffDashboards[role].Path, StaffDashboardHandler(role, incidents))
	}
	staff.GET("/fd_disciplineincidents", StaffIncidentsHandler("fd_disciplineincidents.html", "Report Discipline Incidents", incidents))
	staff.GET("/fd_applybeststudentaward", InfoPageHandler("Nominate Best Student", "Nominations are reviewed by the principal.", staffBack))
	staff.GET("/fd_applyscholarship", InfoPageHandler("Recommend Scholarship", "Recommendations are reviewed by the principal.", staffBack))
	staff.GET("/cd_disciplineincidents", StaffIncidentsHandler("incidents.html", "Discipline Incidents", incidents))
	staff.GET("/cd_assignactions", StaffIncidentsHandler("cd_assignactions.html", "Assign Actions", incidents))
	staff.GET("/cd_disciplineactions", StaffActionsHandler("Discipline Actions", incidents))
	staff.GET("/pd_checkbeststudentawards", InfoPageHandler("Best Student Awards", "Nominations from faculty.", staffBack))
	staff.GET("/pd_disciplineactions", StaffActionsHandler("Discipline Actions", incidents))
	staff.GET("/pd_checkscholarship", InfoPageHandler("Scholarships", "Scholarship recommendations from faculty.", staffBack))

	// Incident workflow
	r.POST("/fd_submit_incident", SubmitIncidentHandler(incidents))
	r.POST("/assign_action", AssignActionHandler(incidents))

	return r
}
