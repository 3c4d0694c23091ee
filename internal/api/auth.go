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

// Built-in admin account; checked before any database lookup
const (
	adminUsername = "admin"
	adminPassword = "admin"
	adminUserID   = 0 // Sentinel identity carried to the admin dashboard
)

// dashboardRoute ties a staff role to its dashboard
type dashboardRoute struct {
	Path     string // Route the login redirects to
	Template string // View rendered by the route
}

// staffDashboards is the only place a role turns into a route
var staffDashboards = map[domain.Role]dashboardRoute{
	domain.RolePrincipal: {Path: "/principaldashboard", Template: "principaldashboard.html"},
	domain.RoleFaculty:   {Path: "/facultydashboard", Template: "facultydashboard.html"},
	domain.RoleCommittee: {Path: "/committeedashboard", Template: "committeedashboard.html"},
}

// LoginRequest is the login form
type LoginRequest struct {
	Username string `form:"username" binding:"required"` // Username must be provided
	Password string `form:"password" binding:"required"` // Password must be provided
}

// HomeHandler renders the landing page
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{"Title": "Home"})
	}
}

// LoginPageHandler renders the login form
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Login"})
	}
}

// LoginHandler checks the credentials against admin, students and staff, in that order
func LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			invalidCredentials(c) // A blank field can never match
			return
		}
		// Admin login always wins, even over a stored account named admin
		if req.Username == adminUsername && req.Password == adminPassword {
			c.Redirect(http.StatusSeeOther, dashboardURL("/admindashboard", adminUserID))
			return
		}
		s := middleware.SessionFrom(c)
		student, err := store.GetStudentByCredentials(s, req.Username, req.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if student != nil {
			c.Redirect(http.StatusSeeOther, dashboardURL("/studentdashboard", student.ID))
			return
		}
		staff, err := store.GetStaffByCredentials(s, req.Username, req.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if staff != nil {
			route, ok := staffDashboards[staff.Role]
			if !ok {
				// Only rows written outside the application can carry another role
				logrus.WithFields(logrus.Fields{
					"staff_id": staff.ID,
					"role":     staff.Role,
				}).Warn("Staff member has no dashboard")
				middleware.ErrorView(c, http.StatusNotFound, "Dashboard not found")
				return
			}
			c.Redirect(http.StatusSeeOther, dashboardURL(route.Path, staff.ID))
			return
		}
		invalidCredentials(c)
	}
}

func invalidCredentials(c *gin.Context) {
	c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Title": "Login", "Error": "Invalid credentials"})
}

// dashboardURL appends the user_id identity to a dashboard path
func dashboardURL(path string, id uint) string {
	return path + "?user_id=" + strconv.FormatUint(uint64(id), 10)
}

// UsersHandler lists the signed-up users
func UsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderUsers(c, http.StatusOK, "")
	}
}

// SignupHandler creates a user from the signup form
func SignupHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.UserInput
		if err := c.ShouldBind(&in); err != nil {
			renderUsers(c, http.StatusBadRequest, "Name and email are required")
			return
		}
		user, err := store.CreateUser(middleware.SessionFrom(c), in)
		if err != nil {
			_ = c.Error(err) // Duplicate emails end up here too
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"email":   user.Email,
		}).Info("User signed up")
		renderUsers(c, http.StatusOK, "User created successfully!")
	}
}

func renderUsers(c *gin.Context, status int, message string) {
	users, err := store.ListUsers(middleware.SessionFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.HTML(status, "users.html", gin.H{"Title": "Users", "Users": users, "Message": message})
}
