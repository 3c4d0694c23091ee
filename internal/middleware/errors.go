package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ErrorView renders error.html with a message
func ErrorView(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"Title": http.StatusText(status), "Message": message})
}

// ErrorPage turns errors pushed with c.Error into a generic 500 page
func ErrorPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 {
			return
		}
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  c.Errors.String(),
		}).Error("Request failed")
		if !c.Writer.Written() {
			ErrorView(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
		}
	}
}
