package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/delivery/http/middleware"
	"go-jobboard-client/internal/domain"
)

var pageTitles = map[string]string{
	"jobs":         "Jobs",
	"job_detail":   "Job Details",
	"job_form":     "Manage Job",
	"login":        "Sign In",
	"register":     "Sign Up",
	"profile":      "Profile",
	"upload_cv":    "My CVs",
	"applications": "My Applications",
	"admin":        "Admin Dashboard",
	"analytics":    "Analytics",
	"error":        "Error",
}

// render wraps c.HTML, merging the fields every page template expects:
// current user (nil when anonymous), admin flag, page title and current year.
func render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["PageTitle"]; !ok {
		data["PageTitle"] = pageTitles[page]
	}

	var user *domain.User
	if sess := middleware.CurrentSession(c); sess != nil {
		user = &sess.User
	}
	data["User"] = user
	data["IsAdmin"] = user.IsAdmin()
	data["Year"] = time.Now().Year()
	data["Path"] = c.Request.URL.Path

	c.HTML(status, page, data)
}
