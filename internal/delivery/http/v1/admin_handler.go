package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/delivery/http/response"
	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/logger"
)

type AdminHandler struct {
	adminUC       domain.AdminUsecase
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
	cvUC          domain.CVUsecase
}

func NewAdminHandler(admin *gin.RouterGroup, adminAPI *gin.RouterGroup, adminUC domain.AdminUsecase, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase, cvUC domain.CVUsecase) {
	handler := &AdminHandler{
		adminUC:       adminUC,
		jobUC:         jobUC,
		applicationUC: applicationUC,
		cvUC:          cvUC,
	}

	admin.GET("/admin", handler.Dashboard)
	admin.GET("/admin/analytics", handler.Analytics)

	adminAPI.DELETE("/users/:id", handler.DeleteUser)
}

// Dashboard renders the admin back office: all jobs, applications, users and
// CVs. Each section degrades to empty on fetch failure so one broken backend
// endpoint does not blank the whole dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	jobs, err := h.jobUC.ListAllJobsAdmin(ctx)
	if err != nil {
		logger.Log.Warn("admin: job listing failed", "error", err)
	}

	apps, err := h.applicationUC.ListAllApplications(ctx)
	if err != nil {
		logger.Log.Warn("admin: application listing failed", "error", err)
	}

	users, err := h.adminUC.ListUsers(ctx)
	if err != nil {
		logger.Log.Warn("admin: user listing failed", "error", err)
	}

	cvs, err := h.cvUC.ListAllCVs(ctx)
	if err != nil {
		logger.Log.Warn("admin: cv listing failed", "error", err)
	}

	render(c, http.StatusOK, "admin", gin.H{
		"Jobs":         jobs,
		"Applications": apps,
		"Users":        users,
		"CVs":          cvs,
	})
}

// Analytics renders aggregate counts computed from backend listings.
func (h *AdminHandler) Analytics(c *gin.Context) {
	summary, err := h.adminUC.Analytics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	render(c, http.StatusOK, "analytics", gin.H{
		"Summary": summary,
	})
}

// DeleteUser removes a user account from the admin dashboard.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUC.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}
