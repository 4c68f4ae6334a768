package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/delivery/http/middleware"
	"go-jobboard-client/internal/delivery/http/response"
	"go-jobboard-client/internal/domain"
	"go-jobboard-client/internal/notifier"
	"go-jobboard-client/pkg/apperror"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	monitors      *notifier.Manager
}

func NewApplicationHandler(protected *gin.RouterGroup, adminAPI *gin.RouterGroup, applicationUC domain.ApplicationUsecase, monitors *notifier.Manager) {
	handler := &ApplicationHandler{
		applicationUC: applicationUC,
		monitors:      monitors,
	}

	protected.GET("/applications", handler.MyApplications)
	protected.POST("/jobs/:id/apply", handler.Apply)
	protected.POST("/applications/:id/withdraw", handler.Withdraw)

	adminAPI.PUT("/applications/:id/status", handler.UpdateStatus)
	adminAPI.DELETE("/applications/:id", handler.Delete)
}

type statusForm struct {
	Status string `json:"status" binding:"required"`
}

// MyApplications renders the applicant's application list. Loading the list
// also replays current-status alerts through the notification engine, which
// applies its own per-application cooldown.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	apps, err := h.applicationUC.GetMyApplications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	if sess := middleware.CurrentSession(c); sess != nil {
		if monitor := h.monitors.MonitorFor(sess.User.ID); monitor != nil {
			monitor.ShowCurrentStatusNotifications(c.Request.Context(), apps)
		}
	}

	render(c, http.StatusOK, "applications", gin.H{
		"Applications": apps,
	})
}

// Apply submits a candidacy for a job, optionally attaching a chosen CV.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID := c.Param("id")
	cvID := c.PostForm("cv_id")

	if _, err := h.applicationUC.ApplyToJob(c.Request.Context(), jobID, cvID); err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/applications")
}

// Withdraw deletes the applicant's own application.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := h.applicationUC.WithdrawApplication(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/applications")
}

// UpdateStatus sets an application's status from the admin dashboard.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var form statusForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest("Status is required"))
		return
	}

	if err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), form.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", nil)
}

// Delete removes an application from the admin dashboard.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applicationUC.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted", nil)
}
