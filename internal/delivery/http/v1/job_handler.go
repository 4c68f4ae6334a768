package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/delivery/http/middleware"
	"go-jobboard-client/internal/delivery/http/response"
	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/logger"
)

type JobHandler struct {
	jobUC domain.JobUsecase
	cvUC  domain.CVUsecase
}

func NewJobHandler(public *gin.RouterGroup, admin *gin.RouterGroup, adminAPI *gin.RouterGroup, jobUC domain.JobUsecase, cvUC domain.CVUsecase) {
	handler := &JobHandler{
		jobUC: jobUC,
		cvUC:  cvUC,
	}

	// Public pages
	public.GET("/", handler.Home)
	public.GET("/jobs", handler.ListJobs)
	public.GET("/jobs/:id", handler.JobDetails)

	// Admin pages
	admin.GET("/jobs/create", handler.CreateJobForm)
	admin.POST("/jobs/create", handler.CreateJob)
	admin.GET("/jobs/:id/edit", handler.EditJobForm)
	admin.POST("/jobs/:id/edit", handler.UpdateJob)

	// Admin JSON actions used by dashboard scripts
	adminAPI.PUT("/jobs/:id/status", handler.ToggleJobStatus)
	adminAPI.DELETE("/jobs/:id", handler.DeleteJob)
}

type jobForm struct {
	Title       string `form:"title" binding:"required"`
	CompanyName string `form:"company_name" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Type        string `form:"type" binding:"required,oneof=full-time part-time contract internship remote"`
	Salary      string `form:"salary"`
	Description string `form:"description" binding:"required"`
	Vacancies   int    `form:"vacancies" binding:"required,min=1"`
	ExpiresAt   string `form:"expires_at" binding:"required"`
}

// Home renders the landing page with a handful of recent openings. Listing
// failures degrade to an empty showcase rather than an error page.
func (h *JobHandler) Home(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		logger.Log.Warn("jobs: landing page listing failed", "error", err)
		jobs = nil
	}
	if len(jobs) > 6 {
		jobs = jobs[:6]
	}

	render(c, http.StatusOK, "home", gin.H{
		"Jobs": jobs,
	})
}

// ListJobs renders the searchable listing. Query parameters map straight onto
// the backend search filters.
func (h *JobHandler) ListJobs(c *gin.Context) {
	filters := domain.JobSearchFilters{
		Keyword:  strings.TrimSpace(c.Query("q")),
		Location: strings.TrimSpace(c.Query("location")),
		Type:     strings.TrimSpace(c.Query("type")),
	}

	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), filters)
	if err != nil {
		c.Error(err)
		return
	}

	render(c, http.StatusOK, "jobs", gin.H{
		"Jobs":    jobs,
		"Filters": filters,
	})
}

// JobDetails renders a single opening. Signed-in applicants also get their CV
// list so the apply form can offer a resume picker; a CV fetch failure only
// hides the picker.
func (h *JobHandler) JobDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	var cvs []domain.CV
	if sess := middleware.CurrentSession(c); sess != nil && sess.User.Role == domain.RoleApplicant {
		cvs, err = h.cvUC.GetMyCVs(c.Request.Context())
		if err != nil {
			logger.Log.Warn("jobs: cv list for apply form failed", "job_id", job.ID, "error", err)
			cvs = nil
		}
	}

	render(c, http.StatusOK, "job_detail", gin.H{
		"Job": job,
		"CVs": cvs,
	})
}

// CreateJobForm renders the admin job creation page.
func (h *JobHandler) CreateJobForm(c *gin.Context) {
	render(c, http.StatusOK, "job_form", gin.H{
		"Action": "/jobs/create",
	})
}

// CreateJob posts a new opening to the backend.
func (h *JobHandler) CreateJob(c *gin.Context) {
	job, formErr := h.bindJobForm(c)
	if formErr != "" {
		render(c, http.StatusBadRequest, "job_form", gin.H{
			"Action": "/jobs/create",
			"Error":  formErr,
			"Job":    job,
		})
		return
	}

	if _, err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// EditJobForm renders the admin job edit page pre-filled with current values.
func (h *JobHandler) EditJobForm(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	render(c, http.StatusOK, "job_form", gin.H{
		"Action": "/jobs/" + job.ID + "/edit",
		"Job":    job,
	})
}

// UpdateJob submits edited fields to the backend.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")
	job, formErr := h.bindJobForm(c)
	if formErr != "" {
		render(c, http.StatusBadRequest, "job_form", gin.H{
			"Action": "/jobs/" + id + "/edit",
			"Error":  formErr,
			"Job":    job,
		})
		return
	}

	if _, err := h.jobUC.UpdateJob(c.Request.Context(), id, job); err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// ToggleJobStatus flips an opening between active and closed.
func (h *JobHandler) ToggleJobStatus(c *gin.Context) {
	job, err := h.jobUC.ToggleJobStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status updated", job)
}

// DeleteJob removes an opening.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// bindJobForm parses and validates the shared create/edit form. Returns the
// partially filled job and a non-empty message on validation failure.
func (h *JobHandler) bindJobForm(c *gin.Context) (*domain.Job, string) {
	var form jobForm
	if err := c.ShouldBind(&form); err != nil {
		return &domain.Job{
			Title:       form.Title,
			CompanyName: form.CompanyName,
			Location:    form.Location,
			Type:        form.Type,
			Salary:      form.Salary,
			Description: form.Description,
			Vacancies:   form.Vacancies,
		}, "Please fill in all required fields."
	}

	expiresAt, err := time.Parse("2006-01-02", form.ExpiresAt)
	if err != nil {
		return &domain.Job{
			Title:       form.Title,
			CompanyName: form.CompanyName,
			Location:    form.Location,
			Type:        form.Type,
			Salary:      form.Salary,
			Description: form.Description,
			Vacancies:   form.Vacancies,
		}, "Expiry date must be a valid date (YYYY-MM-DD)."
	}

	return &domain.Job{
		Title:       form.Title,
		CompanyName: form.CompanyName,
		Location:    form.Location,
		Type:        form.Type,
		Salary:      form.Salary,
		Description: form.Description,
		Vacancies:   form.Vacancies,
		ExpiresAt:   expiresAt,
		Status:      domain.JobStatusActive,
	}, ""
}
