package v1

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/delivery/http/middleware"
	"go-jobboard-client/internal/delivery/http/response"
	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/apperror"
	"go-jobboard-client/pkg/upload"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(protected *gin.RouterGroup, adminAPI *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

	protected.GET("/upload-cv", handler.UploadForm)
	protected.POST("/upload-cv", uploadLimiter, handler.Upload)
	protected.GET("/cv/:id/view", handler.View)
	protected.GET("/cv/:id/download", handler.Download)
	protected.POST("/cv/:id/delete", handler.Delete)

	adminAPI.DELETE("/cv/:id", handler.DeleteAdmin)
}

// UploadForm renders the CV management page with the user's existing uploads.
func (h *CVHandler) UploadForm(c *gin.Context) {
	cvs, err := h.cvUC.GetMyCVs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	render(c, http.StatusOK, "upload_cv", gin.H{
		"CVs": cvs,
	})
}

// Upload validates and forwards a resume to the backend. Validation failures
// re-render the page with the rejection reason instead of bouncing through
// the error page.
func (h *CVHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		h.renderUploadError(c, "Please choose a file to upload.")
		return
	}
	if fileHeader.Size > upload.MaxCVSize {
		h.renderUploadError(c, fmt.Sprintf("File is too large. Maximum size is %d MB.", upload.MaxCVSize/(1024*1024)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, upload.MaxCVSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if _, err := h.cvUC.UploadCV(c.Request.Context(), fileHeader.Filename, data, contentType); err != nil {
		if apperror.StatusCode(err) == http.StatusBadRequest {
			h.renderUploadError(c, apperror.Message(err))
			return
		}
		c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/upload-cv")
}

// View streams a CV inline for in-browser preview.
func (h *CVHandler) View(c *gin.Context) {
	blob, err := h.cvUC.ViewCV(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", blob.Filename))
	c.Data(http.StatusOK, blob.ContentType, blob.Data)
}

// Download streams a CV as an attachment.
func (h *CVHandler) Download(c *gin.Context) {
	blob, err := h.cvUC.DownloadCV(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", blob.Filename))
	c.Data(http.StatusOK, blob.ContentType, blob.Data)
}

// Delete removes the applicant's own CV.
func (h *CVHandler) Delete(c *gin.Context) {
	if err := h.cvUC.DeleteCV(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/upload-cv")
}

// DeleteAdmin removes any user's CV from the admin dashboard.
func (h *CVHandler) DeleteAdmin(c *gin.Context) {
	if err := h.cvUC.DeleteCVAdmin(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV deleted", nil)
}

func (h *CVHandler) renderUploadError(c *gin.Context, message string) {
	cvs, err := h.cvUC.GetMyCVs(c.Request.Context())
	if err != nil {
		cvs = nil
	}
	render(c, http.StatusBadRequest, "upload_cv", gin.H{
		"CVs":   cvs,
		"Error": message,
	})
}
