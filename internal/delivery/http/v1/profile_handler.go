package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/domain"
)

type ProfileHandler struct {
	authUC domain.AuthUsecase
	cvUC   domain.CVUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase, cvUC domain.CVUsecase) {
	handler := &ProfileHandler{
		authUC: authUC,
		cvUC:   cvUC,
	}

	protected.GET("/profile", handler.Profile)
}

// Profile renders the account page with fresh data from the backend rather
// than the possibly stale session copy.
func (h *ProfileHandler) Profile(c *gin.Context) {
	user, err := h.authUC.Profile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	cvs, err := h.cvUC.GetMyCVs(c.Request.Context())
	if err != nil {
		cvs = nil
	}

	render(c, http.StatusOK, "profile", gin.H{
		"Profile": user,
		"CVs":     cvs,
	})
}
