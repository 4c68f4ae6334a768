package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ErrorPageHandler struct{}

func NewErrorPageHandler(public *gin.RouterGroup) {
	handler := &ErrorPageHandler{}
	public.GET("/error", handler.Show)
}

// Show renders the generic error page. Code and message arrive as query
// parameters from the error-translating middleware.
func (h *ErrorPageHandler) Show(c *gin.Context) {
	code, err := strconv.Atoi(c.Query("code"))
	if err != nil || code < 400 || code > 599 {
		code = http.StatusInternalServerError
	}

	message := c.Query("message")
	if message == "" {
		message = "Something went wrong."
	}

	render(c, http.StatusOK, "error", gin.H{
		"Code":    code,
		"Title":   errorTitle(code),
		"Message": message,
		"Tone":    errorTone(code),
	})
}

func errorTitle(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Page Not Found"
	case http.StatusForbidden:
		return "Access Denied"
	case http.StatusServiceUnavailable:
		return "Service Unavailable"
	default:
		return "Something Went Wrong"
	}
}

// errorTone picks the page color scheme for an error code. The CSS defines
// one palette per tone.
func errorTone(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusInternalServerError:
		return "red"
	case http.StatusUnauthorized, http.StatusServiceUnavailable:
		return "amber"
	case http.StatusForbidden:
		return "violet"
	case http.StatusNotFound:
		return "blue"
	default:
		return "indigo"
	}
}
