package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/delivery/http/response"
	"go-jobboard-client/pkg/apperror"
)

// ErrorHandler translates errors appended to the gin context into either a
// JSON envelope or the error/redirect behavior pages expect:
// 401 sends the user to the login form, 403 back to the public listing, and
// everything else to the dedicated error view.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		code := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			code = appErr.Code
			message = appErr.Message
		} else {
			// Never expose internal error details to clients; log server-side only.
			fmt.Printf("[ERROR] Internal Server Error: %v\n", err)
		}

		if wantsJSON(c) {
			response.Error(c, code, message, nil)
			return
		}

		switch code {
		case http.StatusUnauthorized:
			c.Redirect(http.StatusFound, "/login")
		case http.StatusForbidden:
			c.Redirect(http.StatusFound, "/jobs")
		default:
			c.Redirect(http.StatusFound, errorPageURL(code, message))
		}
	}
}

func errorPageURL(code int, message string) string {
	query := url.Values{}
	query.Set("code", fmt.Sprintf("%d", code))
	query.Set("message", message)
	return "/error?" + query.Encode()
}
