package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/config"
	"go-jobboard-client/internal/delivery/http/middleware"
	"go-jobboard-client/internal/domain"
	"go-jobboard-client/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		config: cfg,
	}

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig())

	public.GET("/login", handler.LoginForm)
	public.POST("/login", loginLimiter, handler.Login)
	public.GET("/register", handler.RegisterForm)
	public.POST("/register", loginLimiter, handler.Register)

	protected.POST("/logout", handler.Logout)
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
	Phone    string `form:"phone"`
	Location string `form:"location"`
}

// LoginForm renders the sign-in page. Signed-in users are sent to the
// listing instead.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if middleware.CurrentSession(c) != nil {
		c.Redirect(http.StatusFound, "/jobs")
		return
	}
	render(c, http.StatusOK, "login", nil)
}

// Login authenticates against the backend and issues the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login", gin.H{
			"Error": "Please enter a valid email and password.",
			"Email": form.Email,
		})
		return
	}

	sessionID, user, err := h.authUC.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		render(c, apperror.StatusCode(err), "login", gin.H{
			"Error": loginErrorMessage(err),
			"Email": form.Email,
		})
		return
	}

	h.setSessionCookie(c, sessionID)
	if user.IsAdmin() {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/jobs")
}

// RegisterForm renders the sign-up page.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	if middleware.CurrentSession(c) != nil {
		c.Redirect(http.StatusFound, "/jobs")
		return
	}
	render(c, http.StatusOK, "register", nil)
}

// Register creates an account on the backend and signs the user straight in.
func (h *AuthHandler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register", gin.H{
			"Error": "Please fill in all required fields. Passwords need at least 6 characters.",
			"Form":  form,
		})
		return
	}

	req := domain.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Phone:    form.Phone,
		Location: form.Location,
	}

	sessionID, _, err := h.authUC.Register(c.Request.Context(), req)
	if err != nil {
		render(c, apperror.StatusCode(err), "register", gin.H{
			"Error": registerErrorMessage(err),
			"Form":  form,
		})
		return
	}

	h.setSessionCookie(c, sessionID)
	c.Redirect(http.StatusFound, "/jobs")
}

// Logout tears down the session and clears the cookie. Always succeeds from
// the user's point of view.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.config.CookieName); err == nil && sessionID != "" {
		if err := h.authUC.Logout(c.Request.Context(), sessionID); err != nil {
			c.Error(err)
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, "", -1, "/", "", h.config.CookieSecure, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, sessionID, int(h.config.SessionTTL.Seconds()), "/", "", h.config.CookieSecure, true)
}

func loginErrorMessage(err error) string {
	switch apperror.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusBadRequest:
		return "Wrong email or password."
	default:
		return "Sign-in is temporarily unavailable. Please try again."
	}
}

func registerErrorMessage(err error) string {
	code := apperror.StatusCode(err)
	switch {
	case code == http.StatusConflict:
		return "An account with that email already exists."
	case code >= 400 && code < 500:
		if appMsg := apperror.Message(err); appMsg != "" {
			return appMsg
		}
		return "Registration failed. Please check your details."
	default:
		return "Registration is temporarily unavailable. Please try again."
	}
}
