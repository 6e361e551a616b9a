package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/auth"
	"github.com/nexcard/nexcard/internal/email"
	"github.com/nexcard/nexcard/internal/view"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

// AuthHandler serves the mocked sign-in pages.
type AuthHandler struct {
	sessions *auth.Manager
	mailer   email.Sender
	baseURL  string
}

// NewAuthHandler creates a new AuthHandler. Reset links in emails start
// with baseURL.
func NewAuthHandler(sessions *auth.Manager, mailer email.Sender, baseURL string) *AuthHandler {
	return &AuthHandler{sessions: sessions, mailer: mailer, baseURL: baseURL}
}

// LoginGet renders the login page.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Sign In", pages.Login(pages.AuthForm{}))
}

// LoginPost signs the visitor in. Any well-formed email is accepted.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var form auth.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	if err := auth.Validate(form); err != nil {
		return renderPage(c, http.StatusUnprocessableEntity, "Sign In",
			pages.Login(pages.AuthForm{Email: form.Email, Problem: auth.Problem(err)}))
	}

	user := h.sessions.Login(form)
	if err := h.sessions.SignIn(c, user); err != nil {
		return err
	}
	slog.Info("User signed in", "user_id", user.ID)
	view.SetFlashSuccess(c, "Welcome back, "+user.Name+"!")
	return c.Redirect(http.StatusSeeOther, "/app")
}

// RegisterGet renders the registration page.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Register", pages.Register(pages.AuthForm{}))
}

// RegisterPost creates the mock account and signs it in.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var form auth.RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	if err := auth.Validate(form); err != nil {
		return renderPage(c, http.StatusUnprocessableEntity, "Register",
			pages.Register(pages.AuthForm{Name: form.Name, Email: form.Email, Problem: auth.Problem(err)}))
	}

	user := h.sessions.Register(form)
	if err := h.sessions.SignIn(c, user); err != nil {
		return err
	}
	view.SetFlashSuccess(c, "Account created successfully!")
	return c.Redirect(http.StatusSeeOther, "/app")
}

// Logout clears the session and the link to any unfinished wizard draft.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.SignOut(c); err != nil {
		slog.Warn("Failed to clear session on logout", "error", err)
	}
	forgetDraft(c)
	view.SetFlashSuccess(c, "You have been signed out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// ForgotPasswordGet renders the forgot-password page.
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Forgot Password", pages.ForgotPassword(pages.AuthForm{}))
}

// ForgotPasswordPost mails a reset link. The confirmation is the same
// whether or not the email went out.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	var form auth.ForgotPasswordForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	if err := auth.Validate(form); err != nil {
		return renderPage(c, http.StatusUnprocessableEntity, "Forgot Password",
			pages.ForgotPassword(pages.AuthForm{Email: form.Email, Problem: auth.Problem(err)}))
	}
	resetURL := h.baseURL + "/auth/reset-password?token=" + url.QueryEscape(uuid.NewString())
	if err := h.mailer.Send(c.Request().Context(), email.PasswordReset(form.Email, resetURL)); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to send password reset email", "error", err)
	}
	view.SetFlashSuccess(c, "If an account exists for that email, a password reset link has been sent.")
	return c.Redirect(http.StatusSeeOther, "/auth/login")
}

// ResetPasswordGet renders the reset form for ?token=.
func (h *AuthHandler) ResetPasswordGet(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		view.SetFlashError(c, "Invalid or missing reset token.")
		return c.Redirect(http.StatusSeeOther, "/auth/forgot-password")
	}
	return renderPage(c, http.StatusOK, "Reset Password", pages.ResetPassword(pages.AuthForm{Token: token}))
}

// ResetPasswordPost accepts the new password and sends the visitor to login.
func (h *AuthHandler) ResetPasswordPost(c echo.Context) error {
	var form auth.ResetPasswordForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	if err := auth.Validate(form); err != nil {
		return renderPage(c, http.StatusUnprocessableEntity, "Reset Password",
			pages.ResetPassword(pages.AuthForm{Token: form.Token, Problem: auth.Problem(err)}))
	}
	view.SetFlashSuccess(c, "Your password has been reset. Please sign in.")
	return c.Redirect(http.StatusSeeOther, "/auth/login")
}
