package controller

import (
	"net/http"

	"github.com/charmbracelet/log"

	"dress-diary/models"
	"dress-diary/service"
)

// AuthController handles sign up, login and the profile of the active user
type AuthController struct {
	auth *service.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// SignUp handles POST /signup
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if !decodeBody(w, r, "SignUp", &req) {
		return
	}

	if err := c.auth.SignUp(r.Context(), req); err != nil {
		writeError(w, "SignUp", err)
		return
	}

	log.Infof("✓ SignUp: created user %s", req.Username)
	writeJSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, "Login", &req) {
		return
	}

	resp, err := c.auth.Login(r.Context(), req)
	if err != nil {
		writeError(w, "Login", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.auth.Logout(BearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}

// Profile handles GET /me
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "Profile")
	if !ok {
		return
	}

	profile, err := c.auth.Profile(r.Context(), user)
	if err != nil {
		writeError(w, "Profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// SetDarkMode handles PUT /me/dark-mode
func (c *AuthController) SetDarkMode(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, "SetDarkMode")
	if !ok {
		return
	}

	var req models.DarkModeRequest
	if !decodeBody(w, r, "SetDarkMode", &req) {
		return
	}

	if err := c.auth.SetDarkMode(r.Context(), user, req.Enabled); err != nil {
		writeError(w, "SetDarkMode", err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
