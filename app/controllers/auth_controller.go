package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/app/requests"
	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/pkg/auth"
	"github.com/shashiranjanraj/stylestore/pkg/bind"
	"github.com/shashiranjanraj/stylestore/pkg/response"
	"github.com/shashiranjanraj/stylestore/pkg/validate"
)

type AuthController struct {
	session *services.SessionService
}

func NewAuthController(session *services.SessionService) *AuthController {
	return &AuthController{session: session}
}

type sessionView struct {
	User  models.UserProfile `json:"user"`
	Token string             `json:"token"`
}

// Register creates (or replaces) the stored profile and starts a session.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in requests.RegisterInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	profile, err := c.session.Register(in.Profile())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not register")
		return
	}

	token, err := auth.GenerateToken(profile.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not issue token")
		return
	}

	response.Created(w, sessionView{User: profile.Public(), Token: token})
}

// Login checks the submitted credentials against the stored profile.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in requests.LoginInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	profile, err := c.session.Login(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not log in")
		return
	}

	token, err := auth.GenerateToken(profile.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not issue token")
		return
	}

	response.Success(w, sessionView{User: profile.Public(), Token: token})
}

// Logout ends the session. The stored profile stays, so the same
// credentials work on the next login.
func (c *AuthController) Logout(w http.ResponseWriter, _ *http.Request) {
	c.session.Logout()
	response.Success(w, map[string]bool{"loggedOut": true})
}

// Profile returns the profile of the active session.
func (c *AuthController) Profile(w http.ResponseWriter, _ *http.Request) {
	profile, ok := c.session.Current()
	if !ok {
		response.Unauthorized(w)
		return
	}
	response.Success(w, profile.Public())
}
