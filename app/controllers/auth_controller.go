// Package controllers maps HTTP requests onto the service layer. Every
// handler answers with a small JSON envelope; authorization failures
// are handled before the controller runs.
package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/app/services"
	"github.com/shashiranjanraj/gearbay/pkg/bind"
	"github.com/shashiranjanraj/gearbay/pkg/response"
	"github.com/shashiranjanraj/gearbay/pkg/store"
	"github.com/shashiranjanraj/gearbay/pkg/validate"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type upsertProfileRequest struct {
	Name    string `json:"name"    validate:"nullable,max=120"`
	Phone   string `json:"phone"   validate:"nullable,max=32"`
	Address string `json:"address" validate:"nullable,max=240"`
}

// UpsertProfile handles PUT /user/{email}: create-or-refresh the user
// record and hand back an identity token.
func (c *AuthController) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if msg := validate.Struct(&struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: email}); validate.HasErrors(msg) {
		response.ValidationError(w, msg)
		return
	}

	var body upsertProfileRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.UpsertProfile(r.Context(), models.User{
		Email:   email,
		Name:    body.Name,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not save profile")
		return
	}

	response.Success(w, map[string]any{"result": user, "token": token})
}

// CheckAdmin handles GET /admin/{email}: report whether the email
// currently holds the admin role.
func (c *AuthController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	isAdmin, err := c.service.IsAdmin(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not read role")
		return
	}
	response.Success(w, map[string]bool{"admin": isAdmin})
}

// GrantAdmin handles PUT /user/admin/{email}: elevate the target user.
func (c *AuthController) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	token, err := c.service.GrantAdmin(r.Context(), chi.URLParam(r, "email"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not grant role")
		return
	}
	response.Success(w, map[string]string{"token": token})
}

// RevokeAdmin handles DELETE /user/admin/{email}.
func (c *AuthController) RevokeAdmin(w http.ResponseWriter, r *http.Request) {
	err := c.service.RevokeAdmin(r.Context(), chi.URLParam(r, "email"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not revoke role")
		return
	}
	response.Message(w, http.StatusOK, "role revoked")
}

// RemoveUser handles DELETE /user/{email}: admin-initiated removal.
func (c *AuthController) RemoveUser(w http.ResponseWriter, r *http.Request) {
	err := c.service.RemoveUser(r.Context(), chi.URLParam(r, "email"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not remove user")
		return
	}
	response.Message(w, http.StatusOK, "user removed")
}
