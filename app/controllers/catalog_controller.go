package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/app/services"
	"github.com/shashiranjanraj/gearbay/pkg/bind"
	"github.com/shashiranjanraj/gearbay/pkg/middleware"
	"github.com/shashiranjanraj/gearbay/pkg/response"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

// List handles GET /services. ?sorted=true returns newest-first.
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	sorted := r.URL.Query().Get("sorted") == "true"

	parts, err := c.service.List(r.Context(), sorted)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list parts")
		return
	}
	response.Success(w, parts)
}

// Get handles GET /services/{id}.
func (c *CatalogController) Get(w http.ResponseWriter, r *http.Request) {
	part, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not read part")
		return
	}
	response.Success(w, part)
}

type createPartRequest struct {
	Title       string  `json:"title"       validate:"required,max=200"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"nullable,gte=0"`
	MinOrder    int     `json:"minOrder"    validate:"nullable,gte=0"`
	Description string  `json:"description" validate:"nullable,max=2000"`
	ImageURL    string  `json:"img"         validate:"nullable,max=500"`
}

// Create handles POST /parts. The listing owner is the authenticated
// caller; a body-supplied email is ignored.
func (c *CatalogController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body createPartRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	part, err := c.service.Create(r.Context(), claims.Email, models.Part{
		Title:       body.Title,
		Price:       body.Price,
		Stock:       body.Stock,
		MinOrder:    body.MinOrder,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not create part")
		return
	}
	response.Created(w, part)
}

type updatePartRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"img"`
}

// Update handles PUT /parts/{id}. A submission carrying a title the
// caller already listed is rejected and the existing record returned
// with success=false.
func (c *CatalogController) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body updatePartRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	fields := map[string]any{"title": body.Title}
	if body.Price != nil {
		fields["price"] = *body.Price
	}
	if body.Description != nil {
		fields["description"] = *body.Description
	}
	if body.ImageURL != nil {
		fields["img"] = *body.ImageURL
	}

	res, err := c.service.UpdateDedup(r.Context(), claims.Email, chi.URLParam(r, "id"), body.Title, fields)
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not update part")
		return
	}
	response.Success(w, map[string]any{"success": res.Applied, "part": res.Part})
}

type stockRequest struct {
	Stock int `json:"stock" validate:"gte=0"`
}

// AdjustStock handles PUT /parts/stock/{id}: an upsert, so a missing
// record is created rather than rejected.
func (c *CatalogController) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var body stockRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.AdjustStock(r.Context(), chi.URLParam(r, "id"), body.Stock); err != nil {
		response.Error(w, http.StatusInternalServerError, "could not adjust stock")
		return
	}
	response.Message(w, http.StatusOK, "stock updated")
}

// Delete handles DELETE /parts/{id}. Admin-only.
func (c *CatalogController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete part")
		return
	}
	response.Message(w, http.StatusOK, "part removed")
}
