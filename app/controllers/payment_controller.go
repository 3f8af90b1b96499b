package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/gearbay/app/services"
	"github.com/shashiranjanraj/gearbay/pkg/bind"
	"github.com/shashiranjanraj/gearbay/pkg/middleware"
	"github.com/shashiranjanraj/gearbay/pkg/response"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

type createIntentRequest struct {
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"nullable,in=usd,eur,gbp"`
}

// CreateIntent handles POST /payment/create-payment-intent. The price
// arrives in major units; the provider is billed in minor units.
func (c *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body createIntentRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	secret, err := c.service.CreateIntent(r.Context(), body.Price, body.Currency)
	if err != nil {
		response.Error(w, http.StatusBadGateway, "payment provider unavailable")
		return
	}
	response.Success(w, map[string]string{"clientSecret": secret})
}

type confirmPaymentRequest struct {
	TransactionID string  `json:"transactionId" validate:"required"`
	Price         float64 `json:"price"         validate:"required,gt=0"`
	Currency      string  `json:"currency"      validate:"nullable,in=usd,eur,gbp"`
}

// Confirm handles PATCH /orders/{id} with a payment body: record the
// charge and flip the order to paid in one transaction.
func (c *PaymentController) Confirm(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body confirmPaymentRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.Confirm(r.Context(), claims.UID, chi.URLParam(r, "id"),
		body.TransactionID, body.Price, body.Currency)
	switch {
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(w)
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "could not confirm payment")
	default:
		response.Success(w, map[string]any{"success": true, "order": order})
	}
}

// History handles GET /payments: the caller's recorded charges.
func (c *PaymentController) History(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	payments, err := c.service.History(r.Context(), claims.UID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list payments")
		return
	}
	response.Success(w, payments)
}
