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

type OrderController struct {
	orders *services.OrderService
	auth   *services.AuthService
}

func NewOrderController(orders *services.OrderService, auth *services.AuthService) *OrderController {
	return &OrderController{orders: orders, auth: auth}
}

type submitOrderRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Title     string  `json:"title"     validate:"required,max=200"`
	Price     float64 `json:"price"     validate:"required,gt=0"`
	Quantity  int     `json:"quantity"  validate:"required,gt=0"`
	Address   string  `json:"address"   validate:"nullable,max=240"`
	Phone     string  `json:"phone"     validate:"nullable,max=32"`
}

// Submit handles POST /orders. A repeat submission for the same product
// is a soft fail: 200 with success=false and the stored order.
func (c *OrderController) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body submitOrderRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	res, err := c.orders.Submit(r.Context(), models.Order{
		UID: claims.UID,
		ProductInfo: models.ProductInfo{
			ID:       body.ProductID,
			Title:    body.Title,
			Price:    body.Price,
			Quantity: body.Quantity,
		},
		Address: body.Address,
		Phone:   body.Phone,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not submit order")
		return
	}

	if !res.Accepted {
		response.Success(w, map[string]any{"success": false, "order": res.Order})
		return
	}
	response.Created(w, map[string]any{"success": true, "order": res.Order})
}

// ListMine handles GET /orders?uid=: the caller's own orders. Asking
// for another uid is Forbidden even with a valid token.
func (c *OrderController) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	uid := r.URL.Query().Get("uid")
	if uid == "" {
		uid = claims.UID
	}

	orders, err := c.orders.ListMine(r.Context(), claims.UID, uid)
	if errors.Is(err, services.ErrForbidden) {
		response.Forbidden(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	response.Success(w, orders)
}

// ListAll handles GET /orders/all. Admin-only.
func (c *OrderController) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not list orders")
		return
	}
	response.Success(w, orders)
}

// Stats handles GET /orders/stats. Admin-only.
func (c *OrderController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.orders.Stats(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not compute stats")
		return
	}
	response.Success(w, stats)
}

// Get handles GET /orders/{id}.
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	isAdmin, _ := c.auth.IsAdmin(r.Context(), claims.Email)
	order, err := c.orders.Get(r.Context(), claims.UID, chi.URLParam(r, "id"), isAdmin)
	switch {
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(w)
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "could not read order")
	default:
		response.Success(w, order)
	}
}

type markPaidRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

// MarkPaid handles PATCH /orders/paid/{id}. Repeating the call on an
// already-paid order succeeds without a second effect.
func (c *OrderController) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var body markPaidRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.MarkPaid(r.Context(), chi.URLParam(r, "id"), body.TransactionID)
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not mark order paid")
		return
	}
	response.Success(w, map[string]any{"success": true, "order": order})
}

// MarkShipped handles PATCH /orders/shipped/{id}. Admin-only; shipping
// an unpaid order is a 409.
func (c *OrderController) MarkShipped(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.MarkShipped(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, services.ErrConflict):
		response.Error(w, http.StatusConflict, "order is not paid")
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(w)
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "could not mark order shipped")
	default:
		response.Success(w, map[string]any{"success": true, "order": order})
	}
}

// Patch handles PATCH /orders/details/{id}: delivery details only.
func (c *OrderController) Patch(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var patch map[string]any
	if _, err := bind.JSON(r, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := c.orders.ApplyPatch(r.Context(), claims.UID, chi.URLParam(r, "id"), patch)
	switch {
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(w)
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(w)
	case err != nil:
		response.Error(w, http.StatusInternalServerError, "could not update order")
	default:
		response.Success(w, order)
	}
}

// Delete handles DELETE /orders/{id}. Admin-only on the route; the
// service still allows an owner delete when mounted elsewhere.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	err := c.orders.Delete(r.Context(), claims.UID, chi.URLParam(r, "id"), true)
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(w)
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not delete order")
		return
	}
	response.Message(w, http.StatusOK, "order removed")
}
