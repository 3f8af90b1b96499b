// Package routes mounts the HTTP surface. Content reads are open;
// the catalog, orders, and payments sit behind the authenticated
// group, and privileged operations additionally pass the admin guard.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/gearbay/app/controllers"
	"github.com/shashiranjanraj/gearbay/app/services"
	"github.com/shashiranjanraj/gearbay/pkg/logger"
	"github.com/shashiranjanraj/gearbay/pkg/metrics"
	"github.com/shashiranjanraj/gearbay/pkg/middleware"
	"github.com/shashiranjanraj/gearbay/pkg/rbac"
	"github.com/shashiranjanraj/gearbay/pkg/response"
	"github.com/shashiranjanraj/gearbay/pkg/router"
	"github.com/shashiranjanraj/gearbay/pkg/ws"
)

// Controllers bundles every constructed controller for registration.
type Controllers struct {
	Auth     *controllers.AuthController
	Catalog  *controllers.CatalogController
	Orders   *controllers.OrderController
	Payments *controllers.PaymentController
	Content  *controllers.ContentController
	Uploads  *controllers.UploadController
}

// RegisterAPI mounts every route. The admin guard runs a live role
// read against the user store on each privileged request.
func RegisterAPI(r *router.Router, c Controllers, auth *services.AuthService, feed *ws.Feed, graphqlHandler http.HandlerFunc) {
	requireAdmin := rbac.RequireAdmin(auth.Role)

	r.Get("/", "root", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok", "service": "gearbay"})
	})

	// Public content reads.
	r.Get("/reviews", "content.reviews", c.Content.Reviews)
	r.Get("/blogs", "content.blogs", c.Content.Blogs)
	r.Get("/team", "content.team", c.Content.Team)

	// Identity. The profile upsert is how a session starts, so it only
	// needs the email in the path; everything else requires a token.
	r.Put("/user/{email}", "user.upsert", c.Auth.UpsertProfile)

	authed := r.Group("", middleware.Authenticated)
	authed.Get("/admin/{email}", "user.checkAdmin", c.Auth.CheckAdmin)

	// Catalog. Reads require a session too, matching the rest of the
	// table.
	authed.Get("/services", "catalog.list", c.Catalog.List)
	authed.Get("/services/{id}", "catalog.get", c.Catalog.Get)
	authed.Post("/parts", "parts.create", c.Catalog.Create)
	authed.Put("/parts/{id}", "parts.update", c.Catalog.Update)
	authed.Put("/parts/stock/{id}", "parts.stock", c.Catalog.AdjustStock)

	// Orders.
	authed.Get("/orders", "orders.mine", c.Orders.ListMine)
	authed.Post("/orders", "orders.submit", c.Orders.Submit)
	authed.Get("/orders/{id}", "orders.get", c.Orders.Get)
	authed.Patch("/orders/{id}", "orders.confirmPayment", c.Payments.Confirm)
	authed.Patch("/orders/details/{id}", "orders.patchDetails", c.Orders.Patch)
	authed.Patch("/orders/paid/{id}", "orders.markPaid", c.Orders.MarkPaid)

	// Payments.
	authed.Post("/payment/create-payment-intent", "payment.intent", c.Payments.CreateIntent)
	authed.Get("/payments", "payment.history", c.Payments.History)

	// Reviews.
	authed.Post("/reviews", "content.addReview", c.Content.AddReview)

	// Admin-only surface: role grants, fulfillment, destructive ops.
	admin := r.Group("", middleware.Authenticated, requireAdmin)
	admin.Put("/user/admin/{email}", "user.grantAdmin", c.Auth.GrantAdmin)
	admin.Delete("/user/admin/{email}", "user.revokeAdmin", c.Auth.RevokeAdmin)
	admin.Delete("/user/{email}", "user.remove", c.Auth.RemoveUser)
	admin.Get("/orders/all", "orders.all", c.Orders.ListAll)
	admin.Get("/orders/stats", "orders.stats", c.Orders.Stats)
	admin.Patch("/orders/shipped/{id}", "orders.markShipped", c.Orders.MarkShipped)
	admin.Delete("/orders/{id}", "orders.delete", c.Orders.Delete)
	admin.Delete("/parts/{id}", "parts.delete", c.Catalog.Delete)
	admin.Post("/uploads", "uploads.image", c.Uploads.Image)

	// Operational surface. The order feed carries customer data, so it
	// sits behind the same guard as the rest of the admin surface.
	r.HandleFunc("/metrics", metrics.Handler())
	r.HandleFunc("/graphql", graphqlHandler)
	orderFeed := middleware.Authenticated(requireAdmin(http.HandlerFunc(feed.Upgrade)))
	r.HandleFunc("/ws/orders", orderFeed.ServeHTTP)

	logger.Info("routes registered", "count", len(r.Routes()))
}
