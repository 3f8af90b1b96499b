package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/gearbay/app/controllers"
	"github.com/shashiranjanraj/gearbay/app/graph"
	"github.com/shashiranjanraj/gearbay/app/routes"
	"github.com/shashiranjanraj/gearbay/app/services"
	"github.com/shashiranjanraj/gearbay/pkg/router"
	"github.com/shashiranjanraj/gearbay/pkg/ws"
)

// gearbay route:list — print all registered routes. Registration only
// mounts handlers, so the dry services here are never invoked.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := services.NewAuthService(nil)
		catalogSvc := services.NewCatalogService(nil)
		orderSvc := services.NewOrderService(nil)
		paymentSvc := services.NewPaymentService(nil, orderSvc, nil, nil)

		schema, err := graph.NewSchema(catalogSvc)
		if err != nil {
			return err
		}

		r := router.New()
		routes.RegisterAPI(r, routes.Controllers{
			Auth:     controllers.NewAuthController(authSvc),
			Catalog:  controllers.NewCatalogController(catalogSvc),
			Orders:   controllers.NewOrderController(orderSvc, authSvc),
			Payments: controllers.NewPaymentController(paymentSvc),
			Content:  controllers.NewContentController(nil),
			Uploads:  controllers.NewUploadController(nil),
		}, authSvc, ws.NewFeed(), graph.Handler(schema))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
