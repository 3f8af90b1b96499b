// Package graph exposes a read-only catalog query surface over GraphQL.
// Mutations stay on the REST routes where the authorization guard runs.
package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/app/services"
	gql "github.com/shashiranjanraj/gearbay/pkg/graphql"
	"github.com/shashiranjanraj/gearbay/pkg/response"
)

var partType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Part",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				part, ok := p.Source.(models.Part)
				if !ok {
					return nil, nil
				}
				return part.ID.Hex(), nil
			},
		},
		"title":       &graphql.Field{Type: graphql.String},
		"email":       &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"stock":       &graphql.Field{Type: graphql.Int},
		"minOrder":    &graphql.Field{Type: graphql.Int},
		"description": &graphql.Field{Type: graphql.String},
		"img":         &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the catalog query schema.
func NewSchema(catalog *services.CatalogService) (graphql.Schema, error) {
	root := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"parts": &graphql.Field{
				Type: graphql.NewList(partType),
				Args: graphql.FieldConfigArgument{
					"sorted": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					sorted, _ := p.Args["sorted"].(bool)
					return catalog.List(p.Context, sorted)
				},
			},
			"part": &graphql.Field{
				Type: partType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					return catalog.Get(p.Context, id)
				},
			},
		},
	})

	return gql.NewSchema(root)
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// Handler returns the POST /graphql handler.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid GraphQL request")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			Context:        r.Context(),
		})
		response.JSON(w, http.StatusOK, result)
	}
}
