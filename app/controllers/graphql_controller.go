package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/stylestore/app/catalog"
	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/pkg/response"
)

// GraphQLController exposes the catalog as a read-only GraphQL endpoint,
// an alternative to the REST catalog routes for clients that want to
// shape their own product queries.
type GraphQLController struct {
	schema graphql.Schema
}

func NewGraphQLController(c *catalog.Catalog) (*GraphQLController, error) {
	schema, err := buildCatalogSchema(c)
	if err != nil {
		return nil, err
	}
	return &GraphQLController{schema: schema}, nil
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// Query executes a GraphQL query against the catalog schema.
func (c *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.Int},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"image":       &graphql.Field{Type: graphql.String},
		"category":    &graphql.Field{Type: graphql.String},
		"inStock":     &graphql.Field{Type: graphql.Boolean, Resolve: resolveProductField(func(p models.Product) interface{} { return p.InStock })},
		"featured":    &graphql.Field{Type: graphql.Boolean},
		"rating":      &graphql.Field{Type: graphql.Float},
		"reviews":     &graphql.Field{Type: graphql.Int},
	},
})

// resolveProductField handles fields whose Go name differs from the
// GraphQL field name, where the default FieldResolver would miss.
func resolveProductField(pick func(models.Product) interface{}) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		product, ok := p.Source.(models.Product)
		if !ok {
			return nil, nil
		}
		return pick(product), nil
	}
}

func buildCatalogSchema(c *catalog.Catalog) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"featured": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					products := c.All()
					if q, ok := p.Args["search"].(string); ok && q != "" {
						products = c.Search(q)
					}
					if category, ok := p.Args["category"].(string); ok && category != "" {
						filtered := products[:0:0]
						for _, prod := range products {
							if prod.Category == category {
								filtered = append(filtered, prod)
							}
						}
						products = filtered
					}
					if featured, ok := p.Args["featured"].(bool); ok && featured {
						filtered := products[:0:0]
						for _, prod := range products {
							if prod.Featured {
								filtered = append(filtered, prod)
							}
						}
						products = filtered
					}
					return products, nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					product, ok := c.ByID(id)
					if !ok {
						return nil, nil
					}
					return product, nil
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return c.Categories(), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}
