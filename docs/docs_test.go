package docs

import (
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocParses(t *testing.T) {
	var doc openapi2.T
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Equal(t, SwaggerInfo.Title, doc.Info.Title)
}

func TestSwaggerDocCoversRoutes(t *testing.T) {
	var doc openapi2.T
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	routes := []struct {
		path   string
		method string
	}{
		{"/orders", "GET"},
		{"/orders", "POST"},
		{"/orders/store/{storeId}", "GET"},
		{"/orders/{id}", "PUT"},
		{"/orders/{id}/status", "PUT"},
		{"/shipments", "POST"},
		{"/shipments/trace/{batchId}", "GET"},
		{"/shipments/{id}/items", "POST"},
		{"/shipments/{id}/items/{itemId}", "PATCH"},
		{"/shipments/{id}/status", "PATCH"},
		{"/shipments/{id}/trace", "GET"},
		{"/products", "GET"},
		{"/products/{id}", "PUT"},
		{"/categories", "POST"},
		{"/stores", "POST"},
		{"/users/me", "GET"},
		{"/users/{id}/role", "PATCH"},
	}

	for _, route := range routes {
		item, ok := doc.Paths[route.path]
		require.True(t, ok, "path %s missing", route.path)
		assert.NotNil(t, item.GetOperation(route.method), "%s %s missing", route.method, route.path)
	}
}
