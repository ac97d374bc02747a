package openapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Test Fixtures
// =============================================================================

type testAddress struct {
	ID   int64  `json:"id"`
	City string `json:"city"`
}

type testWidget struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Password string          `json:"password,omitempty"`
	Address  testAddress     `json:"address"`
	Internal string          `json:"-"`
	hidden   string
}

func testGenerator() *Generator {
	g := NewGenerator(
		WithTitle("Test API"),
		WithVersion("2.0.0"),
		WithServer("/api/v1"),
	)
	g.RegisterResource(ResourceInfo{
		Name:           "widgets",
		Model:          testWidget{},
		Filters:        []Filter{{Name: "name", Type: "string"}, {Name: "price", Type: "number"}},
		SupportsFind:   true,
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
	})
	g.RegisterView(ViewInfo{
		Path:     "/widgets/roles/admin",
		Resource: "widgets",
		Summary:  "List admin widgets",
		Param:    "admin",
	})
	return g
}

// =============================================================================
// Generate Tests
// =============================================================================

func TestGenerate_InfoAndServers(t *testing.T) {
	spec := testGenerator().Generate()

	assert.Equal(t, "3.0.3", spec.OpenAPI)
	assert.Equal(t, "Test API", spec.Info.Title)
	assert.Equal(t, "2.0.0", spec.Info.Version)
	require.Len(t, spec.Servers, 1)
	assert.Equal(t, "/api/v1", spec.Servers[0].URL)
}

func TestGenerate_Paths(t *testing.T) {
	spec := testGenerator().Generate()

	collection := spec.Paths.Value("/api/v1/widgets")
	require.NotNil(t, collection)
	assert.NotNil(t, collection.Get)
	assert.NotNil(t, collection.Post)
	assert.Len(t, collection.Get.Parameters, 2)
	assert.Equal(t, "price", collection.Get.Parameters[1].Value.Name)

	item := spec.Paths.Value("/api/v1/widgets/{id}")
	require.NotNil(t, item)
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Put)
	assert.NotNil(t, item.Delete)
	assert.Nil(t, item.Patch)

	assert.NotNil(t, item.Put.Responses.Value("409"))
	assert.NotNil(t, item.Delete.Responses.Value("204"))
	assert.NotNil(t, collection.Post.Responses.Value("201"))
}

func TestGenerate_Views(t *testing.T) {
	spec := testGenerator().Generate()

	bare := spec.Paths.Value("/api/v1/widgets/roles/admin")
	require.NotNil(t, bare)
	assert.Equal(t, "listWidgetsByAdmin", bare.Get.OperationID)

	param := spec.Paths.Value("/api/v1/widgets/roles/admin/{admin}")
	require.NotNil(t, param)
	require.Len(t, param.Parameters, 1)
	assert.Equal(t, "admin", param.Parameters[0].Value.Name)
}

func TestGenerate_Schema(t *testing.T) {
	spec := testGenerator().Generate()

	widget := spec.Components.Schemas["Widget"]
	require.NotNil(t, widget)
	props := widget.Value.Properties

	assert.Contains(t, props, "name")
	assert.NotContains(t, props, "Internal")
	assert.NotContains(t, props, "hidden")

	assert.True(t, props["id"].Value.ReadOnly)
	assert.True(t, props["password"].Value.WriteOnly)
	assert.True(t, props["price"].Value.Type.Is("number"))
	assert.Equal(t, "decimal", props["price"].Value.Format)
	assert.Contains(t, props["address"].Value.Properties, "city")

	assert.NotNil(t, spec.Components.Schemas["Error"])
}

func TestGenerate_Cached(t *testing.T) {
	g := testGenerator()
	first := g.Generate()
	assert.Same(t, first, g.Generate())

	g.RegisterResource(ResourceInfo{Name: "gadgets", Model: testAddress{}, SupportsFind: true})
	assert.NotSame(t, first, g.Generate())
}

// =============================================================================
// Handler Tests
// =============================================================================

func TestHandler_ServesJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	testGenerator().Handler()(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestYAMLHandler_ServesBlockYAML(t *testing.T) {
	rec := httptest.NewRecorder()
	testGenerator().YAMLHandler()(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"], "version stays a string")
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestSingularize(t *testing.T) {
	tests := map[string]string{
		"customers":  "customer",
		"products":   "product",
		"addresses":  "address",
		"categories": "category",
		"staff":      "staff",
	}
	for in, want := range tests {
		assert.Equal(t, want, singularize(in), in)
	}
}
