package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func status(code int) gin.HandlerFunc {
	return func(c *gin.Context) { c.Status(code) }
}

func TestAPI_BasePath(t *testing.T) {
	assert.Equal(t, "/api/v1", NewAPI("v1").BasePath())
	assert.Equal(t, "/api/v2", NewAPI("v2").BasePath())
}

func TestAPI_Mount(t *testing.T) {
	engine := gin.New()
	NewAPI("v1").Add(Resource{
		Prefix: "/customers",
		Routes: []Route{
			get("", status(http.StatusOK)),
			post("", status(http.StatusCreated)),
			get("/:id", func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) }),
			put("/:id", status(http.StatusNoContent)),
			patch("/:id/status", status(http.StatusNoContent)),
			remove("/:id", status(http.StatusNoContent)),
		},
	}).Mount(engine)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/customers", http.StatusOK},
		{http.MethodPost, "/api/v1/customers", http.StatusCreated},
		{http.MethodPut, "/api/v1/customers/1", http.StatusNoContent},
		{http.MethodPatch, "/api/v1/customers/1/status", http.StatusNoContent},
		{http.MethodDelete, "/api/v1/customers/1", http.StatusNoContent},
		{http.MethodGet, "/customers", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(engine, tt.method, tt.path).Code)
		})
	}

	assert.Equal(t, "abc", serve(engine, http.MethodGet, "/api/v1/customers/abc").Body.String())
}

func TestAPI_Middleware(t *testing.T) {
	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("mark"))
	})

	NewAPI("v1").
		Use(func(c *gin.Context) {
			c.Set("mark", "api")
			c.Next()
		}).
		Add(
			Resource{
				Prefix: "/customers",
				Middleware: []gin.HandlerFunc{func(c *gin.Context) {
					c.Header("X-Resource", "customers")
					c.Next()
				}},
				Routes: []Route{get("", status(http.StatusOK))},
			},
			Resource{
				Prefix: "/system",
				Routes: []Route{get("/ping", func(c *gin.Context) {
					c.String(http.StatusOK, c.GetString("mark"))
				})},
			},
		).
		Mount(engine)

	assert.Equal(t, "api", serve(engine, http.MethodGet, "/api/v1/system/ping").Body.String())
	assert.Empty(t, serve(engine, http.MethodGet, "/health").Body.String())

	assert.Equal(t, "customers", serve(engine, http.MethodGet, "/api/v1/customers").Header().Get("X-Resource"))
	assert.Empty(t, serve(engine, http.MethodGet, "/api/v1/system/ping").Header().Get("X-Resource"))
}

func TestAPI_Routes(t *testing.T) {
	api := NewAPI("v1").Add(
		Resource{Prefix: "/customers", Routes: []Route{
			get("", status(http.StatusOK)),
			patch("/:id/address", status(http.StatusNoContent)),
		}},
		Resource{Prefix: "/system", Routes: []Route{get("/info", status(http.StatusOK))}},
	)

	assert.Equal(t, []string{
		"GET /api/v1/customers",
		"PATCH /api/v1/customers/:id/address",
		"GET /api/v1/system/info",
	}, api.Routes())
}

func TestCustomerResource(t *testing.T) {
	res := customerResource(nil)
	api := NewAPI("v1").Add(res)

	assert.Equal(t, "/customers", res.Prefix)
	assert.Equal(t, []string{
		"GET /api/v1/customers",
		"POST /api/v1/customers",
		"GET /api/v1/customers/:id",
		"PUT /api/v1/customers/:id",
		"PATCH /api/v1/customers/:id",
		"DELETE /api/v1/customers/:id",
		"PATCH /api/v1/customers/:id/address",
		"PATCH /api/v1/customers/:id/phonenumber",
		"PATCH /api/v1/customers/:id/status",
	}, api.Routes())
}
