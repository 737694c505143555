package router

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/realestate/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, DefaultBasePath, r.basePath)
	assert.Empty(t, r.registrars)
}

func TestRouterWithBasePath(t *testing.T) {
	r := NewRouter(gin.New(), WithBasePath("/v2"))

	assert.Equal(t, "/v2", r.basePath)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("registers every method", func(t *testing.T) {
		engine := gin.New()
		group := NewDomainGroup("items", "/items").
			GET("", func(c *gin.Context) { c.String(http.StatusOK, "get") }).
			POST("", func(c *gin.Context) { c.String(http.StatusOK, "post") }).
			PUT("/:id", func(c *gin.Context) { c.String(http.StatusOK, "put "+c.Param("id")) })
		NewRouter(engine).Register(group).Setup()

		assert.Equal(t, "get", serve(engine, http.MethodGet, "/api/items").Body.String())
		assert.Equal(t, "post", serve(engine, http.MethodPost, "/api/items").Body.String())
		assert.Equal(t, "put 7", serve(engine, http.MethodPut, "/api/items/7").Body.String())
	})

	t.Run("applies group middleware", func(t *testing.T) {
		engine := gin.New()
		group := NewDomainGroup("items", "/items").
			Use(func(c *gin.Context) {
				c.Header("X-Group", "items")
				c.Next()
			}).
			GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
		NewRouter(engine).Register(group).Setup()

		assert.Equal(t, "items", serve(engine, http.MethodGet, "/api/items").Header().Get("X-Group"))
	})

	t.Run("nests subgroups", func(t *testing.T) {
		engine := gin.New()
		parent := NewDomainGroup("owners", "/owner")
		parent.Group("photos", "/photos").GET("/:id", func(c *gin.Context) {
			c.String(http.StatusOK, c.Param("id"))
		})
		NewRouter(engine).Register(parent).Setup()

		assert.Equal(t, "42", serve(engine, http.MethodGet, "/api/owner/photos/42").Body.String())
	})

	t.Run("empty prefix mounts at the base path", func(t *testing.T) {
		engine := gin.New()
		group := NewDomainGroup("flat", "").
			GET("/create_thing", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		NewRouter(engine).Register(group).Setup()

		assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodGet, "/api/create_thing").Code)
	})

	t.Run("name and prefix", func(t *testing.T) {
		group := NewDomainGroup("owners", "/owner")
		assert.Equal(t, "owners", group.Name())
		assert.Equal(t, "/owner", group.Prefix())
	})
}

func TestRegisterSwagger(t *testing.T) {
	engine := gin.New()
	RegisterSwagger(engine, nil)

	w := serve(engine, http.MethodGet, "/swagger/doc.json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Real Estate API")
	assert.Contains(t, w.Body.String(), "/get_properies_by_filters")
}

func TestRegisterSwagger_AllowList(t *testing.T) {
	engine := gin.New()
	RegisterSwagger(engine, []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")})

	// httptest requests come from 192.0.2.1
	w := serve(engine, http.MethodGet, "/swagger/doc.json")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterAPI(t *testing.T) {
	engine := gin.New()
	log := zap.NewNop()

	RegisterAPI(NewRouter(engine), Handlers{
		Owners:     handler.NewOwnerHandler(nil, log),
		Properties: handler.NewPropertyHandler(nil, log),
		Images:     handler.NewImageHandler(nil, log),
	})

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"POST /api/owner/create_owner",
		"POST /api/create_property",
		"POST /api/add_property_image",
		"POST /api/create_property_trace",
		"PUT /api/change_property_price",
		"PUT /api/update_property",
		"GET /api/property/:propertyId/image/:imageId",
		"GET /api/get_properies_by_filters",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, engine.Routes(), 8)
}
