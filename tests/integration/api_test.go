//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/realestate/backend/internal/application/mediator"
	"github.com/realestate/backend/internal/application/realestate"
	"github.com/realestate/backend/internal/infrastructure/cache"
	"github.com/realestate/backend/internal/infrastructure/config"
	"github.com/realestate/backend/internal/infrastructure/imaging"
	"github.com/realestate/backend/internal/infrastructure/persistence"
	"github.com/realestate/backend/internal/interfaces/http/handler"
	"github.com/realestate/backend/internal/interfaces/http/middleware"
	"github.com/realestate/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestServer wraps the test database and the HTTP engine
type TestServer struct {
	DB     *TestDB
	Engine *gin.Engine
}

// NewTestServer wires the full request pipeline over a migrated database
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	log := zap.NewNop()
	testDB := NewTestDB(t)

	images := cache.NewInMemoryImageCache(time.Minute)
	t.Cleanup(func() { _ = images.Close() })

	m := mediator.New(log, mediator.LoggingBehavior(log))
	require.NoError(t, realestate.RegisterHandlers(m, realestate.Dependencies{
		Owners:     persistence.NewGormOwnerRepository(testDB.DB),
		Properties: persistence.NewGormPropertyRepository(testDB.DB),
		Images:     persistence.NewGormPropertyImageRepository(testDB.DB),
		Traces:     persistence.NewGormPropertyTraceRepository(testDB.DB),
		Normalizer: imaging.NewNormalizer(log),
		ImageCache: images,
		Logger:     log,
	}))
	m.Seal()

	engine, err := router.NewEngine(router.EngineConfig{
		Logger: log,
		HTTP:   config.HTTPConfig{MaxBodySize: 20 << 20},
	})
	require.NoError(t, err)

	db := &persistence.Database{DB: testDB.DB}
	engine.GET("/health", handler.NewHealthHandler(log).AddCheck("database", db.Ping).Health)
	router.RegisterAPI(router.NewRouter(engine), router.Handlers{
		Owners:     handler.NewOwnerHandler(m, log),
		Properties: handler.NewPropertyHandler(m, log),
		Images:     handler.NewImageHandler(m, log),
	})

	return &TestServer{DB: testDB, Engine: engine}
}

// Request performs an HTTP request with a JSON body
func (ts *TestServer) Request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}

func decodeID(t *testing.T, w *httptest.ResponseRecorder) uuid.UUID {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var id uuid.UUID
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &id))
	return id
}

func TestAPI_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)

	t.Run("health reports the database", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("property lifecycle", func(t *testing.T) {
		ts.DB.CleanTables()

		// owner without a photo, sent as a form
		ownerID := decodeID(t, ts.form("/api/owner/create_owner", map[string]string{
			"name":     "Helen Foster",
			"address":  "8 Quay Street",
			"birthday": "1968-11-30",
		}))

		body, err := json.Marshal(map[string]any{
			"name":         "Quay Apartment",
			"address":      "8 Quay Street, Flat 2",
			"price":        "420000.00",
			"codeInternal": "QA-2",
			"year":         2004,
			"idOwner":      ownerID.String(),
		})
		require.NoError(t, err)
		propertyID := decodeID(t, ts.Request(http.MethodPost, "/api/create_property", string(body)))

		decodeID(t, ts.Request(http.MethodPost, "/api/create_property_trace", `{
			"propertyId": "`+propertyID.String()+`",
			"dateSale": "2015-07-01T00:00:00Z",
			"name": "Developer sale",
			"value": "310000",
			"tax": "9300"
		}`))

		w := ts.Request(http.MethodPut, "/api/change_property_price",
			`{"id":"`+propertyID.String()+`","price":"399999.99"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = ts.Request(http.MethodGet, "/api/get_properies_by_filters?ownerName=helen&minYear=2000", "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var found []realestate.PropertyDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
		require.Len(t, found, 1)
		require.NotNil(t, found[0].Price)
		assert.Equal(t, "399999.99", found[0].Price.String())
		assert.Len(t, found[0].Traces, 1)
		assert.Empty(t, found[0].Images)
	})

	t.Run("unknown property price change is not found", func(t *testing.T) {
		w := ts.Request(http.MethodPut, "/api/change_property_price",
			`{"id":"`+uuid.NewString()+`","price":"1000"}`)
		assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

// form posts a multipart form without files
func (ts *TestServer) form(path string, fields map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}
