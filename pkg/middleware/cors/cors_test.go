package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(origins []string, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(origins))
	r.GET("/api/student", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/student", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAllowsAnyOriginByDefault(t *testing.T) {
	rec := serve(nil, "https://kiosk.example")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRestrictsToConfiguredOrigins(t *testing.T) {
	rec := serve([]string{"https://kiosk.example/"}, "https://kiosk.example")
	assert.Equal(t, "https://kiosk.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve([]string{"https://kiosk.example"}, "https://other.example")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
