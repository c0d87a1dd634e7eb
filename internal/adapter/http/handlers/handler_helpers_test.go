package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assistencia_os/internal/adapter/http/middleware"
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

var testSession = entities.Session{UID: "u-1", Email: "tec@loja.com", Role: entities.RoleTecnico}

// newTestRouter returns a router that injects testSession, standing in for
// the JWT middleware.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.WithSession(c, testSession)
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}
