package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/library"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/services"
)

func setupTestRouter(t *testing.T, readOnly bool) (*gin.Engine, *services.LibraryService) {
	t.Helper()

	system := library.NewSystem(io.Discard)
	library.Seed(system)
	svc := services.NewLibraryService(system, nil)

	router := NewRouter(RouterConfig{
		Library:   svc,
		Processor: scheduler.NewRequestProcessor(svc, "* * * * *"),
		ReadOnly:  readOnly,
		Version:   "test",
	})
	return router, svc
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
