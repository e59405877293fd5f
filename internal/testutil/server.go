package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// APIServer is a stand-in for the remote todo API.
type APIServer struct {
	*httptest.Server
	hits atomic.Int32
}

// Hits reports how many requests the server has answered.
func (s *APIServer) Hits() int {
	return int(s.hits.Load())
}

// NewAPIServer starts a server answering every request with status and body.
// It is closed when the test ends.
func NewAPIServer(t *testing.T, status int, body []byte) *APIServer {
	t.Helper()

	srv := &APIServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// NewTodoServer starts a server returning the 200-item fixture.
func NewTodoServer(t *testing.T) *APIServer {
	t.Helper()
	return NewAPIServer(t, http.StatusOK, TodosJSON())
}
