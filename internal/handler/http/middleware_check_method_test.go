package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodCheckedRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/db/{key}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("get"))
	})
	router.Put("/db/{key}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("put"))
	})
	router.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("register"))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "registered GET", method: http.MethodGet, path: "/db/abc", wantStatus: http.StatusOK, wantBody: "get"},
		{name: "registered PUT", method: http.MethodPut, path: "/db/abc", wantStatus: http.StatusOK, wantBody: "put"},
		{name: "registered POST", method: http.MethodPost, path: "/register", wantStatus: http.StatusOK, wantBody: "register"},
		{name: "DELETE on parameterised route", method: http.MethodDelete, path: "/db/abc", wantStatus: http.StatusNotFound},
		{name: "PATCH on parameterised route", method: http.MethodPatch, path: "/db/abc", wantStatus: http.StatusNotFound},
		{name: "GET on POST-only route", method: http.MethodGet, path: "/register", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMethodCheckedRouter()
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
