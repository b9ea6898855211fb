package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedRoutesAndParams(t *testing.T) {
	r := New()
	r.Get("/skus/{id}", "skus.show", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(Param(req, "id")))
	})

	req := httptest.NewRequest(http.MethodGet, "/skus/42", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())

	path, ok := r.Path("skus.show")
	require.True(t, ok)
	assert.Equal(t, "/skus/{id}", path)

	url, err := r.URL("skus.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/skus/7", url)
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := New()
	api := r.Group("/api", mark("group"))
	api.Get("/ping", "ping", func(w http.ResponseWriter, req *http.Request) {
		order = append(order, "handler")
	}, mark("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	r.Handler().ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"group", "route", "handler"}, order)
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/a", "a", func(http.ResponseWriter, *http.Request) {})
	api := r.Group("/api")
	api.Post("/b", "b", func(http.ResponseWriter, *http.Request) {})

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "GET", infos[0].Method)
	assert.Equal(t, "/a", infos[0].Path)
	assert.Equal(t, "/api/b", infos[1].Path)
}
