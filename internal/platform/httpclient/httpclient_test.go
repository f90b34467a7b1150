package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesBaseURL(t *testing.T) {
	_, err := New("", 0)
	assert.Error(t, err)

	_, err = New("not a url", 0)
	assert.Error(t, err)

	_, err = New("ftp://example.com", 0)
	assert.Error(t, err)

	c, err := New("http://localhost:8080/", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestGetJSON_DecodesAndSendsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats/pet-names", r.URL.Path)
		assert.Equal(t, "Bob Smith", r.URL.Query().Get("person"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"names":"Dolly & Spot"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, 0)
	require.NoError(t, err)

	var out struct {
		Names string `json:"names"`
	}
	err = c.GetJSON(context.Background(), "/stats/pet-names", url.Values{"person": {"Bob Smith"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Dolly & Spot", out.Names)
}

func TestGetJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "person not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(srv.URL, 0)
	require.NoError(t, err)

	err = c.GetJSON(context.Background(), "/people/Nobody", nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "person not found", he.Body)
}
