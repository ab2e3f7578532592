package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/foodcourt/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, "test-api-key", 5*time.Second)
}

func TestHTTPClient_RequestHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"status":"OK","message":"ok","data":[]}`))
	})
	c.SetToken("tok-123")

	_, err := c.Foods(context.Background())
	require.NoError(t, err)

	require.Equal(t, "test-api-key", got.Get("apiKey"))
	require.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	require.Equal(t, "application/json", got.Get("Content-Type"))
	require.NotEmpty(t, got.Get("X-Request-Id"))
}

func TestHTTPClient_NoAuthorizationWithoutToken(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"OK","message":"ok","data":[]}`))
	})

	_, err := c.Foods(context.Background())
	require.NoError(t, err)
	require.Empty(t, auth)
}

func TestHTTPClient_Authenticate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/login", r.URL.Path)
		w.Write([]byte(`{"status":"OK","message":"logged in","token":"jwt-abc"}`))
	})

	token, err := c.Authenticate(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "jwt-abc", token)
}

func TestHTTPClient_AuthenticateMissingToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","message":"weird"}`))
	})

	_, err := c.Authenticate(context.Background(), "a@b.c", "secret")
	require.Error(t, err)
}

func TestHTTPClient_CurrentUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/user", r.URL.Path)
		w.Write([]byte(`{"status":"OK","message":"ok","user":{"id":"u1","name":"Ana","email":"a@b.c","role":"admin"}}`))
	})

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.True(t, u.IsAdmin())
}

func TestHTTPClient_UnauthorizedMapsToSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"ERROR","message":"token expired"}`))
	})

	_, err := c.CurrentUser(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestHTTPClient_APIErrorCarriesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"ERROR","message":"foodId is required"}`))
	})

	_, err := c.CreateCartEntry(context.Background(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Contains(t, apiErr.Message, "foodId is required")
}

func TestHTTPClient_CreateCartEntryShapes(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantID string
	}{
		{"id under data", `{"status":"OK","message":"ok","data":{"id":"c1","foodId":"f1"}}`, "c1"},
		{"cartId under data", `{"status":"OK","message":"ok","data":{"cartId":"c2"}}`, "c2"},
		{"no data at all", `{"status":"OK","message":"added"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/v1/add-cart", r.URL.Path)
				w.Write([]byte(tt.body))
			})
			id, err := c.CreateCartEntry(context.Background(), "f1")
			require.NoError(t, err)
			require.Equal(t, tt.wantID, id)
		})
	}
}

func TestHTTPClient_CreateTransaction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/create-transaction", r.URL.Path)
		w.Write([]byte(`{"status":"OK","message":"ok","data":{"transactionId":"t9"}}`))
	})

	id, err := c.CreateTransaction(context.Background(), []string{"c1", "c2"}, "pm1")
	require.NoError(t, err)
	require.Equal(t, "t9", id)
}

func TestHTTPClient_CartEntries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/carts", r.URL.Path)
		w.Write([]byte(`{"status":"OK","message":"ok","data":[{"id":"c1","foodId":"f1","quantity":1},{"id":"c2","foodId":"f2","quantity":1}]}`))
	})

	entries, err := c.CartEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "c2", entries[1].ID)
}

func TestHTTPClient_ServerDownMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewHTTPClient(srv.URL, "k", time.Second)

	_, err := c.Foods(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}
