package starstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staradmin/config"
	"staradmin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Upstream.BaseURL = server.URL
	cfg.Upstream.Timeout = 5 * time.Second

	return NewClient(cfg, TokenFunc(func() string { return token }))
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var got string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}), "token-abc")

	_, err := NewProductRepository(client).ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", got)
}

func TestClient_SkipsAuthHeaderForLogin(t *testing.T) {
	var got string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"user":{"username":"boss","role":"admin"},"token":"t"}`))
	}), "stale-token")

	_, _, err := NewAuthRepository(client).Login(context.Background(), "boss", "secret")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_NormalizesErrorBody(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Bu kod allaqachon mavjud"}`))
	}), "")

	_, err := NewCouponRepository(client).CreateCoupon(context.Background(), entity.Coupon{Code: "SALE10"})
	require.Error(t, err)
	assert.Equal(t, "Bu kod allaqachon mavjud", err.Error())
}

func TestClient_ErrorFallsBackToStatusLine(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}), "")

	_, err := NewOrderRepository(client).ListOrders(context.Background())
	require.Error(t, err)
	assert.Equal(t, "502 Bad Gateway", err.Error())
}

func TestClient_EmptyBodyIsNil(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), "")

	err := NewProductRepository(client).DeleteProduct(context.Background(), "p1")
	assert.NoError(t, err)
}

func TestEscapePathSegment(t *testing.T) {
	assert.Equal(t, "ord-42", escapePathSegment("ord-42"))
	assert.Equal(t, "a%2Fb%20c", escapePathSegment("a/b c"))
}
