package storeapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/storefront_totals/internal/adapters/storeapi"
	"github.com/SscSPs/storefront_totals/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartBody = `{
  "coupons": [{"code": "spring", "totals": {"currency_code": "USD", "total_discount": "500", "total_discount_tax": "0"}}],
  "items": [{"key": "abc", "id": 10, "quantity": 2, "name": "Mug"}],
  "items_count": 2,
  "totals": {"currency_code": "USD", "currency_minor_unit": 2, "total_items": "2000", "total_price": "1500", "total_tax": "0"}
}`

type recordedRequest struct {
	method string
	path   string
	token  string
	body   map[string]any
}

func newStoreServer(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.token = r.Header.Get(storeapi.CartTokenHeader)
		rec.body = nil
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, rec
}

func TestCartRepository_Requests(t *testing.T) {
	server, rec := newStoreServer(t, http.StatusOK, cartBody)
	repo := storeapi.NewCartRepository(storeapi.NewClient(server.URL+"/wp-json/", time.Second))
	ctx := context.Background()

	cart, err := repo.GetCart(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/wp-json/wc/store/v1/cart", rec.path)
	assert.Equal(t, "tok", rec.token)
	assert.Equal(t, int64(2), cart.ItemsCount)
	assert.Equal(t, "1500", cart.Totals.TotalPrice)
	assert.Equal(t, []string{"spring"}, cart.CouponCodes())

	_, err = repo.UpdateItemQuantity(ctx, "tok", "abc", 3)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/wp-json/wc/store/v1/cart/update-item", rec.path)
	assert.Equal(t, map[string]any{"key": "abc", "quantity": float64(3)}, rec.body)

	_, err = repo.RemoveItem(ctx, "tok", "abc")
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/wc/store/v1/cart/remove-item", rec.path)
	assert.Equal(t, map[string]any{"key": "abc"}, rec.body)

	_, err = repo.ApplyCoupon(ctx, "tok", "spring")
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/wc/store/v1/cart/apply-coupon", rec.path)
	assert.Equal(t, map[string]any{"code": "spring"}, rec.body)

	_, err = repo.RemoveCoupon(ctx, "tok", "spring")
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/wc/store/v1/cart/remove-coupon", rec.path)
}

func TestCartRepository_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid coupon",
			status:  http.StatusBadRequest,
			body:    `{"code":"woocommerce_rest_cart_coupon_error","message":"Coupon \"bogus\" does not exist!","data":{"status":400}}`,
			wantErr: apperrors.ErrValidation,
			wantMsg: "does not exist",
		},
		{
			name:    "unknown item",
			status:  http.StatusNotFound,
			body:    `{"code":"woocommerce_rest_cart_invalid_key","message":"Cart item does not exist.","data":{"status":404}}`,
			wantErr: apperrors.ErrNotFound,
			wantMsg: "woocommerce_rest_cart_invalid_key",
		},
		{
			name:    "server failure",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: apperrors.ErrUpstream,
			wantMsg: "500",
		},
		{
			name:    "malformed success body",
			status:  http.StatusOK,
			body:    `{"items": "nope"`,
			wantErr: apperrors.ErrUpstream,
			wantMsg: "decode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newStoreServer(t, tt.status, tt.body)
			repo := storeapi.NewCartRepository(storeapi.NewClient(server.URL, time.Second))

			_, err := repo.ApplyCoupon(context.Background(), "tok", "bogus")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCartRepository_NotConfigured(t *testing.T) {
	repo := storeapi.NewCartRepository(storeapi.NewClient("", time.Second))
	_, err := repo.GetCart(context.Background(), "tok")
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestClient_BreakerOpensOnUpstreamFailures(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	var transitions []string
	client := storeapi.NewClient(server.URL, time.Second,
		storeapi.WithBreakerSettings(1, time.Minute, time.Minute, 2),
		storeapi.WithStateObserver(func(target, from, to string, _ int) {
			transitions = append(transitions, target+":"+from+"->"+to)
		}),
	)
	repo := storeapi.NewCartRepository(client)

	for i := 0; i < 3; i++ {
		_, err := repo.GetCart(context.Background(), "tok")
		assert.ErrorIs(t, err, apperrors.ErrUpstream)
	}

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, []string{"store_api:closed->open"}, transitions)
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	repo := storeapi.NewCartRepository(storeapi.NewClient(server.URL, time.Second,
		storeapi.WithBreakerSettings(1, time.Minute, time.Minute, 2)))

	for i := 0; i < 4; i++ {
		_, err := repo.ApplyCoupon(context.Background(), "tok", "bogus")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	assert.Equal(t, int32(4), hits.Load())
}
