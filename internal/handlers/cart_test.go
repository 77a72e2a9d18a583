package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/store"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := CartDeps{
		Carts:     store.NewMemoryCartStore(),
		Users:     store.NewMemoryUserStore(),
		JWTSecret: "test-secret",
	}

	r := gin.New()
	r.GET("/cart", GetCart(deps))
	r.POST("/cart/items", AddCartItem(deps))
	return r
}

func postCartItem(t *testing.T, r *gin.Engine, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"productId": "p1",
		"name":      "Lavender Candle",
		"price":     300.0,
	})
	if err != nil {
		t.Fatalf("encoding body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemDuplicateResponseShape(t *testing.T) {
	r := newCartRouter(t)

	first := postCartItem(t, r, nil)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first add, got %d: %s", first.Code, first.Body.String())
	}

	// same session, same product
	second := postCartItem(t, r, first.Result().Cookies())
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200 on duplicate add, got %d: %s", second.Code, second.Body.String())
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if string(resp["message"]) != `"already in bag"` {
		t.Fatalf("expected duplicate message, got %s", resp["message"])
	}
	// the duplicate response carries the same fields as every other
	// cart payload
	for _, field := range []string{"items", "total", "shippingFee"} {
		if _, ok := resp[field]; !ok {
			t.Errorf("duplicate response missing %q", field)
		}
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(resp["items"], &items); err != nil {
		t.Fatalf("decoding items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the cart to still hold one entry, got %d", len(items))
	}
}
