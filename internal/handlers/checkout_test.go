package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/checkout"
	"storefront-backend/internal/models"
	"storefront-backend/internal/orders"
	"storefront-backend/internal/store"
)

type stubBlobStore struct{}

func (stubBlobStore) Save(_ context.Context, name, _ string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "http://localhost:8080/uploads/receipts/" + name, nil
}

func newCheckoutRouter(t *testing.T) (*gin.Engine, *orders.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderService := orders.NewService(store.NewMemoryOrderStore())
	workflow := checkout.NewWorkflow(orderService, stubBlobStore{}, nil)
	cartDeps := CartDeps{
		Carts:     store.NewMemoryCartStore(),
		Users:     store.NewMemoryUserStore(),
		JWTSecret: "test-secret",
	}

	r := gin.New()
	r.GET("/checkout/channels", GetPaymentChannels())
	r.POST("/checkout", SubmitCheckout(workflow, cartDeps))
	r.POST("/checkout/:orderId/receipt", ResumeCheckout(workflow))
	return r, orderService
}

type checkoutForm struct {
	fields  map[string]string
	receipt bool
}

func defaultCheckoutForm() checkoutForm {
	items, _ := json.Marshal([]models.OrderItem{
		{ID: "p1", Name: "Lavender Candle", Price: 300, Quantity: 1},
		{ID: "p2", Name: "Reed Diffuser", Price: 250, Quantity: 2},
	})
	return checkoutForm{
		fields: map[string]string{
			"name":          "Maria Santos",
			"email":         "maria@example.com",
			"contactNumber": "09171234567",
			"address":       "123 Mabini St, Manila",
			"paymentMethod": "gcash",
			"items":         string(items),
			"amount":        "800",
		},
		receipt: true,
	}
}

func encodeCheckoutForm(t *testing.T, form checkoutForm) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range form.fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("writing field %s: %v", key, err)
		}
	}
	if form.receipt {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="receipt"; filename="receipt.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("creating receipt part: %v", err)
		}
		if _, err := part.Write([]byte("jpeg-bytes")); err != nil {
			t.Fatalf("writing receipt: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func postCheckout(t *testing.T, r *gin.Engine, form checkoutForm) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := encodeCheckoutForm(t, form)
	req := httptest.NewRequest(http.MethodPost, "/checkout", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetPaymentChannels(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/checkout/channels", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var channels []checkout.Channel
	if err := json.Unmarshal(w.Body.Bytes(), &channels); err != nil {
		t.Fatalf("decoding channels: %v", err)
	}
	if len(channels) == 0 {
		t.Fatal("expected at least one payment channel")
	}
}

func TestSubmitCheckoutCreatesOrder(t *testing.T) {
	r, orderService := newCheckoutRouter(t)

	w := postCheckout(t, r, defaultCheckoutForm())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success    bool   `json:"success"`
		OrderID    string `json:"orderId"`
		Status     string `json:"status"`
		ReceiptURL string `json:"receiptUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success || !strings.HasPrefix(resp.OrderID, "ORD-") {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Status != string(models.StatusPaid) {
		t.Fatalf("expected Paid, got %s", resp.Status)
	}

	order, err := orderService.Get(context.Background(), resp.OrderID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if order.ReceiptURL != resp.ReceiptURL || order.ReceiptURL == "" {
		t.Fatalf("receipt url mismatch: %q vs %q", order.ReceiptURL, resp.ReceiptURL)
	}
}

func TestSubmitCheckoutMissingReceipt(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	form := defaultCheckoutForm()
	form.receipt = false
	w := postCheckout(t, r, form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "receipt") {
		t.Fatalf("expected receipt error, got %s", w.Body.String())
	}
}

func TestSubmitCheckoutBadAmount(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	form := defaultCheckoutForm()
	form.fields["amount"] = "eight hundred"
	w := postCheckout(t, r, form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitCheckoutMalformedItems(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	form := defaultCheckoutForm()
	form.fields["items"] = "{not json"
	w := postCheckout(t, r, form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitCheckoutUnknownPaymentMethod(t *testing.T) {
	r, orderService := newCheckoutRouter(t)

	form := defaultCheckoutForm()
	form.fields["paymentMethod"] = "barter"
	w := postCheckout(t, r, form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	list, _ := orderService.ListAll(context.Background())
	if len(list) != 0 {
		t.Fatalf("no order should exist, found %d", len(list))
	}
}

func TestSubmitCheckoutWrongTotal(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	form := defaultCheckoutForm()
	form.fields["amount"] = "725" // forgot the items add up to 800 with free shipping
	w := postCheckout(t, r, form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestResumeCheckout(t *testing.T) {
	r, orderService := newCheckoutRouter(t)

	// an order stranded before its receipt arrived
	orderID, err := orderService.Create(context.Background(), orders.CustomerInfo{
		Name:          "Maria Santos",
		Email:         "maria@example.com",
		ContactNumber: "09171234567",
		Address:       "123 Mabini St",
	}, []models.OrderItem{{ID: "p1", Name: "Candle", Price: 800, Quantity: 1}}, "GCash", 800)
	if err != nil {
		t.Fatalf("creating order: %v", err)
	}
	if err := orderService.UpdateStatus(context.Background(), orderID, models.StatusAwaitingReceipt); err != nil {
		t.Fatalf("marking awaiting receipt: %v", err)
	}

	form := checkoutForm{receipt: true}
	body, contentType := encodeCheckoutForm(t, form)
	req := httptest.NewRequest(http.MethodPost, "/checkout/"+orderID+"/receipt", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	order, _ := orderService.Get(context.Background(), orderID)
	if order.Status != models.StatusPaid {
		t.Fatalf("expected Paid after resume, got %s", order.Status)
	}
}

func TestResumeCheckoutUnknownOrder(t *testing.T) {
	r, _ := newCheckoutRouter(t)

	form := checkoutForm{receipt: true}
	body, contentType := encodeCheckoutForm(t, form)
	req := httptest.NewRequest(http.MethodPost, "/checkout/ORD-missing/receipt", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
