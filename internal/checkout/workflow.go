// Package checkout drives the multi-step payment flow: create the
// order, upload the receipt, link it, notify. The steps are independent
// network calls with no transactional wrapping; the order carries an
// AwaitingReceipt status between creation and receipt attachment so an
// interrupted flow is detectable and resumable instead of silently
// stranding a Pending order.
package checkout

import (
	"context"
	"io"
	"log"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/orders"
	"storefront-backend/internal/receipts"
	"storefront-backend/internal/telemetry"
)

// Notifier sends the transactional emails the flow triggers. Both sends
// are best-effort: a failure never blocks success reporting.
type Notifier interface {
	SendAdminNotification(order *models.Order) error
	SendOrderConfirmation(order *models.Order) error
}

// ReceiptFile is the uploaded proof-of-payment image.
type ReceiptFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Submission is one complete checkout: billing details, the chosen
// payment channel, the cart line items with the client-computed total,
// and the receipt image.
type Submission struct {
	Info          orders.CustomerInfo
	PaymentMethod string
	Items         []models.OrderItem
	TotalAmount   float64
	Receipt       ReceiptFile
}

// Result reports how far the flow got. OrderID is set as soon as the
// order exists, even when a later step failed, so the caller can resume.
type Result struct {
	OrderID    string             `json:"orderId"`
	Status     models.OrderStatus `json:"status"`
	ReceiptURL string             `json:"receiptUrl,omitempty"`
}

type Workflow struct {
	orders   *orders.Service
	blobs    receipts.BlobStore
	notifier Notifier
}

func NewWorkflow(orderService *orders.Service, blobs receipts.BlobStore, notifier Notifier) *Workflow {
	return &Workflow{orders: orderService, blobs: blobs, notifier: notifier}
}

// Submit runs the final checkout step. On an error after order creation
// the returned Result still carries the order id; the order stays in
// AwaitingReceipt (or Pending) and Resume can complete it. Nothing is
// rolled back.
func (w *Workflow) Submit(ctx context.Context, sub Submission) (Result, error) {
	channel, ok := ChannelByID(sub.PaymentMethod)
	if !ok {
		return Result{}, apperr.Validation("unknown payment method %q", sub.PaymentMethod)
	}
	if err := receipts.ValidateReceipt(sub.Receipt.ContentType, sub.Receipt.Size); err != nil {
		return Result{}, err
	}

	orderID, err := w.orders.Create(ctx, sub.Info, sub.Items, channel.Name, sub.TotalAmount)
	if err != nil {
		return Result{}, err
	}
	telemetry.OrdersCreated.Inc()

	// Persisted step state: anyone finding the order in this status
	// knows creation succeeded and the receipt never arrived.
	if err := w.orders.UpdateStatus(ctx, orderID, models.StatusAwaitingReceipt); err != nil {
		log.Println("[CHECKOUT] [WARN] could not mark order awaiting receipt:", err)
	}

	result, err := w.attachAndNotify(ctx, orderID, sub.Receipt)
	if err != nil {
		return Result{OrderID: orderID, Status: models.StatusAwaitingReceipt}, err
	}
	return result, nil
}

// Resume completes an interrupted flow by re-attempting the receipt
// upload for an order still waiting on one.
func (w *Workflow) Resume(ctx context.Context, orderID string, receipt ReceiptFile) (Result, error) {
	if err := receipts.ValidateReceipt(receipt.ContentType, receipt.Size); err != nil {
		return Result{}, err
	}

	order, err := w.orders.Get(ctx, orderID)
	if err != nil {
		return Result{}, err
	}
	if order.Status != models.StatusAwaitingReceipt && order.Status != models.StatusPending {
		return Result{}, apperr.Validation("order %s already has a payment recorded", orderID)
	}

	result, err := w.attachAndNotify(ctx, orderID, receipt)
	if err != nil {
		return Result{OrderID: orderID, Status: order.Status}, err
	}
	return result, nil
}

func (w *Workflow) attachAndNotify(ctx context.Context, orderID string, receipt ReceiptFile) (Result, error) {
	url, err := w.blobs.Save(ctx, receipt.Name, receipt.ContentType, receipt.Reader)
	if err != nil {
		log.Println("[CHECKOUT] [ERROR] receipt upload failed:", err)
		return Result{}, err
	}

	if err := w.orders.AttachReceipt(ctx, orderID, url); err != nil {
		log.Println("[CHECKOUT] [ERROR] receipt attach failed:", err)
		return Result{}, err
	}
	telemetry.ReceiptsAttached.Inc()

	order, err := w.orders.Get(ctx, orderID)
	if err != nil {
		// The payment is recorded; only the notification snapshot is
		// missing. Report success without emails.
		log.Println("[CHECKOUT] [WARN] order reread failed, skipping notifications:", err)
		return Result{OrderID: orderID, Status: models.StatusPaid, ReceiptURL: url}, nil
	}

	if w.notifier != nil {
		go w.notify(order)
	}

	return Result{OrderID: orderID, Status: order.Status, ReceiptURL: url}, nil
}

// notify runs detached from the request: a failed send is logged and
// counted, never surfaced to the customer.
func (w *Workflow) notify(order *models.Order) {
	if err := w.notifier.SendAdminNotification(order); err != nil {
		log.Println("[CHECKOUT] [WARN] admin notification failed:", err)
	}
	if order.Email != "" && order.Email != "N/A" {
		if err := w.notifier.SendOrderConfirmation(order); err != nil {
			log.Println("[CHECKOUT] [WARN] order confirmation failed:", err)
		}
	}
}
