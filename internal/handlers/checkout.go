package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/checkout"
	"storefront-backend/internal/models"
	"storefront-backend/internal/orders"
)

// GetPaymentChannels lists the manual payment options with their
// receiving accounts and QR images.
func GetPaymentChannels() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, checkout.Channels())
	}
}

// SubmitCheckout runs the final checkout step from a multipart form:
// billing fields, the serialized line items, and the receipt file.
func SubmitCheckout(workflow *checkout.Workflow, cartDeps CartDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		submission, err := parseSubmission(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := workflow.Submit(ctx, submission)
		if err != nil {
			// A set order id means the order exists and the flow can be
			// resumed; surface it alongside the error.
			if result.OrderID != "" {
				c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{
					"error":   "order created but receipt could not be recorded, please retry the upload",
					"orderId": result.OrderID,
				})
				return
			}
			respondError(c, route, err)
			return
		}

		clearSessionCart(ctx, c, cartDeps)

		c.JSON(http.StatusCreated, gin.H{
			"success":    true,
			"orderId":    result.OrderID,
			"status":     result.Status,
			"receiptUrl": result.ReceiptURL,
		})
	}
}

// ResumeCheckout re-attempts the receipt upload for an order stranded
// before payment was recorded.
func ResumeCheckout(workflow *checkout.Workflow) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/:orderId/receipt"
		defer handlePanic(c, route)

		receipt, err := receiptFromForm(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		result, err := workflow.Resume(ctx, c.Param("orderId"), receipt)
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"orderId":    result.OrderID,
			"status":     result.Status,
			"receiptUrl": result.ReceiptURL,
		})
	}
}

func parseSubmission(c *gin.Context) (checkout.Submission, error) {
	receipt, err := receiptFromForm(c)
	if err != nil {
		return checkout.Submission{}, err
	}

	var items []models.OrderItem
	if raw := c.PostForm("items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return checkout.Submission{}, errInvalidItems
		}
	}

	amount, err := parseAmount(c.PostForm("amount"))
	if err != nil {
		return checkout.Submission{}, err
	}

	return checkout.Submission{
		Info: orders.CustomerInfo{
			Name:          c.PostForm("name"),
			Email:         c.PostForm("email"),
			ContactNumber: c.PostForm("contactNumber"),
			Address:       c.PostForm("address"),
		},
		PaymentMethod: c.PostForm("paymentMethod"),
		Items:         items,
		TotalAmount:   amount,
		Receipt:       receipt,
	}, nil
}

func receiptFromForm(c *gin.Context) (checkout.ReceiptFile, error) {
	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		return checkout.ReceiptFile{}, errMissingReceipt
	}

	file, err := fileHeader.Open()
	if err != nil {
		return checkout.ReceiptFile{}, errMissingReceipt
	}

	return checkout.ReceiptFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}, nil
}

var (
	errMissingReceipt = errors.New("receipt image is required")
	errInvalidItems   = errors.New("items must be a JSON array of line items")
)

func parseAmount(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, errors.New("amount is required")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.New("amount must be a number")
	}
	return amount, nil
}

// clearSessionCart empties both redundant cart backends after a
// successful submission; a failure here only loses the pre-checkout
// cart snapshot and is not worth failing the order for.
func clearSessionCart(ctx context.Context, c *gin.Context, deps CartDeps) {
	ledger, remote := deps.buildLedger(ctx, c)
	ledger.Clear(ctx)
	ledger.SyncRemote(ctx, remote)
}
