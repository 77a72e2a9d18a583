// Package receipts stores uploaded proof-of-payment images and hands
// back publicly reachable URLs.
package receipts

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"storefront-backend/internal/apperr"
)

// MaxReceiptSize caps uploads at 10 MB.
const MaxReceiptSize = 10 << 20

// ValidateReceipt checks the upload before any order state is touched.
func ValidateReceipt(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return apperr.Validation("receipt must be an image file")
	}
	if size > MaxReceiptSize {
		return apperr.Validation("receipt image too large (max 10MB)")
	}
	return nil
}

// BlobStore accepts a binary blob plus filename and MIME type and
// returns a public URL for it.
type BlobStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

// DiskStore writes receipts below the public upload root, served as
// static files. The returned URL joins the configured base URL with the
// upload path.
type DiskStore struct {
	Root    string
	BaseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Save(_ context.Context, name, contentType string, r io.Reader) (string, error) {
	filename := uuid.NewString() + "_" + sanitizeFilename(name)

	dir := filepath.Join(s.Root, "receipts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[RECEIPT] [ERROR] failed to create directory %s: %v", dir, err)
		return "", apperr.Upstream("receipt storage", err)
	}

	fullPath := filepath.Join(dir, filename)
	out, err := os.Create(fullPath)
	if err != nil {
		log.Printf("[RECEIPT] [ERROR] failed to create file %s: %v", fullPath, err)
		return "", apperr.Upstream("receipt storage", err)
	}
	defer out.Close()

	written, err := io.Copy(out, io.LimitReader(r, MaxReceiptSize+1))
	if err != nil {
		log.Printf("[RECEIPT] [ERROR] failed to save file %s: %v", fullPath, err)
		return "", apperr.Upstream("receipt storage", err)
	}
	if written > MaxReceiptSize {
		// The declared upload size passed validation but the stream kept
		// going; refuse the truncated file rather than store it.
		out.Close()
		os.Remove(fullPath)
		log.Printf("[RECEIPT] [WARN] rejected %s: stream exceeds size limit", filename)
		return "", apperr.Validation("receipt image too large (max 10MB)")
	}

	log.Printf("[RECEIPT] [INFO] saved %s (%s)", filename, contentType)
	return fmt.Sprintf("%s/uploads/receipts/%s", s.BaseURL, filename), nil
}

// sanitizeFilename strips path separators and whitespace from a
// client-supplied name.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "receipt"
	}
	return name
}
