package receipts

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront-backend/internal/apperr"
)

func TestValidateReceipt(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"jpeg within limit", "image/jpeg", 1 << 20, false},
		{"png within limit", "image/png", 500, false},
		{"exactly at limit", "image/jpeg", MaxReceiptSize, false},
		{"over limit", "image/jpeg", MaxReceiptSize + 1, true},
		{"pdf rejected", "application/pdf", 500, true},
		{"empty content type", "", 500, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateReceipt(tc.contentType, tc.size)
			if tc.wantErr && !apperr.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDiskStoreSave(t *testing.T) {
	root := t.TempDir()
	diskStore := NewDiskStore(root, "http://localhost:8080/")

	url, err := diskStore.Save(context.Background(), "my receipt.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, "http://localhost:8080/uploads/receipts/") {
		t.Fatalf("unexpected url: %s", url)
	}
	if strings.Contains(url, " ") {
		t.Fatalf("url contains whitespace: %s", url)
	}

	filename := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(root, "receipts", filename))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("file content mismatch: %q", data)
	}
}

func TestDiskStoreUniqueNames(t *testing.T) {
	diskStore := NewDiskStore(t.TempDir(), "http://localhost:8080")

	first, err := diskStore.Save(context.Background(), "receipt.jpg", "image/jpeg", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second, err := diskStore.Save(context.Background(), "receipt.jpg", "image/jpeg", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if first == second {
		t.Fatal("same client filename must not collide")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"receipt.jpg", "receipt.jpg"},
		{"my receipt.jpg", "my_receipt.jpg"},
		{"../../etc/passwd", "passwd"},
		{"", "receipt"},
		{"   ", "receipt"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// endlessReader never runs dry, like a client whose body keeps going
// past the size it declared.
type endlessReader struct{}

func (endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'a'
	}
	return len(p), nil
}

func TestDiskStoreRejectsOverlongStream(t *testing.T) {
	root := t.TempDir()
	diskStore := NewDiskStore(root, "http://localhost:8080")

	_, err := diskStore.Save(context.Background(), "receipt.jpg", "image/jpeg", endlessReader{})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError for an overlong stream, got %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(root, "receipts"))
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("truncated file must not be kept, found %d entries", len(entries))
	}
}
