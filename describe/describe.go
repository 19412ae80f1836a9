// Package describe produces the canonical, bounded-length description of an
// accrual row.
//
// A row carrying an invoice number is described as "INV<invoice>" with no
// model call. Otherwise a Gemini-backed Normalizer rewrites the raw checkbook
// description into a short phrase naming the purchased item or service; when
// the model is unavailable, errors out, or times out, a deterministic local
// rewrite takes over. Whatever happens, Service.Normalize returns a non-empty
// string of at most MaxLen characters.
package describe

import (
	"context"
	"log"
	"strings"
	"time"
)

const (
	// MaxLen is the length bound of a normalized description.
	MaxLen = 40

	// DefaultDescription stands in for rows with no usable description.
	DefaultDescription = "Service/Supply"

	// DefaultTimeout bounds one model call. A slow call falls back to the
	// local rewrite, it is never retried.
	DefaultTimeout = 20 * time.Second
)

// Request carries one row's description inputs to a Normalizer.
type Request struct {
	Description string // raw checkbook description, already defaulted
	PONumber    string
	MaxLen      int
}

// Normalizer rewrites a raw description into a clean phrase. Implementations
// may exceed MaxLen; the Service applies the length bound.
type Normalizer interface {
	Normalize(ctx context.Context, req Request) (string, error)
}

// Service is the description capability handed to the extraction pipeline.
// Remote may be nil to run fully offline on the local rewrite.
type Service struct {
	Remote  Normalizer
	Timeout time.Duration
}

// NewService returns a Service over the given remote normalizer (which may be
// nil) with the default timeout.
func NewService(remote Normalizer) *Service {
	return &Service{Remote: remote, Timeout: DefaultTimeout}
}

// Normalize returns the canonical description for a row.
//
// The invoice path is deterministic and takes precedence: it never consults
// the remote normalizer. All other rows go through the remote normalizer when
// one is configured, falling back to the local rewrite on any failure.
func (s *Service) Normalize(ctx context.Context, raw, poNumber, invoice string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "nan") {
		raw = DefaultDescription
	}

	invoice = strings.TrimSpace(invoice)
	if invoice != "" && !strings.EqualFold(invoice, "nan") {
		return Ellipsis("INV"+invoice, MaxLen)
	}

	req := Request{Description: raw, PONumber: poNumber, MaxLen: MaxLen}
	if s.Remote != nil {
		timeout := s.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		rctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if out, err := s.Remote.Normalize(rctx, req); err == nil {
			if clean := strings.TrimSpace(out); clean != "" {
				return Ellipsis(clean, MaxLen)
			}
		} else {
			log.Printf("description normalization failed for PO %s: %v", poNumber, err)
		}
	}

	out, _ := Local{}.Normalize(ctx, req) // never fails
	return out
}

// Ellipsis caps s at max characters, replacing the final three characters
// with "..." when truncation occurs.
func Ellipsis(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
