package describe

import (
	"context"
	"regexp"
	"strings"
)

// Checkbook descriptions are often prefixed with a department tag and a PO
// cross-reference ("ENG/PO25377 Republic Services/Waste Removal..."). The
// local rewrite strips those and keeps the rest.
var (
	taggedPORe = regexp.MustCompile(`(?i)^(ENG?|INN?|MH)/PO\d+\s*[^/]*/`)
	barePORe   = regexp.MustCompile(`(?i)^PO\d+\s*`)
)

// Local is the deterministic description rewrite. It never returns an error,
// making it a safe fallback for the remote normalizer.
type Local struct{}

// Normalize strips known PO prefixes from the raw description and applies the
// length bound. An empty result is replaced by DefaultDescription.
func (Local) Normalize(_ context.Context, req Request) (string, error) {
	clean := req.Description
	clean = taggedPORe.ReplaceAllString(clean, "")
	clean = barePORe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		clean = DefaultDescription
	}
	max := req.MaxLen
	if max <= 0 {
		max = MaxLen
	}
	return Ellipsis(clean, max), nil
}

var _ Normalizer = Local{}
