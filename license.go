package accrual

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// The run is gated on a remote enablement record: a small JSON document whose
// record.enabled field says whether the tool may run at all. There is no
// offline grace; an unreachable server blocks the run.

// ErrDisabled is returned when the enablement record says the service is off.
var ErrDisabled = errors.New("service has been disabled by administrator")

// licenseTimeout bounds the single enablement request.
const licenseTimeout = 15 * time.Second

// enabledPath locates the boolean inside the enablement response.
const enabledPath = "$.record.enabled"

// CheckLicense fetches the enablement record at addr and reports whether the
// run may proceed. masterKey, when non-empty, is sent as the X-Master-Key
// header expected by the JSON bin host.
func CheckLicense(ctx context.Context, addr, masterKey string) error {
	ctx, cancel := context.WithTimeout(ctx, licenseTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("invalid license server address %q: %w", addr, err)
	}
	if masterKey != "" {
		req.Header.Set("X-Master-Key", masterKey)
	}

	var doc interface{}
	if err := jwget(http.DefaultClient, req, &doc); err != nil {
		return fmt.Errorf("cannot reach license server: %w", err)
	}

	v, err := jsonpath.Get(enabledPath, doc)
	if err != nil {
		return fmt.Errorf("malformed license record: %w", err)
	}
	enabled, ok := v.(bool)
	if !ok {
		return fmt.Errorf("malformed license record: %s is %T, want bool", enabledPath, v)
	}
	if !enabled {
		return ErrDisabled
	}
	return nil
}
