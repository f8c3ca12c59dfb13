package dood

import (
	"context"
	"net/http"

	"github.com/FEAR939/Hikari-DoodStream/log"
	"github.com/FEAR939/Hikari-DoodStream/network"
)

// probeSize issues a HEAD request against a freshly built direct link and
// reports its Content-Length. A failed or inconclusive probe degrades to
// nil; it never fails the enclosing metadata call.
func probeSize(ctx context.Context, link string) *int64 {
	ctx, cancel := context.WithTimeout(ctx, timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, link, nil)
	if err != nil {
		return nil
	}

	for k, v := range DefaultHeaders() {
		req.Header.Set(k, v)
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Warnf("size probe for %s failed: %v", link, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK || resp.ContentLength < 0 {
		return nil
	}

	size := resp.ContentLength
	return &size
}
