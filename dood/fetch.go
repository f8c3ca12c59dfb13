package dood

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/FEAR939/Hikari-DoodStream/log"
	"github.com/FEAR939/Hikari-DoodStream/network"
)

// fetch performs a timed-out GET against the given URL and returns the body as text.
// The deadline is armed before the request starts and released on every exit path.
func fetch(ctx context.Context, rawURL string, headers map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request for %s: %w", rawURL, err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warnf("request to %s timed out after %s", rawURL, timeout())
			return "", fmt.Errorf("request to %s timed out: %w", rawURL, context.DeadlineExceeded)
		}
		log.Warnf("request to %s failed: %v", rawURL, err)
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		serr := &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
		log.Warn(serr)
		return "", serr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", rawURL, err)
	}

	return string(body), nil
}
