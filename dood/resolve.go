package dood

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/FEAR939/Hikari-DoodStream/log"
)

// GetDirectLink resolves a Doodstream embed page into a time-limited
// direct media URL. Any step's failure aborts the whole pipeline and
// surfaces to the caller unchanged; there are no retries and no
// partial results.
func GetDirectLink(ctx context.Context, embedURL string) (string, error) {
	if strings.TrimSpace(embedURL) == "" {
		return "", ErrEmptyEmbedURL
	}

	page, err := fetch(ctx, embedURL, DefaultHeaders())
	if err != nil {
		return "", err
	}

	passMD5, ok := extract(passMD5Pattern, page).Get()
	if !ok {
		return "", &ExtractionError{Field: "pass_md5", SourceURL: embedURL}
	}

	token, ok := extract(tokenPattern, page).Get()
	if !ok {
		return "", &ExtractionError{Field: "token", SourceURL: embedURL}
	}

	passURL, err := absolutePassURL(passMD5)
	if err != nil {
		return "", err
	}

	videoBase, err := fetch(ctx, passURL, DefaultHeaders())
	if err != nil {
		return "", err
	}

	videoBase = strings.TrimSpace(videoBase)
	if videoBase == "" {
		return "", fmt.Errorf("%s: %w", passURL, ErrEmptyResponse)
	}

	link := BuildDirectLink(videoBase, token)
	log.Debugf("resolved %s -> %s", embedURL, link)
	return link, nil
}

// absolutePassURL resolves a possibly relative pass_md5 fragment against
// the service origin.
func absolutePassURL(fragment string) (string, error) {
	ref, err := url.Parse(fragment)
	if err != nil {
		return "", fmt.Errorf("parse pass_md5 URL %q: %w", fragment, err)
	}

	if ref.IsAbs() {
		return ref.String(), nil
	}

	base, err := url.Parse(origin())
	if err != nil {
		return "", fmt.Errorf("parse service origin %q: %w", origin(), err)
	}

	return base.ResolveReference(ref).String(), nil
}
