package dood

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/FEAR939/Hikari-DoodStream/key"
	"github.com/FEAR939/Hikari-DoodStream/util"
	"github.com/spf13/viper"
)

// fallbackSegment replaces the file-name segment when the embed URL has no usable path.
const fallbackSegment = "video"

// QualityUnknown is the only quality label the embed page exposes.
const QualityUnknown = "Unknown"

// Metadata describes a resolved direct link with light descriptive fields.
type Metadata struct {
	MP4     string            `json:"mp4"`
	Name    string            `json:"name"`
	Quality string            `json:"quality"`
	Size    *int64            `json:"size"`
	Headers map[string]string `json:"headers"`
}

// GetMetadata resolves the embed URL and wraps the direct link with a
// derived file name, quality tag, size placeholder and the request
// headers. Size stays null unless the probe capability is enabled in
// configuration. Resolution failures propagate unchanged.
func GetMetadata(ctx context.Context, embedURL string) (*Metadata, error) {
	link, err := GetDirectLink(ctx, embedURL)
	if err != nil {
		return nil, err
	}

	meta := &Metadata{
		MP4:     link,
		Name:    deriveName(embedURL),
		Quality: QualityUnknown,
		Headers: DefaultHeaders(),
	}

	if viper.GetBool(key.ResolverProbeSize) {
		meta.Size = probeSize(ctx, link)
	}

	return meta, nil
}

// deriveName builds the download file name from the last non-empty path
// segment of the embed URL.
func deriveName(embedURL string) string {
	segment := fallbackSegment

	if u, err := url.Parse(embedURL); err == nil {
		parts := strings.Split(u.Path, "/")
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" {
				segment = parts[i]
				break
			}
		}
	}

	return fmt.Sprintf("doodstream_%s.mp4", util.SanitizeFilename(segment))
}
