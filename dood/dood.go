// Package dood resolves playable direct-download links from Doodstream
// video embed pages.
//
// The pipeline is linear: fetch the embed page, extract the pass_md5
// path and the session token, fetch the pass_md5 endpoint for the media
// base URL, then synthesize a time-limited link from the base, a random
// suffix, the token and the current Unix timestamp. Every invocation is
// self-contained; concurrent resolutions do not share state.
package dood

import (
	"time"

	"github.com/FEAR939/Hikari-DoodStream/constant"
	"github.com/FEAR939/Hikari-DoodStream/key"
	"github.com/spf13/viper"
)

// Fallbacks used when the configuration engine has not been initialized,
// e.g. when the package is consumed as a library.
const (
	defaultReferer = "https://dood.li/"
	defaultOrigin  = "https://dood.li"
	defaultTimeout = 30 * time.Second
)

// DefaultHeaders returns the fixed header set sent with every Doodstream request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      constant.UserAgent,
		"Referer":         referer(),
		"Origin":          origin(),
		"Accept":          "*/*",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func referer() string {
	if r := viper.GetString(key.ResolverReferer); r != "" {
		return r
	}
	return defaultReferer
}

func origin() string {
	if o := viper.GetString(key.ResolverOrigin); o != "" {
		return o
	}
	return defaultOrigin
}

func timeout() time.Duration {
	if s := viper.GetInt(key.ResolverTimeout); s > 0 {
		return time.Duration(s) * time.Second
	}
	return defaultTimeout
}
