package dood

import (
	"net/url"
	"strings"
)

// mirrorHosts lists the rotating mirror domains the service is known to
// publish embeds under. The table is maintained by hand; new mirrors
// appear every few months.
var mirrorHosts = []string{
	"dood.li", "dood.la", "dood.yt", "dood.ws", "dood.so",
	"dood.to", "dood.pm", "dood.watch", "dood.sh", "dood.cx",
	"dood.wf", "dood.re", "dood.one", "dood.tech", "dood.work",
	"doods.pro", "dooood.com", "doodstream.com", "doodstream.co",
	"d000d.com", "d0000d.com", "d0o0d.com", "do0od.com",
	"dooodster.com", "ds2play.com", "ds2video.com", "doodapi.com",
	"vidply.com", "do7go.com", "all3do.com", "doply.net",
}

// SupportedURL reports whether the URL belongs to a known Doodstream
// mirror domain. Resolution is still attempted for unrecognized hosts;
// this is advisory for early CLI warnings.
func SupportedURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for _, h := range mirrorHosts {
		if host == h {
			return true
		}
	}
	return false
}
