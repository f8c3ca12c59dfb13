package dood

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/FEAR939/Hikari-DoodStream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestDeriveName(t *testing.T) {
	Convey("deriveName", t, func() {
		Convey("Should use the last non-empty path segment", func() {
			So(deriveName("https://dood.li/e/abc123"), ShouldEqual, "doodstream_abc123.mp4")
			So(deriveName("https://dood.li/e/abc123/"), ShouldEqual, "doodstream_abc123.mp4")
		})

		Convey("Should fall back to the literal segment when the path is empty", func() {
			So(deriveName("https://dood.li"), ShouldEqual, "doodstream_video.mp4")
			So(deriveName("https://dood.li/"), ShouldEqual, "doodstream_video.mp4")
		})

		Convey("Should sanitize hostile segments", func() {
			So(deriveName("https://dood.li/e/ab%20c"), ShouldEqual, "doodstream_ab_c.mp4")
		})
	})
}

func TestGetMetadata(t *testing.T) {
	Convey("GetMetadata", t, func() {
		ctx := context.Background()

		Convey("Should wrap the direct link with derived fields", func() {
			var hits atomic.Int64
			srv := newEmbedServer("https://video-delivery.example/cdn/x/", &hits)
			defer srv.Close()

			withOrigin(srv.URL, func() {
				meta, err := GetMetadata(ctx, srv.URL+"/e/abc123")
				So(err, ShouldBeNil)

				So(meta.MP4, ShouldStartWith, "https://video-delivery.example/cdn/x/")
				So(meta.Name, ShouldEqual, "doodstream_abc123.mp4")
				So(meta.Quality, ShouldEqual, QualityUnknown)
				So(meta.Size, ShouldBeNil)
				So(meta.Headers["User-Agent"], ShouldNotBeEmpty)
				So(meta.Headers["Accept"], ShouldEqual, "*/*")
				So(meta.Headers["Accept-Language"], ShouldEqual, "en-US,en;q=0.9")
			})
		})

		Convey("Should propagate resolution failures unchanged", func() {
			_, err := GetMetadata(ctx, "")
			So(err, ShouldEqual, ErrEmptyEmbedURL)
		})

		Convey("Should fill in the size when the probe capability is enabled", func() {
			mux := http.NewServeMux()
			srv := httptest.NewServer(mux)
			defer srv.Close()

			mux.HandleFunc("/e/abc123", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, fixturePage)
			})
			mux.HandleFunc("/pass_md5/", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, srv.URL+"/cdn/")
			})
			mux.HandleFunc("/cdn/", func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodHead {
					w.Header().Set("Content-Length", "12345")
					return
				}
				fmt.Fprint(w, strings.Repeat("x", 16))
			})

			viper.Set(key.ResolverProbeSize, true)
			defer viper.Set(key.ResolverProbeSize, false)

			withOrigin(srv.URL, func() {
				meta, err := GetMetadata(ctx, srv.URL+"/e/abc123")
				So(err, ShouldBeNil)
				So(meta.Size, ShouldNotBeNil)
				So(*meta.Size, ShouldEqual, 12345)
			})
		})
	})
}
