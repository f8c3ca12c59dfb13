package dood

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildDirectLink(t *testing.T) {
	Convey("BuildDirectLink", t, func() {
		base := "https://video-delivery.example/cdn/x/"
		token := "kdrzott3nptb3pduwedp"

		Convey("Should match the direct link shape", func() {
			link := BuildDirectLink(base, token)
			shape := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `[A-Za-z0-9]{10}\?token=` + token + `&expiry=\d+$`)
			So(shape.MatchString(link), ShouldBeTrue)
		})

		Convey("Should never repeat across calls with identical input", func() {
			So(BuildDirectLink(base, token), ShouldNotEqual, BuildDirectLink(base, token))
		})

		Convey("Should not re-encode an existing query structure on the base", func() {
			queryBase := "https://cdn.example/v?sig=a%2Fb&"
			link := BuildDirectLink(queryBase, token)
			So(link, ShouldStartWith, queryBase)
		})
	})
}

func TestRandomString(t *testing.T) {
	Convey("randomString", t, func() {
		Convey("Should emit only alphanumerics of the requested length", func() {
			alnum := regexp.MustCompile(`^[A-Za-z0-9]{10}$`)
			for i := 0; i < 100; i++ {
				So(alnum.MatchString(randomString(10)), ShouldBeTrue)
			}
		})
	})
}
