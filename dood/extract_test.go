package dood

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const fixturePage = `<html><body>
<script>
$.get('/pass_md5/15424/a-bc_def', function(data) {
	var pass = data;
	makePlay = function() { return '?token=kdrzott3nptb3pduwedp&expiry=' + Date.now(); };
});
</script>
</body></html>`

func TestExtract(t *testing.T) {
	Convey("extract", t, func() {
		Convey("Should capture the pass_md5 path", func() {
			got := extract(passMD5Pattern, fixturePage)
			So(got.IsPresent(), ShouldBeTrue)
			So(got.MustGet(), ShouldEqual, "/pass_md5/15424/a-bc_def")
		})

		Convey("Should capture a double-quoted pass_md5 path", func() {
			page := `$.get("/pass_md5/1/xyz", function(data) {`
			got := extract(passMD5Pattern, page)
			So(got.IsPresent(), ShouldBeTrue)
			So(got.MustGet(), ShouldEqual, "/pass_md5/1/xyz")
		})

		Convey("Should capture an absolute pass_md5 URL", func() {
			page := `$.get('https://dood.li/pass_md5/2/abc', function(data) {`
			got := extract(passMD5Pattern, page)
			So(got.IsPresent(), ShouldBeTrue)
			So(got.MustGet(), ShouldEqual, "https://dood.li/pass_md5/2/abc")
		})

		Convey("Should capture the token", func() {
			got := extract(tokenPattern, fixturePage)
			So(got.IsPresent(), ShouldBeTrue)
			So(got.MustGet(), ShouldEqual, "kdrzott3nptb3pduwedp")
		})

		Convey("Should return None when the pattern has no match", func() {
			So(extract(passMD5Pattern, "<html>nothing here</html>").IsAbsent(), ShouldBeTrue)
			So(extract(tokenPattern, "<html>nothing here</html>").IsAbsent(), ShouldBeTrue)
		})
	})
}
