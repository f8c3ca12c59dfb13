package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}
