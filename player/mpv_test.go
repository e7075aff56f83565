package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Should accept plain http(s) URLs", func() {
			for _, url := range []string{
				"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				"http://example.com/video.mp4",
			} {
				got, err := sanitizeMediaTarget(url)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, url)
			}
		})

		Convey("Should reject flag-like and malformed targets", func() {
			for _, url := range []string{
				"",
				"--vo=gpu",
				"-f",
				"ftp://example.com/file",
				"https://bad\nurl",
			} {
				_, err := sanitizeMediaTarget(url)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("sanitizeTitle", t, func() {
		So(sanitizeTitle("a\nb\tc\x00 "), ShouldEqual, "a b c")
		So(sanitizeTitle("  plain title  "), ShouldEqual, "plain title")
	})
}
