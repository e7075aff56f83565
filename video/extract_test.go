package video

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExtractID(t *testing.T) {
	Convey("ExtractID", t, func() {
		Convey("Should extract from known URL shapes", func() {
			for url, want := range map[string]string{
				"https://www.youtube.com/watch?v=dQw4w9WgXcQ":             "dQw4w9WgXcQ",
				"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ":  "dQw4w9WgXcQ",
				"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s":       "dQw4w9WgXcQ",
				"https://youtu.be/dQw4w9WgXcQ":                            "dQw4w9WgXcQ",
				"https://youtu.be/dQw4w9WgXcQ?si=abcdef":                  "dQw4w9WgXcQ",
				"https://www.youtube.com/embed/dQw4w9WgXcQ":               "dQw4w9WgXcQ",
				"https://www.youtube.com/v/dQw4w9WgXcQ":                   "dQw4w9WgXcQ",
				"https://www.youtube.com/shorts/dQw4w9WgXcQ":              "dQw4w9WgXcQ",
				"http://youtube.com/watch?v=a_b-c_d-e_f":                  "a_b-c_d-e_f",
				"https://m.youtube.com/watch?v=dQw4w9WgXcQ&feature=share": "dQw4w9WgXcQ",
			} {
				id, ok := ExtractID(url)
				So(ok, ShouldBeTrue)
				So(id, ShouldEqual, want)
			}
		})

		Convey("Should reject URLs without an identifier", func() {
			for _, url := range []string{
				"",
				"https://example.com/watch?v=dQw4w9WgXcQ",
				"https://www.youtube.com/",
				"https://www.youtube.com/results?search_query=cats",
				"https://www.youtube.com/watch",
				"not a url at all",
				"https://vimeo.com/123456789",
			} {
				_, ok := ExtractID(url)
				So(ok, ShouldBeFalse)
			}
		})

		Convey("Should reject wrong-length identifier segments", func() {
			for _, url := range []string{
				"https://www.youtube.com/watch?v=shortid",
				"https://youtu.be/waytoolongidentifier",
				"https://www.youtube.com/watch?v=dQw4w9WgXcQXX",
				"https://youtu.be/dQw4w9WgXc",
			} {
				_, ok := ExtractID(url)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestDerivedURLs(t *testing.T) {
	Convey("Derived URLs", t, func() {
		So(Thumbnail("dQw4w9WgXcQ"), ShouldEqual, "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg")
		So(WatchURL("dQw4w9WgXcQ"), ShouldEqual, "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		So(EmbedURL("dQw4w9WgXcQ"), ShouldEqual, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&mute=1")
	})
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Should populate all fields from a valid URL", func() {
			v, ok := New("Funny cat compilation", "https://www.youtube.com/watch?v=abc123XYZ_-")
			So(ok, ShouldBeTrue)
			So(v.ID, ShouldEqual, "abc123XYZ_-")
			So(v.Title, ShouldEqual, "Funny cat compilation")
			So(v.Thumbnail, ShouldEqual, "https://img.youtube.com/vi/abc123XYZ_-/mqdefault.jpg")
			So(v.URL, ShouldEqual, "https://www.youtube.com/watch?v=abc123XYZ_-")
		})

		Convey("Should reject an unextractable URL", func() {
			v, ok := New("Broken", "https://example.com/nope")
			So(ok, ShouldBeFalse)
			So(v, ShouldBeNil)
		})
	})
}

func TestString(t *testing.T) {
	Convey("Video String", t, func() {
		So((&Video{Title: "Cats", URL: "u"}).String(), ShouldEqual, "Cats")
		So((&Video{URL: "u"}).String(), ShouldEqual, "u")
	})
}
