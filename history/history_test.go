package history

import (
	"testing"

	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/video"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a video", t, func() {
		v := &video.Video{
			ID:        "dQw4w9WgXcQ",
			Title:     "Some video",
			Thumbnail: video.Thumbnail("dQw4w9WgXcQ"),
			URL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		}

		Convey("When saving the video", func() {
			err := Save(v, "some query")
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the video should be saved", func() {
					saved, err := Get()
					So(err, ShouldBeNil)
					So(len(saved), ShouldBeGreaterThan, 0)

					record := saved[v.ID]
					So(record, ShouldNotBeNil)
					So(record.Title, ShouldEqual, v.Title)
					So(record.Query, ShouldEqual, "some query")
					So(record.WatchedAt.IsZero(), ShouldBeFalse)
					So(record.Video().Thumbnail, ShouldEqual, v.Thumbnail)
				})
			})
		})

		Convey("When removing the video", func() {
			So(Save(v, "q"), ShouldBeNil)
			saved, err := Get()
			So(err, ShouldBeNil)

			So(Remove(saved[v.ID]), ShouldBeNil)

			saved, err = Get()
			So(err, ShouldBeNil)
			So(saved[v.ID], ShouldBeNil)
		})
	})
}
