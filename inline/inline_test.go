package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/vidsan-cli/vidsan/video"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty result", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
		})

		Convey("Should serialize videos with derived fields", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "cats", Json: true}
			v, _ := video.New("Funny Cats", "https://www.youtube.com/watch?v=AAAAAAAAAAA")
			err := writeJson(&buf, []*video.Video{v}, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].ID, ShouldEqual, "AAAAAAAAAAA")
			So(output.Result[0].Thumbnail, ShouldEqual, "https://img.youtube.com/vi/AAAAAAAAAAA/mqdefault.jpg")
		})
	})
}

func TestParseVideoPicker(t *testing.T) {
	Convey("ParseVideoPicker", t, func() {
		videos := []*video.Video{
			{ID: "AAAAAAAAAAA", Title: "first one"},
			{ID: "BBBBBBBBBBB", Title: "second one"},
			{ID: "CCCCCCCCCCC", Title: "third one"},
		}

		Convey("first", func() {
			picker, err := ParseVideoPicker("first", "")
			So(err, ShouldBeNil)
			So(picker(videos).ID, ShouldEqual, "AAAAAAAAAAA")
		})

		Convey("last", func() {
			picker, err := ParseVideoPicker("last", "")
			So(err, ShouldBeNil)
			So(picker(videos).ID, ShouldEqual, "CCCCCCCCCCC")
		})

		Convey("exact", func() {
			picker, err := ParseVideoPicker("exact", "second one")
			So(err, ShouldBeNil)
			So(picker(videos).ID, ShouldEqual, "BBBBBBBBBBB")
		})

		Convey("index clamps to the last element", func() {
			picker, err := ParseVideoPicker("index", "99")
			So(err, ShouldBeNil)
			So(picker(videos).ID, ShouldEqual, "CCCCCCCCCCC")
		})

		Convey("unknown kind fails", func() {
			_, err := ParseVideoPicker("median", "")
			So(err, ShouldNotBeNil)
		})
	})
}
