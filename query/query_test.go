package query

import (
	"testing"

	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		q1 := "cat videos"
		q2 := "lofi beats"

		Convey("When remembering queries", func() {
			err := Remember(q1, 1)
			So(err, ShouldBeNil)
			err = Remember(q2, 10)
			So(err, ShouldBeNil)

			Convey("Then suggestions should be sorted by rank", func() {
				// Drop the in-memory layer to force a read from the store.
				suggestionCache = make(map[string][]*queryRecord)

				s := SuggestMany("lofi")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
				So(s[0], ShouldEqual, "lofi beats")
			})

			Convey("It sanitizes input", func() {
				So(sanitize("  CAT VIDEOS  "), ShouldEqual, "cat videos")
			})
		})
	})
}
