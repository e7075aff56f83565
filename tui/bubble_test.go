package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/video"
)

func init() {
	filesystem.SetMemMapFs()
}

// searcherFunc adapts a plain function to the video.Searcher interface.
type searcherFunc func(ctx context.Context, query string) ([]*video.Video, error)

func (f searcherFunc) SearchVideos(ctx context.Context, query string) ([]*video.Video, error) {
	return f(ctx, query)
}

func noopSearcher() video.Searcher {
	return searcherFunc(func(context.Context, string) ([]*video.Video, error) {
		return nil, nil
	})
}

func TestInitialQueryBack(t *testing.T) {
	Convey("Given a bubble started with a positional query", t, func() {
		b := newBubble(&Options{
			Searcher: noopSearcher(),
			Query:    "cat videos",
		})
		b.newState(searchState)
		_ = b.Init()

		So(b.state, ShouldEqual, loadingState)
		seq := b.searchSeq

		Convey("When esc is pressed during the initial loading", func() {
			_, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})

			Convey("Then the shell is back at the search prompt", func() {
				So(b.state, ShouldEqual, searchState)
				So(b.loading, ShouldBeFalse)
			})

			Convey("Then the abandoned search became stale", func() {
				So(b.searchSeq, ShouldBeGreaterThan, seq)
			})
		})
	})
}

func TestStaleSearchReplies(t *testing.T) {
	Convey("Given a bubble waiting on its second search", t, func() {
		b := newBubble(&Options{Searcher: noopSearcher()})
		b.newState(searchState)
		b.searchSeq = 2
		b.startLoading()
		b.newState(loadingState)

		Convey("When a result from the abandoned first search arrives", func() {
			_, cmd := b.updateLoading(searchResultMsg{
				seq:    1,
				videos: []*video.Video{{ID: "dQw4w9WgXcQ", Title: "Stale"}},
			})

			Convey("Then it is discarded and the shell keeps waiting", func() {
				So(b.state, ShouldEqual, loadingState)
				So(b.resultsC.Items(), ShouldBeEmpty)
				So(cmd, ShouldNotBeNil)
			})
		})

		Convey("When a failure from the abandoned first search arrives", func() {
			_, cmd := b.updateLoading(searchFailedMsg{seq: 1, err: errors.New("request timed out")})

			Convey("Then it is discarded and the shell keeps waiting", func() {
				So(b.state, ShouldEqual, loadingState)
				So(b.lastError, ShouldBeNil)
				So(cmd, ShouldNotBeNil)
			})
		})

		Convey("When the current search replies with videos", func() {
			_, _ = b.updateLoading(searchResultMsg{
				seq:    2,
				videos: []*video.Video{{ID: "dQw4w9WgXcQ", Title: "Current"}},
			})

			Convey("Then the shell shows the results", func() {
				So(b.state, ShouldEqual, resultsState)
				So(b.resultsC.Items(), ShouldHaveLength, 1)
			})
		})

		Convey("When the current search replies with no videos", func() {
			_, _ = b.updateLoading(searchResultMsg{seq: 2})

			Convey("Then the shell reports no results", func() {
				So(b.state, ShouldEqual, errorState)
				So(b.lastError, ShouldEqual, errNoVideos)
			})
		})
	})
}
