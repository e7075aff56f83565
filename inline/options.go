// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vidsan-cli/vidsan/util"
	"github.com/vidsan-cli/vidsan/video"
	"github.com/samber/mo"
)

// VideoPicker narrows a result list down to a single video.
type VideoPicker func([]*video.Video) *video.Video

type Options struct {
	Out      io.Writer
	Searcher video.Searcher
	Json     bool
	Query    string
	Picker   mo.Option[VideoPicker]
	// Thumbnails switches the plain output from watch URLs to thumbnail URLs.
	Thumbnails bool
}

func ParseVideoPicker(kind, value string) (VideoPicker, error) {
	switch kind {
	case "first":
		return func(videos []*video.Video) *video.Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[0]
		}, nil
	case "last":
		return func(videos []*video.Video) *video.Video {
			if len(videos) == 0 {
				return nil
			}
			return videos[len(videos)-1]
		}, nil
	case "exact":
		return func(videos []*video.Video) *video.Video {
			for _, v := range videos {
				if v.Title == value {
					return v
				}
			}
			return nil
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(videos []*video.Video) *video.Video {
			if len(videos) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(videos)-1))
			return videos[i]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}
