// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/query"
	"github.com/vidsan-cli/vidsan/video"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	videos, err := options.Searcher.SearchVideos(context.Background(), options.Query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	_ = query.Remember(options.Query, 1)

	var selected []*video.Video
	if picker, ok := options.Picker.Get(); ok {
		if choice := picker(videos); choice != nil {
			selected = []*video.Video{choice}
		}
	} else {
		selected = videos
	}

	if options.Json {
		return writeJson(options.Out, selected, options)
	}

	for _, v := range selected {
		log.Info("Found " + v.Title)
		if options.Thumbnails {
			fmt.Fprintln(options.Out, v.Thumbnail)
		} else {
			fmt.Fprintln(options.Out, video.WatchURL(v.ID))
		}
	}

	return nil
}

func writeJson(out io.Writer, videos []*video.Video, options *Options) error {
	data, err := asJson(videos, options.Query)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
