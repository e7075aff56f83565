// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"

	"github.com/vidsan-cli/vidsan/video"
)

type Output struct {
	Query  string         `json:"query"`
	Result []*video.Video `json:"result"`
}

func asJson(videos []*video.Video, query string) ([]byte, error) {
	if videos == nil {
		videos = []*video.Video{}
	}

	return json.Marshal(&Output{
		Query:  query,
		Result: videos,
	})
}
