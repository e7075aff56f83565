package video

import (
	"regexp"

	"github.com/vidsan-cli/vidsan/util"
)

// idPattern matches the known YouTube URL shapes and captures the video identifier.
// The identifier is exactly 11 characters of [A-Za-z0-9_-]; a longer run is not an identifier.
var idPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|v/|shorts/)|youtu\.be/)(?P<id>[a-zA-Z0-9_-]{11})(?:[^a-zA-Z0-9_-]|$)`)

// ExtractID extracts the 11-character video identifier from a YouTube URL.
// It reports false for URLs that carry no identifier; it never fails.
func ExtractID(rawURL string) (string, bool) {
	groups := util.ReGroups(idPattern, rawURL)
	id, ok := groups["id"]
	return id, ok && id != ""
}
