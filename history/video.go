package history

import (
	"fmt"
	"time"

	"github.com/vidsan-cli/vidsan/video"
)

// SavedVideo represents a single playback entry preserved in the user's history.
type SavedVideo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Query     string    `json:"query"`
	WatchedAt time.Time `json:"watched_at"`
}

func (s *SavedVideo) String() string {
	return fmt.Sprintf("%s (%s)", s.Title, s.WatchedAt.Format("2006-01-02"))
}

// Video rebuilds the domain model from the persisted record.
func (s *SavedVideo) Video() *video.Video {
	return &video.Video{
		ID:        s.ID,
		Title:     s.Title,
		Thumbnail: video.Thumbnail(s.ID),
		URL:       s.URL,
	}
}

func newSavedVideo(v *video.Video, query string) *SavedVideo {
	return &SavedVideo{
		ID:        v.ID,
		Title:     v.Title,
		URL:       v.URL,
		Query:     query,
		WatchedAt: time.Now(),
	}
}
