// Package video defines the domain models and interfaces for video discovery and playback.
package video

import (
	"context"
	"fmt"
)

// Video represents a single discovered YouTube video.
type Video struct {
	// 11-character YouTube video identifier.
	ID string `json:"id"`
	// Human-readable title as returned upstream.
	Title string `json:"title"`
	// Medium-quality thumbnail image URL, derived from the identifier.
	Thumbnail string `json:"thumbnail"`
	// Original URL as returned upstream.
	URL string `json:"url"`
}

// String returns the title or URL for display.
func (v *Video) String() string {
	if v.Title != "" {
		return v.Title
	}
	return v.URL
}

// Searcher resolves a natural-language query into a ranked list of videos.
type Searcher interface {
	SearchVideos(ctx context.Context, query string) ([]*Video, error)
}

// Thumbnail returns the medium-quality thumbnail URL for a video identifier.
func Thumbnail(id string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", id)
}

// WatchURL returns the canonical watch page URL for a video identifier.
func WatchURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}

// EmbedURL returns the embeddable player URL for a video identifier.
// Autoplay requires the stream to start muted in modern browsers.
func EmbedURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&mute=1", id)
}

// New builds a Video from an upstream title and URL.
// It reports false when no valid identifier can be extracted from the URL.
func New(title, rawURL string) (*Video, bool) {
	id, ok := ExtractID(rawURL)
	if !ok {
		return nil, false
	}

	return &Video{
		ID:        id,
		Title:     title,
		Thumbnail: Thumbnail(id),
		URL:       rawURL,
	}, true
}
