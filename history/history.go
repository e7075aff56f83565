// Package history provides the implementation for tracking and persisting watched videos.
package history

import (
	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/video"
	"github.com/vidsan-cli/vidsan/where"
	"github.com/metafates/gache"
)

// cacher provides an abstracted, disk-backed registry for playback records.
var cacher = gache.New[map[string]*SavedVideo](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of playback records from the persistent store.
func Get() (map[string]*SavedVideo, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedVideo), nil
	}
	return cached, nil
}

// Save persists a played video to the history registry.
// Re-watching a video refreshes its timestamp and originating query.
func Save(v *video.Video, query string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedVideo(v, query)
	saved[record.ID] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a playback record from the history registry.
func Remove(record *SavedVideo) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.ID)
	return cacher.Set(saved)
}
