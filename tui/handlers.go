// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/vidsan-cli/vidsan/color"
	"github.com/vidsan-cli/vidsan/history"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/open"
	"github.com/vidsan-cli/vidsan/player"
	"github.com/vidsan-cli/vidsan/style"
	"github.com/vidsan-cli/vidsan/util"
	"github.com/vidsan-cli/vidsan/video"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// searchResultMsg carries a finished pipeline call back into the update loop.
type searchResultMsg struct {
	seq    int
	videos []*video.Video
}

// searchFailedMsg carries a failed pipeline call back into the update loop.
type searchFailedMsg struct {
	seq int
	err error
}

func (b *statefulBubble) loadHistory() (tea.Cmd, error) {
	saved, err := history.Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].WatchedAt.After(entries[j].WatchedAt)
	})

	var items []list.Item
	for _, e := range entries {
		items = append(items, &listItem{
			internal: e,
		})
	}

	return b.historyC.SetItems(items), nil
}

// searchVideos dispatches a pipeline call tagged with the given sequence number.
func (b *statefulBubble) searchVideos(query string, seq int) tea.Cmd {
	return func() tea.Msg {
		log.Info("searching for " + query)
		b.progressStatus = fmt.Sprintf("Searching for %s", style.Fg(color.Purple)(query))

		videos, err := b.options.Searcher.SearchVideos(context.Background(), query)
		if err != nil {
			log.Error(err)
			b.errorChannel <- searchFailedMsg{seq: seq, err: err}
			return nil
		}

		log.Infof("found %s", util.Quantify(len(videos), "video", "videos"))
		b.foundVideosChannel <- searchResultMsg{seq: seq, videos: videos}
		return nil
	}
}

func (b *statefulBubble) waitForVideos() tea.Cmd {
	return func() tea.Msg {
		select {
		case res := <-b.foundVideosChannel:
			return res
		case failure := <-b.errorChannel:
			return failure
		}
	}
}

// playVideo starts playback of the given video with the configured player backend.
func (b *statefulBubble) playVideo(v *video.Video) tea.Cmd {
	return func() tea.Msg {
		b.nowPlaying = v

		if viper.GetBool(key.HistorySaveOnWatch) {
			if err := history.Save(v, b.lastQuery); err != nil {
				log.Warnf("failed to save history: %v", err)
			}
		}

		log.Infof("Playing %s", v.Title)

		if viper.GetString(key.Player) == "browser" {
			if err := open.Start(video.EmbedURL(v.ID)); err != nil {
				log.Errorf("failed to open browser: %v", err)
				b.errorChannel <- searchFailedMsg{seq: b.searchSeq, err: err}
				return nil
			}
			return fmt.Sprintf("Playing %s in browser", v.Title)
		}

		if b.mpvPlayer != nil && b.mpvPlayer.IsRunning() {
			_ = b.mpvPlayer.Close()
			b.mpvPlayer = nil
		}

		if b.mpvPlayer == nil {
			if viper.GetString(key.Player) == "iina" && runtime.GOOS == "darwin" {
				b.mpvPlayer = player.NewIINA()
			} else {
				b.mpvPlayer = player.NewMPV()
			}
		}

		if err := b.mpvPlayer.Play(video.WatchURL(v.ID), v.Title, nil); err != nil {
			log.Errorf("failed to play video: %v", err)
			b.errorChannel <- searchFailedMsg{seq: b.searchSeq, err: fmt.Errorf("playback failed: %w", err)}
			return nil
		}

		log.Infof("player launched on socket %s", b.mpvPlayer.Socket())
		return fmt.Sprintf("Playing %s", v.Title)
	}
}
