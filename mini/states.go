// Package mini implements a lightweight, minimalist interface for video search and playback.
package mini

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/vidsan-cli/vidsan/history"
	"github.com/vidsan-cli/vidsan/icon"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/open"
	"github.com/vidsan-cli/vidsan/player"
	"github.com/vidsan-cli/vidsan/query"
	"github.com/vidsan-cli/vidsan/util"
	"github.com/vidsan-cli/vidsan/video"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type state int

const (
	searchState state = iota + 1
	resultSelectState
	historySelectState
	quitState
)

// Menu options appended after the dynamic entries.
const (
	optionSearchAgain = "Search again"
	optionHistory     = "History"
	optionQuit        = "Quit"
)

func (m *mini) handleSearchState() error {
	var searchLoop func() error
	title("Search Videos")

	searchLoop = func() error {
		prompt := survey.Input{
			Message: "Query:",
			Suggest: query.SuggestMany,
		}

		var q string
		if err := survey.AskOne(&prompt, &q, survey.WithValidator(survey.Required)); err != nil {
			return err
		}

		erase := progress("Searching..")
		videos, err := m.searcher.SearchVideos(context.Background(), q)
		erase()

		if err != nil {
			fail("Search failed")
			log.Error(err)
			return searchLoop()
		}

		max := lo.Min([]int{len(videos), viper.GetInt(key.MiniSearchLimit)})
		videos = videos[:max]

		if len(videos) == 0 {
			fail("No videos found")
			return searchLoop()
		}

		_ = query.Remember(q, 1)

		m.query = q
		m.cachedResults[q] = videos
		m.newState(resultSelectState)

		// The top result plays right away; the rest are offered for selection.
		return m.playVideo(videos[0])
	}

	return searchLoop()
}

func (m *mini) handleResultSelectState() error {
	videos := m.cachedResults[m.query]

	options := make([]string, 0, len(videos)+3)
	for _, v := range videos {
		options = append(options, truncate(v.String()))
	}
	options = append(options, optionSearchAgain, optionHistory, optionQuit)

	prompt := survey.Select{
		Message:  fmt.Sprintf("Results for %q", m.query),
		Options:  options,
		PageSize: lo.Min([]int{len(options), 15}),
	}

	var answer string
	if err := survey.AskOne(&prompt, &answer); err != nil {
		return err
	}

	switch answer {
	case optionSearchAgain:
		util.ClearScreen()
		m.newState(searchState)
		return nil
	case optionHistory:
		m.newState(historySelectState)
		return nil
	case optionQuit:
		m.newState(quitState)
		return nil
	}

	for _, v := range videos {
		if truncate(v.String()) == answer {
			return m.playVideo(v)
		}
	}

	return nil
}

// truncate caps menu entries at the terminal width.
func truncate(s string) string {
	if truncateAt > 3 && len(s) > truncateAt {
		return s[:truncateAt-3] + "..."
	}
	return s
}

func (m *mini) handleHistorySelectState() error {
	saved, err := history.Get()
	if err != nil {
		return err
	}

	entries := lo.Values(saved)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].WatchedAt.After(entries[j].WatchedAt)
	})

	options := make([]string, 0, len(entries)+2)
	for _, e := range entries {
		options = append(options, e.String())
	}
	options = append(options, optionSearchAgain, optionQuit)

	title("History")
	prompt := survey.Select{
		Message:  "Watched videos",
		Options:  options,
		PageSize: lo.Min([]int{len(options), 15}),
	}

	var answer string
	if err := survey.AskOne(&prompt, &answer); err != nil {
		return err
	}

	switch answer {
	case optionSearchAgain:
		util.ClearScreen()
		m.newState(searchState)
		return nil
	case optionQuit:
		m.newState(quitState)
		return nil
	}

	for _, e := range entries {
		if e.String() == answer {
			m.query = e.Query
			return m.playVideo(e.Video())
		}
	}

	return nil
}

// playVideo plays a single video with the configured backend and blocks until playback ends.
func (m *mini) playVideo(v *video.Video) error {
	if viper.GetBool(key.HistorySaveOnWatch) {
		if err := history.Save(v, m.query); err != nil {
			log.Warnf("failed to save history: %v", err)
		}
	}

	if viper.GetString(key.Player) == "browser" {
		fmt.Printf("Opening %s in browser\n", v.Title)
		return open.Start(video.EmbedURL(v.ID))
	}

	var p player.Player
	if viper.GetString(key.Player) == "iina" && runtime.GOOS == "darwin" {
		p = player.NewIINA()
	} else {
		p = player.NewMPV()
	}

	erase := progress(fmt.Sprintf("Launching player for %s..", v.Title))
	if err := p.Play(video.WatchURL(v.ID), v.Title, nil); err != nil {
		erase()
		fail("Playback failed")
		log.Error(err)
		return nil
	}
	erase()

	// Show the live playback position until the player exits.
	eraseStatus := func() {}
	p.StartIPCTicker(func(pos, dur int) {
		eraseStatus()
		eraseStatus = util.PrintErasable(fmt.Sprintf(
			"%s %s [%s / %s]",
			icon.Get(icon.Play), v.Title,
			formatSeconds(pos), formatSeconds(dur),
		))
	})

	<-p.Wait()
	p.StopIPCTicker()
	eraseStatus()
	_ = p.Close()

	return nil
}

func formatSeconds(s int) string {
	d := time.Duration(s) * time.Second
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
