// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"errors"
	"fmt"

	"github.com/vidsan-cli/vidsan/history"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/open"
	"github.com/vidsan-cli/vidsan/query"
	"github.com/vidsan-cli/vidsan/video"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// errNoVideos is raised when a search finishes without a single playable result.
var errNoVideos = errors.New("no videos found")

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process Ephemeral UI Notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			if b.mpvPlayer != nil {
				_ = b.mpvPlayer.Close()
			}
			return b, tea.Quit
		}

		// Input Guard: Ignore non-priority keys during asynchronous operations.
		if b.busy && b.state != errorState {
			if bubblesKey.Matches(msg, b.keymap.back) && b.state == loadingState {
				// Abandon the in-flight search; a late reply becomes stale.
				b.searchSeq++
				b.stopLoading()
				b.previousState()
			}
			return b, nil
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			onListBack := func(l *list.Model) tea.Cmd {
				l.ResetSelected()
				l.ResetFilter()
				return tea.Batch(cmd, l.NewStatusMessage(""))
			}

			switch b.state {
			case searchState:
				b.inputC.SetValue("")
				b.searchSuggestion = mo.None[string]()
				return b, cmd
			case resultsState:
				// A clear returns to a blank prompt, dropping results and selection.
				_ = onListBack(&b.resultsC)
				return b, tea.Batch(cmd, b.clearSearch())
			case historyState:
				if b.historyC.FilterState() != list.Unfiltered {
					b.historyC, cmd = b.historyC.Update(msg)
					return b, cmd
				}
				cmd = onListBack(&b.historyC)
			case errorState:
				b.lastError = nil
			}

			b.previousState()
			b.stopLoading()
			return b, cmd
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case searchState:
		return b.updateSearch(msg)
	case resultsState:
		return b.updateResults(msg)
	case historyState:
		return b.updateHistory(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds = make([]tea.Cmd, 0)
	)

	switch msg := msg.(type) {
	case searchFailedMsg:
		if msg.seq != b.searchSeq {
			// Stale failure from an abandoned search.
			return b, b.waitForVideos()
		}
		b.stopLoading()
		b.raiseError(fmt.Errorf("search failed: %w", msg.err))
		return b, nil
	case searchResultMsg:
		if msg.seq != b.searchSeq {
			// Stale reply; keep waiting for the current search.
			return b, b.waitForVideos()
		}

		b.stopLoading()

		if len(msg.videos) == 0 {
			b.raiseError(errNoVideos)
			return b, nil
		}

		items := make([]list.Item, len(msg.videos))
		for i, v := range msg.videos {
			items[i] = &listItem{
				internal: v,
				marked:   i == 0,
			}
		}

		cmds = append(cmds, b.resultsC.SetItems(items))
		b.newState(resultsState)
		b.resultsC.ResetFilter()
		b.resultsC.Select(0)

		// The first result plays immediately; the rest await selection.
		return b, tea.Batch(append(cmds, b.playVideo(msg.videos[0]))...)
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			b.searchSeq++
			b.lastQuery = b.inputC.Value()
			b.progressStatus = fmt.Sprintf("Searching for %s...", b.lastQuery)
			b.startLoading()
			b.newState(loadingState)
			go query.Remember(b.lastQuery, 1)
			return b, tea.Batch(b.searchVideos(b.lastQuery, b.searchSeq), b.waitForVideos(), b.spinnerC.Tick)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.showHistory):
			historyCmd, err := b.loadHistory()
			if err != nil {
				b.raiseError(err)
				return b, nil
			}
			b.newState(historyState)
			return b, historyCmd
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.resultsC.Items()); n > 0 && b.resultsC.Index() == 0 {
				b.resultsC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.resultsC.Items()); n > 0 && b.resultsC.Index() == n-1 {
				b.resultsC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.resultsC.SelectedItem() == nil {
				break
			}
			v := b.resultsC.SelectedItem().(*listItem).internal.(*video.Video)
			if err := open.Start(video.EmbedURL(v.ID)); err != nil {
				b.raiseError(err)
			}
		case bubblesKey.Matches(msg, b.keymap.newSearch):
			return b, b.clearSearch()
		case bubblesKey.Matches(msg, b.keymap.confirm, b.keymap.play):
			if b.resultsC.SelectedItem() == nil {
				break
			}
			if !viper.GetBool(key.TUIPlayOnEnter) {
				break
			}
			item := b.resultsC.SelectedItem().(*listItem)
			v := item.internal.(*video.Video)
			if b.nowPlaying != nil && b.nowPlaying.ID == v.ID {
				break
			}
			b.markPlaying(item)
			return b, b.playVideo(v)
		}
	}

	b.resultsC, cmd = b.resultsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.historyC.Items()); n > 0 && b.historyC.Index() == 0 {
				b.historyC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.historyC.Items()); n > 0 && b.historyC.Index() == n-1 {
				b.historyC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if b.historyC.SelectedItem() != nil {
				entry := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedVideo)
				if err := open.Start(entry.URL); err != nil {
					b.raiseError(err)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.remove):
			if b.historyC.SelectedItem() != nil {
				entry := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedVideo)
				_ = history.Remove(entry)
				historyCmd, err := b.loadHistory()
				if err != nil {
					b.raiseError(err)
					return b, nil
				}
				return b, historyCmd
			}
		case bubblesKey.Matches(msg, b.keymap.confirm, b.keymap.play):
			if b.historyC.SelectedItem() != nil {
				entry := b.historyC.SelectedItem().(*listItem).internal.(*history.SavedVideo)
				b.lastQuery = entry.Query
				return b, b.playVideo(entry.Video())
			}
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.confirm):
			// Retry is a fresh prompt with the failed query kept.
			failed := b.lastQuery
			cmd = b.clearSearch()
			b.inputC.SetValue(failed)
			b.inputC.SetCursor(len(failed))
			return b, cmd
		}
	}
	return b, cmd
}

// markPlaying moves the playback mark to the given item.
func (b *statefulBubble) markPlaying(target *listItem) {
	for _, item := range b.resultsC.Items() {
		item := item.(*listItem)
		item.marked = item == target
	}
}
