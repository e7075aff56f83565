// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/vidsan-cli/vidsan/history"
	"github.com/vidsan-cli/vidsan/icon"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/style"
	"github.com/vidsan-cli/vidsan/video"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// listItem implements the list.Item interface, wrapping domain models for terminal display.
type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case *video.Video:
		return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Play))
	case *history.SavedVideo:
		return icon.Get(icon.History)
	default:
		return ""
	}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *video.Video:
		title = e.String()
	case *history.SavedVideo:
		title = e.Title
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *video.Video:
		if viper.GetBool(key.TUIShowURLs) {
			description = style.Faint(e.URL)
		} else {
			description = style.Faint(e.ID)
		}
	case *history.SavedVideo:
		description = fmt.Sprintf(
			"%s %s",
			lipgloss.NewStyle().Foreground(style.FaintColor).Render(e.WatchedAt.Format("2006-01-02 15:04")),
			lipgloss.NewStyle().Foreground(style.Subtext).Render(fmt.Sprintf("for %q", e.Query)),
		)
	}

	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *video.Video:
		return e.Title
	case *history.SavedVideo:
		return e.Title
	case string:
		return e
	default:
		return ""
	}
}
