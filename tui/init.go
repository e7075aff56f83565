// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the terminal user interface, triggering an immediate search when a query was supplied.
func (b *statefulBubble) Init() tea.Cmd {
	if b.options != nil && b.options.Query != "" {
		b.searchSeq++
		b.lastQuery = b.options.Query
		b.progressStatus = fmt.Sprintf("Searching for %s...", b.lastQuery)
		b.startLoading()
		b.newState(loadingState)
		return tea.Batch(b.searchVideos(b.lastQuery, b.searchSeq), b.waitForVideos(), b.spinnerC.Tick)
	}

	return textinput.Blink
}
