// Package mini implements a lightweight, minimalist interface for video search and playback.
package mini

import (
	"fmt"
	"os"

	"github.com/vidsan-cli/vidsan/icon"
	"github.com/vidsan-cli/vidsan/style"
	"github.com/vidsan-cli/vidsan/util"
	"github.com/vidsan-cli/vidsan/video"
)

var (
	truncateAt = 100
)

type Options struct {
	// Searcher resolves queries into videos.
	Searcher video.Searcher
	// Continue opens the watch history instead of the search prompt.
	Continue bool
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	searcher video.Searcher

	query         string
	cachedResults map[string][]*video.Video
}

func newMini(options *Options) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		searcher:      options.Searcher,
		cachedResults: make(map[string][]*video.Video),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

func Run(options *Options) error {
	m := newMini(options)
	m.state = searchState
	if options.Continue {
		m.state = historySelectState
	}

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case historySelectState:
		return m.handleHistorySelectState()
	case searchState:
		return m.handleSearchState()
	case resultSelectState:
		return m.handleResultSelectState()
	case quitState:
		os.Exit(0)
	}

	return nil
}

// title prints a highlighted section banner.
func title(s string) {
	fmt.Println(style.Title(s))
}

// progress prints an ephemeral status line and returns its eraser.
func progress(s string) func() {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), s))
}

// fail prints a non-fatal failure notice.
func fail(s string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), s)
}
