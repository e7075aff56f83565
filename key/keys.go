// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Search Pipeline - these keys govern the request issued to the generative completion service.
const (
	SearchModel           = "search.model"
	SearchBaseURL         = "search.base_url"
	SearchMaxResults      = "search.max_results"
	SearchReasoningEffort = "search.reasoning_effort"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// History Tracking - these keys configure the persistence of playback state.
const (
	HistorySaveOnWatch = "history.save_on_watch"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUIPlayOnEnter        = "tui.play_on_enter"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
)

// Minimalist (Mini) Mode - these keys configure the specialized lightweight prompt interface.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Media Playback - these keys maintain the state and configuration for external video players.
const (
	Player = "player.default"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
