package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Search Icon = iota + 1
	Progress
	Success
	Fail
	Question
	Link
	Mark
	Play
	History
)

// icons maps each Icon identifier to its per-variant representations.
var icons = map[Icon]*iconDef{
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   ">",
		kaomoji: "(o_o)",
		squares: "▣",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(－ω－)",
		squares: "▩",
	},
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "■",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "▨",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(¬_¬)",
		squares: "□",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "~",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "▢",
	},
	Mark: {
		emoji:   "📌",
		nerd:    "",
		plain:   "*",
		kaomoji: "(￣ー￣)b",
		squares: "▪",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "♪(´▽｀)",
		squares: "▶",
	},
	History: {
		emoji:   "🕘",
		nerd:    "",
		plain:   "@",
		kaomoji: "(._.)",
		squares: "▤",
	},
}
