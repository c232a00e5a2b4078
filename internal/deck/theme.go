package deck

// Theme identifies the visual and copy variant of a category deck.
type Theme int

const (
	ThemeDefault Theme = iota
	ThemeTwilight
	ThemeLovers
	ThemeSunlit
	ThemeBrainstorm
	ThemeWoodland
	ThemeMirror
)

// Style is everything a view needs to dress a deck for one theme.
type Style struct {
	Name string

	// Accent and gradient colors, hex.
	Accent       string
	GradientFrom string
	GradientTo   string

	// Card front copy.
	RevealTitle string
	RevealHint  string

	// Answer button copy and the ledger label for answering.
	AnswerLabel   string
	AnsweredLabel string
	AnswerAction  string

	Premium bool
}

const favoriteAction = "favoriting question"

var styles = map[Theme]Style{
	ThemeDefault: {
		Name: "default", Accent: "#8B5CF6", GradientFrom: "#A78BFA", GradientTo: "#F472B6",
		RevealTitle: "Tap to Reveal", RevealHint: "A new question awaits...",
		AnswerLabel: "Mark Answered", AnsweredLabel: "Answered", AnswerAction: "answering question",
	},
	ThemeTwilight: {
		Name: "twilight", Accent: "#EC4899", GradientFrom: "#F472B6", GradientTo: "#FB7185",
		RevealTitle: "Tap to Reveal", RevealHint: "A new question awaits...",
		AnswerLabel: "Mark Answered", AnsweredLabel: "Answered", AnswerAction: "answering question",
	},
	ThemeLovers: {
		Name: "lovers", Accent: "#A855F7", GradientFrom: "#C084FC", GradientTo: "#F472B6",
		RevealTitle: "Tap to Reveal", RevealHint: "A new question awaits...",
		AnswerLabel: "Mark Answered", AnsweredLabel: "Mark Answered", AnswerAction: "answering question",
		Premium: true,
	},
	ThemeSunlit: {
		Name: "sunlit", Accent: "#FACC15", GradientFrom: "#FDE047", GradientTo: "#FB923C",
		RevealTitle: "Tap to Reveal", RevealHint: "A new question awaits...",
		AnswerLabel: "Mark Answered", AnsweredLabel: "Answered", AnswerAction: "answering question",
	},
	ThemeBrainstorm: {
		Name: "brainstorm", Accent: "#FB923C", GradientFrom: "#FDBA74", GradientTo: "#F97316",
		RevealTitle: "Tap to Reveal", RevealHint: "A thought-provoking question awaits...",
		AnswerLabel: "Mark Discussed", AnsweredLabel: "Discussed", AnswerAction: "discussing question",
	},
	ThemeWoodland: {
		Name: "woodland", Accent: "#4ADE80", GradientFrom: "#86EFAC", GradientTo: "#22C55E",
		RevealTitle: "Tap to Reveal", RevealHint: "A new question awaits...",
		AnswerLabel: "Mark Answered", AnsweredLabel: "Answered", AnswerAction: "answering question",
	},
	ThemeMirror: {
		Name: "mirror", Accent: "#3B82F6", GradientFrom: "#60A5FA", GradientTo: "#818CF8",
		RevealTitle: "Tap to Reflect", RevealHint: "A journey inward awaits...",
		AnswerLabel: "Mark Reflected", AnsweredLabel: "Reflected", AnswerAction: "reflecting on question",
	},
}

var themesByCategory = map[string]Theme{
	"twilight":   ThemeTwilight,
	"lovers":     ThemeLovers,
	"sunlit":     ThemeSunlit,
	"brainstorm": ThemeBrainstorm,
	"woodland":   ThemeWoodland,
	"mirror":     ThemeMirror,
}

// ThemeFor resolves a category id to its theme. Unknown ids get ThemeDefault.
func ThemeFor(categoryID string) Theme {
	if t, ok := themesByCategory[categoryID]; ok {
		return t
	}
	return ThemeDefault
}

// Style returns the style table entry for t.
func (t Theme) Style() Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[ThemeDefault]
}

func (t Theme) String() string {
	return t.Style().Name
}
