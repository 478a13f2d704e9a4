package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	Income        lipgloss.Style
	Expense       lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Dark          bool
}

type palette struct {
	primary, secondary, success, warning, errorC, info lipgloss.Color
	background, foreground, subtle, border, muted      lipgloss.Color
	highlight                                          lipgloss.Color
}

func build(name string, dark bool, p palette) Theme {
	return Theme{
		Name:       name,
		Dark:       dark,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Success:    p.success,
		Error:      p.errorC,
		Background: p.background,
		Foreground: p.foreground,
		Border:     p.border,
		Muted:      p.muted,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.highlight).
			Bold(true).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Padding(0, 1),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		Income: lipgloss.NewStyle().
			Foreground(p.success),
		Expense: lipgloss.NewStyle().
			Foreground(p.errorC),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.errorC).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.info).
			Bold(true),
	}
}

// Dark is the dark-mode theme.
var Dark = build("dark", true, palette{
	primary:    lipgloss.Color("#22c55e"),
	secondary:  lipgloss.Color("#86efac"),
	success:    lipgloss.Color("#4ade80"),
	warning:    lipgloss.Color("#f59e0b"),
	errorC:     lipgloss.Color("#f87171"),
	info:       lipgloss.Color("#60a5fa"),
	background: lipgloss.Color("#0f172a"),
	foreground: lipgloss.Color("#f1f5f9"),
	subtle:     lipgloss.Color("#94a3b8"),
	border:     lipgloss.Color("#334155"),
	muted:      lipgloss.Color("#64748b"),
	highlight:  lipgloss.Color("#0f172a"),
})

// Light is the light-mode theme.
var Light = build("light", false, palette{
	primary:    lipgloss.Color("#16a34a"),
	secondary:  lipgloss.Color("#15803d"),
	success:    lipgloss.Color("#16a34a"),
	warning:    lipgloss.Color("#d97706"),
	errorC:     lipgloss.Color("#dc2626"),
	info:       lipgloss.Color("#2563eb"),
	background: lipgloss.Color("#f8fafc"),
	foreground: lipgloss.Color("#0f172a"),
	subtle:     lipgloss.Color("#475569"),
	border:     lipgloss.Color("#cbd5e1"),
	muted:      lipgloss.Color("#94a3b8"),
	highlight:  lipgloss.Color("#ffffff"),
})

// ForMode returns Dark or Light.
func ForMode(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// CategoryIcons maps category icon keys to emoji.
var CategoryIcons = map[string]string{
	"briefcase":     "💼",
	"home":          "🏠",
	"shopping-cart": "🛒",
	"gas-pump":      "⛽",
	"credit-card":   "💳",
	"utensils":      "🍽️",
	"tv":            "📺",
	"dumbbell":      "🏋️",
	"mobile-alt":    "📱",
	"bus":           "🚌",
	"shopping-bag":  "🛍️",
	"gift":          "🎁",
	"chart-line":    "📈",
	"tag":           "🏷️",
}

// GetCategoryIcon returns the emoji for an icon key.
func GetCategoryIcon(icon string) string {
	if e, ok := CategoryIcons[icon]; ok {
		return e
	}
	return "📦"
}
