package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Outline OutlineTheme
	Footer  FooterTheme
	Toast   ToastTheme
	Prompt  PromptTheme

	gradient []string
}

// OutlineTheme styles the focused node and its children.
type OutlineTheme struct {
	Breadcrumb lipgloss.Style
	Separator  lipgloss.Style
	Focused    lipgloss.Style
	Child      lipgloss.Style
	Selected   lipgloss.Style
	Index      lipgloss.Style
	Empty      lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ToastTheme styles transient notifications.
type ToastTheme struct {
	Frame lipgloss.Style
	Text  lipgloss.Style
}

// PromptTheme styles the text entry, confirmation and search prompts.
type PromptTheme struct {
	Label  lipgloss.Style
	Hint   lipgloss.Style
	Result lipgloss.Style
	Path   lipgloss.Style
}

const (
	gradientFrom  = "#5FAFFF"
	gradientTo    = "#FF5FD7"
	gradientSteps = 6
)

// Default returns the built-in theme used across the UI.
func Default() Theme {
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	return Theme{
		Outline: OutlineTheme{
			Breadcrumb: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Separator:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Focused:    lipgloss.NewStyle().Bold(true).Underline(true),
			Child:      lipgloss.NewStyle(),
			Selected:   selected,
			Index:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Toast: ToastTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(0, 1),
			Text: lipgloss.NewStyle().Bold(true),
		},
		Prompt: PromptTheme{
			Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Result: lipgloss.NewStyle(),
			Path:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		gradient: Gradient(gradientFrom, gradientTo, gradientSteps),
	}
}

// Depth returns the style for names at the given depth below the root.
func (t Theme) Depth(depth int) lipgloss.Style {
	if len(t.gradient) == 0 || depth <= 0 {
		return t.Outline.Child
	}
	return t.Outline.Child.Foreground(lipgloss.Color(t.gradient[(depth-1)%len(t.gradient)]))
}

// Gradient blends from into to in n steps in Lab space and returns hex
// colors. Unparseable endpoints yield nil.
func Gradient(from, to string, n int) []string {
	if n <= 0 {
		return nil
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return nil
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return nil
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = a.BlendLab(b, t).Clamped().Hex()
	}
	return out
}
