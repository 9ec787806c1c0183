package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sajari/fuzzy"
)

const maxSuggestions = 8

var faint = lipgloss.NewStyle().Faint(true)

// nameSuggestions returns stored names containing input, case-insensitively,
// in list order. When nothing contains it, names within two edits of the
// input (with or without suffix) are offered instead. Blank input
// suggests nothing.
func nameSuggestions(input string, names []string, suffix string) []string {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return nil
	}
	var out []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), in) {
			out = append(out, n)
		}
		if len(out) >= maxSuggestions {
			return out
		}
	}
	if len(out) > 0 {
		return out
	}
	return typoSuggestions(in, names, suffix)
}

func typoSuggestions(in string, names []string, suffix string) []string {
	// Lowercased terms (full and without suffix) back to stored names.
	terms := make(map[string]string, 2*len(names))
	for _, n := range names {
		l := strings.ToLower(n)
		terms[l] = n
		if suffix != "" {
			if bare := strings.TrimSuffix(l, strings.ToLower(suffix)); bare != l && bare != "" {
				if _, taken := terms[bare]; !taken {
					terms[bare] = n
				}
			}
		}
	}
	train := make([]string, 0, len(terms))
	for t := range terms {
		train = append(train, t)
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(train)

	seen := map[string]bool{}
	var out []string
	for _, t := range model.Suggestions(in, false) {
		n, ok := terms[t]
		if !ok || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}

func (m model) suggestionsView() string {
	if len(m.suggest) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range m.suggest {
		b.WriteString(m.paint(faint, "  • ") + s + "\n")
	}
	b.WriteString("enter: save   tab: complete   esc: cancel\n")
	return b.String()
}

func (m model) paint(st lipgloss.Style, s string) string {
	if m.noColor {
		return s
	}
	return st.Render(s)
}
