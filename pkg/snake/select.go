package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/remap/pkg/search"
)

// ErrNoChoices is returned when there is nothing to pick from.
var ErrNoChoices = errors.New("snake: nothing to choose from")

// PickMatch lets the user pick one of matches, filtering as they type.
func PickMatch(matches []search.Match, in io.Reader, out io.Writer) (search.Match, error) {
	if len(matches) == 0 {
		return search.Match{}, ErrNoChoices
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Path | cyan }}",
		Inactive: "   {{ .Name }} {{ .Path | faint }}",
		Selected: "{{ .Path | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(matches[index].Path), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Nodes",
		Items:     matches,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(in),
		Stdout:    NopCloser(out),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return search.Match{}, err
	}
	return matches[i], nil
}
