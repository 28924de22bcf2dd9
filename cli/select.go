package cli

import (
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
)

const doneChoice = "[Done]"

// Select asks the user to pick one of choices.
func Select(label string, choices ...string) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}

	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Searcher: prefixSearcher(choices),
	}

	_, value, err := sel.Run()

	return value, err
}

// MultiSelect lets the user pick any number of choices one at a time until
// they choose [Done]. The result keeps the order of choices.
func MultiSelect(label string, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	selected := make(map[string]bool, len(choices))

	for {
		names := remaining(choices, selected)
		if len(names) == 0 {
			break
		}

		names = append([]string{doneChoice}, names...)

		sel := &promptui.Select{
			Label:    label,
			Items:    names,
			Searcher: prefixSearcher(names),
		}

		idx, value, err := sel.Run()
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			break
		}

		selected[value] = true
	}

	return pick(choices, selected), nil
}

// remaining returns the unselected choices, deduplicated and sorted.
func remaining(choices []string, selected map[string]bool) []string {
	var out []string

	for _, c := range choices {
		if !selected[c] {
			out = append(out, c)
		}
	}

	slices.Sort(out)

	return slices.Compact(out)
}

// pick returns the selected choices in their original order, once each.
func pick(choices []string, selected map[string]bool) []string {
	var out []string

	seen := make(map[string]bool, len(selected))

	for _, c := range choices {
		if selected[c] && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	return out
}

func prefixSearcher(names []string) func(string, int) bool {
	return func(input string, index int) bool {
		if input == "" || names[index] == doneChoice {
			return false
		}

		return strings.HasPrefix(names[index], input)
	}
}
