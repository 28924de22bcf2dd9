package demo

import "github.com/amp-labs/amp-dsa/build"

// Report is the structured outcome of one demo run.
type Report struct {
	RunID    string      `yaml:"run_id"`
	Build    *build.Info `yaml:"build,omitempty"`
	Sections []Section   `yaml:"sections"`
}

// Section collects the observations of one scenario.
type Section struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Steps []Step `yaml:"steps"`
}

// Step is one labelled observation. Value is a string, int, bool or a slice
// of ints or strings.
type Step struct {
	Label string `yaml:"label"`
	Value any    `yaml:"value"`
	Note  string `yaml:"note,omitempty"`
}

func (s *Section) add(label string, value any) {
	s.Steps = append(s.Steps, Step{Label: label, Value: value})
}

func (s *Section) addNote(label string, value any, note string) {
	s.Steps = append(s.Steps, Step{Label: label, Value: value, Note: note})
}

// Lookup returns the first step with the given label.
func (s Section) Lookup(label string) (Step, bool) {
	for _, st := range s.Steps {
		if st.Label == label {
			return st, true
		}
	}

	return Step{}, false
}
