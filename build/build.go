// Package build describes the binary that is running. Info is either injected
// as JSON through -ldflags or read from the metadata the Go toolchain embeds.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
)

// Info contains build metadata.
type Info struct {
	Module       string            `json:"module"       yaml:"module"`
	Version      string            `json:"version"      yaml:"version"`
	GitCommit    string            `json:"git_commit"   yaml:"git_commit,omitempty"` //nolint:tagliatelle
	GitDate      string            `json:"git_date"     yaml:"git_date,omitempty"`   //nolint:tagliatelle
	GoVersion    string            `json:"go_version"   yaml:"go_version"`           //nolint:tagliatelle
	Dependencies map[string]string `json:"dependencies" yaml:"dependencies,omitempty"`
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	if len(js) == 0 || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// Current reads the toolchain's embedded build info. It returns (nil, false)
// when the binary carries none.
func Current() (*Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, false
	}

	return fromBuildInfo(bi), true
}

// Resolve prefers injected JSON and falls back to Current.
func Resolve(injected string) (*Info, bool) {
	if info, ok := Parse(injected); ok {
		return info, true
	}

	return Current()
}

func fromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Module:    bi.Main.Path,
		Version:   bi.Main.Version,
		GoVersion: bi.GoVersion,
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.GitDate = s.Value
		}
	}

	if len(bi.Deps) > 0 {
		info.Dependencies = make(map[string]string, len(bi.Deps))
		for _, d := range bi.Deps {
			info.Dependencies[d.Path] = d.Version
		}
	}

	return info
}
