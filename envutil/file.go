package envutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile reads variables from a file. The format follows the extension:
//   - .env files hold KEY=VALUE lines, parsed with godotenv (comments, quotes,
//     export prefixes)
//   - .yml/.yaml files hold a top-level "env" mapping of strings
func LoadEnvFile(path string) (map[string]string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(fileInfo.Name())

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadYAMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, fileInfo.Name())
	}
}

type yamlEnvFile struct {
	Env map[string]string `yaml:"env"`
}

func loadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	env := &yamlEnvFile{}

	if err := yaml.Unmarshal(bts, env); err != nil {
		return nil, err
	}

	return env.Env, nil
}

// Apply exports vars into the process environment. Keys that are already set
// keep their current value. It returns the keys it set.
func Apply(vars map[string]string) ([]string, error) {
	var set []string

	for key, value := range vars {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return set, fmt.Errorf("setting %s: %w", key, err)
		}

		set = append(set, key)
	}

	return set, nil
}
