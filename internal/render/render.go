package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/e11jah/anagram"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Group is the YAML shape of one anagram class.
type Group struct {
	Key   string   `yaml:"key"`
	Words []string `yaml:"words"`
}

func IsKnown(format string) bool {
	return format == FormatText || format == FormatYAML
}

// Write prints one group per entry. Text output is "key: word word".
func Write(w io.Writer, entries []anagram.Entry[string, string], format string) error {
	switch format {
	case FormatText:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s: %s\n", e.Key, strings.Join(e.Items, " ")); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		groups := make([]Group, 0, len(entries))
		for _, e := range entries {
			groups = append(groups, Group{Key: e.Key, Words: e.Items})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(groups); err != nil {
			return fmt.Errorf("encode groups: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
