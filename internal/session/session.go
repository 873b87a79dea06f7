// Package session holds the one anagram tree of an interactive or batch run
// and feeds it from strings and files.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/e11jah/anagram"
)

type Session struct {
	log  zerolog.Logger
	tree anagram.Tree[string, string]
}

// Stats counts the lines of one read.
type Stats struct {
	Accepted int
	Rejected int
}

func New(log zerolog.Logger) *Session {
	return &Session{
		log:  log,
		tree: anagram.New[string, string](),
	}
}

// AddString normalizes raw and files it under its key.
func (s *Session) AddString(raw string) (string, error) {
	key, item, err := anagram.Normalize(raw)
	if err != nil {
		return "", err
	}
	s.log.Debug().Str("word", item).Str("key", key).Msg("Inserting")
	s.tree.Insert(key, item)
	return key, nil
}

// ReadFrom inserts every valid line of r. Blank lines are skipped and
// invalid ones are logged and counted; only read errors are returned.
func (s *Session) ReadFrom(r io.Reader, name string) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) == 0 {
			continue
		}
		if _, err := s.AddString(text); err != nil {
			stats.Rejected++
			s.log.Warn().Err(err).Str("file", name).Int("line", line).Msg("Skipping input string")
			continue
		}
		stats.Accepted++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read %s: %w", name, err)
	}
	return stats, nil
}

func (s *Session) ReadFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	stats, err := s.ReadFrom(f, path)
	if err != nil {
		return stats, err
	}
	s.log.Info().
		Str("file", path).
		Str("accepted", humanize.Comma(int64(stats.Accepted))).
		Str("rejected", humanize.Comma(int64(stats.Rejected))).
		Msg("Read word file")
	return stats, nil
}

// Search returns every stored anagram of raw, raw itself included if stored.
func (s *Session) Search(raw string) ([]string, error) {
	key, _, err := anagram.Normalize(raw)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("word", raw).Str("key", key).Msg("Searching")
	v, err := s.tree.Search(key)
	if err != nil {
		return nil, err
	}
	return v.Items(), nil
}

func (s *Session) Remove(raw string) error {
	key, item, err := anagram.Normalize(raw)
	if err != nil {
		return err
	}
	return s.tree.RemoveItem(key, item)
}

// Groups lists the anagram classes with at least minSize words, in key order.
func (s *Session) Groups(minSize int) []anagram.Entry[string, string] {
	all := s.tree.Entries()
	if minSize <= 1 {
		return all
	}
	groups := all[:0]
	for _, e := range all {
		if len(e.Items) >= minSize {
			groups = append(groups, e)
		}
	}
	return groups
}

func (s *Session) Summary() string {
	return fmt.Sprintf("%s words in %s groups",
		humanize.Comma(int64(s.tree.Len())),
		humanize.Comma(int64(s.tree.Size())))
}
