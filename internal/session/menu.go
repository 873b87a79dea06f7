package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/e11jah/anagram"
	"github.com/e11jah/anagram/internal/render"
)

var menuOptions = []string{
	"Anagram Tree Menu Options:",
	"Read String",
	"Read File",
	"List",
	"Search",
	"Quit",
}

// MenuOptions controls how the menu lists groups.
type MenuOptions struct {
	Format   string
	MinGroup int
}

// RunMenu drives the numbered menu over in and out until Quit or end of input.
func (s *Session) RunMenu(in io.Reader, out io.Writer, opts MenuOptions) error {
	scanner := bufio.NewScanner(in)
	prompt := func(msg string) (string, bool) {
		fmt.Fprint(out, msg)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		fmt.Fprintln(out)
		for i, option := range menuOptions {
			if i > 0 {
				fmt.Fprintf(out, "%d. ", i)
			}
			fmt.Fprintln(out, option)
		}

		command, ok := prompt("Please press a number, then <enter>: ")
		if !ok {
			return scanner.Err()
		}

		switch command {
		case "1":
			input, ok := prompt("Please enter a string: ")
			if !ok {
				return scanner.Err()
			}
			key, err := s.AddString(input)
			if err != nil {
				fmt.Fprintln(out, "Error: string not alphabetical or zero length")
				continue
			}
			fmt.Fprintf(out, "Inserting: %s -> %s\n", input, key)

		case "2":
			filename, ok := prompt("Filename: ")
			if !ok {
				return scanner.Err()
			}
			stats, err := s.ReadFile(filename)
			if err != nil {
				fmt.Fprintln(out, "Error reading from file:", filename)
				continue
			}
			fmt.Fprintf(out, "Read %d strings, skipped %d\n", stats.Accepted, stats.Rejected)

		case "3":
			if err := render.Write(out, s.Groups(opts.MinGroup), opts.Format); err != nil {
				return err
			}
			fmt.Fprintln(out, s.Summary())

		case "4":
			input, ok := prompt("Search string: ")
			if !ok {
				return scanner.Err()
			}
			words, err := s.Search(input)
			switch {
			case errors.Is(err, anagram.ErrInvalidInput):
				fmt.Fprintln(out, "Error: please enter a good string")
			case errors.Is(err, anagram.ErrNotFound):
				fmt.Fprintf(out, "No anagrams of %s\n", input)
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "Anagrams of %s: %s\n", input, strings.Join(words, " "))
			}

		case "5":
			fmt.Fprintln(out, "Bye")
			return nil

		default:
			fmt.Fprintln(out, "Error: unrecognised command number!")
		}
	}
}
