package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/e11jah/anagram"
	"github.com/e11jah/anagram/internal/config"
	"github.com/e11jah/anagram/internal/logger"
	"github.com/e11jah/anagram/internal/render"
	"github.com/e11jah/anagram/internal/session"
)

type app struct {
	configPath string
	logLevel   string
	format     string
	minGroup   int

	cfg *config.Config
	log zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "anagram",
		Short:         "Group words into anagram classes",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.StringVar(&a.format, "format", "", "output format (text|yaml)")
	flags.IntVar(&a.minGroup, "min-group", 0, "only list groups with at least this many words")

	root.AddCommand(a.listCmd(), a.searchCmd(), a.menuCmd())
	return root
}

// setup resolves the config as defaults < file < .env/environment < flags.
func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("min-group") {
		cfg.MinGroup = a.minGroup
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	return nil
}

func (a *app) load(files []string) (*session.Session, error) {
	s := session.New(a.log)
	for _, f := range files {
		if _, err := s.ReadFile(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE...",
		Short: "Read word files and print every anagram group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args)
			if err != nil {
				return err
			}
			if err := render.Write(cmd.OutOrStdout(), s.Groups(a.cfg.MinGroup), a.cfg.Format); err != nil {
				return err
			}
			a.log.Info().Msg(s.Summary())
			return nil
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "search WORD...",
		Short: "Report the stored anagrams of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(files)
			if err != nil {
				return err
			}
			return a.search(cmd.OutOrStdout(), s, args)
		},
	}
	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "word file to read before searching (repeatable)")
	return cmd
}

func (a *app) search(w io.Writer, s *session.Session, words []string) error {
	for _, word := range words {
		found, err := s.Search(word)
		switch {
		case errors.Is(err, anagram.ErrInvalidInput):
			a.log.Warn().Err(err).Msg("Skipping search string")
		case errors.Is(err, anagram.ErrNotFound):
			fmt.Fprintf(w, "%s: no anagrams\n", word)
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "%s: %s\n", word, strings.Join(found, " "))
		}
	}
	return nil
}

func (a *app) menuCmd() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(files)
			if err != nil {
				return err
			}
			return s.RunMenu(cmd.InOrStdin(), cmd.OutOrStdout(), session.MenuOptions{
				Format:   a.cfg.Format,
				MinGroup: a.cfg.MinGroup,
			})
		},
	}
	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "word file to preload (repeatable)")
	return cmd
}
