package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ThatOtherAndrew/dollar/internal/config"
	gestures "github.com/ThatOtherAndrew/dollar/internal/gesture"
	"github.com/ThatOtherAndrew/dollar/internal/recognizer"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath    string
	templatesPath string
	verbose       bool

	logger   *slog.Logger
	settings *config.Settings
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dollar",
		Short: "Recognize single-stroke gestures",
		Long: `dollar matches single-stroke gestures against a library of templates
using the $1 unistroke recognizer.

Strokes are written as "x,y;x,y;...".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "settings file (default ~/.config/dollar/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.templatesPath, "templates", "", "template library file (default ~/.config/dollar/gestures.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newRecognizeCmd(a),
		newListCmd(a),
		newRenderCmd(a),
		newLearnCmd(a),
		newRemoveCmd(a),
		newCompletionCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := a.configPath
	if path == "" {
		var err error
		if path, err = config.GetSettingsPath(); err != nil {
			return fmt.Errorf("failed to get settings path: %w", err)
		}
	}
	settings, err := config.Load(path, a.logger)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.settings = settings

	if a.templatesPath == "" {
		a.templatesPath = settings.Templates
	}
	if a.templatesPath == "" {
		if a.templatesPath, err = config.GetTemplatesPath(); err != nil {
			return fmt.Errorf("failed to get templates path: %w", err)
		}
	}
	return nil
}

// newRecognizer builds a recognizer from the settings, with the template library
// added on top of the built-in gestures.
func (a *app) newRecognizer() (*recognizer.Recognizer, error) {
	opts, err := a.settings.RecognizerOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, recognizer.WithLogger(a.logger))
	r, err := recognizer.New(opts...)
	if err != nil {
		return nil, err
	}

	library, err := gestures.LoadGestures(a.templatesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load gestures: %w", err)
	}
	for _, g := range library {
		for i, t := range g.Templates {
			if _, err := r.AddTemplateString(g.Name, t); err != nil {
				return nil, fmt.Errorf("gesture %q template %d: %w", g.Name, i+1, err)
			}
		}
	}
	a.logger.Debug("Loaded gestures", "path", a.templatesPath, "count", len(library))
	return r, nil
}

type styles struct {
	title lipgloss.Style
	name  lipgloss.Style
	faint lipgloss.Style
}

func newStyles(w io.Writer) styles {
	renderer := lipgloss.NewRenderer(w)
	return styles{
		title: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99")),
		name:  renderer.NewStyle().Bold(true),
		faint: renderer.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
	}
}
