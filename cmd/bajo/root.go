package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-bajo/config"
	"github.com/RyanBlaney/sonido-bajo/engine"
	"github.com/RyanBlaney/sonido-bajo/logging"
)

// app holds what the subcommands share once the root has run
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	engine *engine.Engine
	sync   func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bajo",
		Short: "Music theory and bass fingering from the command line",
		Long: `bajo spells scales and chords, analyzes progressions and lays
pitches out on a bass neck.

Pitches for fingering are semitones above the low E of a four-string bass
(E1 = 0), or note names with an octave such as A1 or C＃2.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.sync != nil {
				_ = a.sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the config)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "text or json")

	root.AddCommand(
		newScaleCmd(a),
		newChordsCmd(a),
		newProgressionCmd(a),
		newSpellCmd(a),
		newInversionCmd(a),
		newPositionsCmd(a),
		newFingeringCmd(a),
		newTuningsCmd(a),
	)
	return root
}

// setup loads the config, installs the logger and builds the engine
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultEngineConfig()
	if a.configPath != "" {
		loaded, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	switch a.logFormat {
	case "json":
		zl, err := logging.NewZapProduction(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetGlobalLogger(zl)
		a.sync = zl.Sync
	case "text", "":
		l := logging.NewDefaultLogger()
		l.SetLevel(level)
		logging.SetGlobalLogger(l)
	default:
		return fmt.Errorf("unknown log format %q", a.logFormat)
	}

	a.engine, err = engine.New(cfg)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
