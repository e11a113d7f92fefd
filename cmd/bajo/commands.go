package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
	"github.com/RyanBlaney/sonido-bajo/algorithms/tonal"
)

// lowE is the absolute semitone of E1
const lowE = 1*12 + pitch.ReferenceClass

type scaleOutput struct {
	Key      string             `json:"key"`
	Text     string             `json:"text"`
	Notes    []string           `json:"notes"`
	Position tonal.KeyPosition  `json:"position"`
	Related  tonal.KeyRelations `json:"related"`
}

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <key>",
		Short: "Spell a scale key, e.g. C, Am, D_dorian, E♭_blues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			notes := a.engine.ScaleNoteNames(key)
			if len(notes) == 0 {
				return fmt.Errorf("unknown scale key %q", key)
			}
			return writeJSON(cmd.OutOrStdout(), scaleOutput{
				Key:      key,
				Text:     a.engine.ScaleText(key),
				Notes:    notes,
				Position: a.engine.KeyPosition(key),
				Related:  a.engine.RelatedKeys(key),
			})
		},
	}
}

func newChordsCmd(a *app) *cobra.Command {
	var sevenths bool
	cmd := &cobra.Command{
		Use:   "chords <key>",
		Short: "List the diatonic chords of a scale key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chords := a.engine.DiatonicChords(args[0])
			if sevenths {
				chords = a.engine.DiatonicChordsWith7th(args[0])
			}
			return writeJSON(cmd.OutOrStdout(), chords)
		},
	}
	cmd.Flags().BoolVar(&sevenths, "sevenths", false, "List seventh chords instead of triads")
	return cmd
}

func newProgressionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progression <key> <chord>...",
		Short: "Analyze degrees, functions and cadences of a chord progression",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), a.engine.AnalyzeProgression(args[0], args[1:]))
		},
	}
}

type spellOutput struct {
	Chord   string   `json:"chord"`
	Root    string   `json:"root"`
	Tones   []string `json:"tones"`
	Aliases []string `json:"aliases"`
}

func newSpellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spell <chord>",
		Short: "Spell the tones of a chord and list its alternative names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return writeJSON(cmd.OutOrStdout(), spellOutput{
				Chord:   name,
				Root:    a.engine.RootNote(name),
				Tones:   a.engine.SpellChord(name),
				Aliases: a.engine.ChordNameAliases(name),
			})
		},
	}
}

func newInversionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inversion <chord> <bass>",
		Short: "Report which inversion a bass note makes (-1 when not a chord tone)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), a.engine.DetectInversion(args[0], args[1]))
		},
	}
}

func newPositionsCmd(a *app) *cobra.Command {
	var tuningName string
	cmd := &cobra.Command{
		Use:   "positions <chord>",
		Short: "List fretboard positions of a chord (ALL_KEYS and WHITE_KEYS also work)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := tuningName
			if name == "" {
				name = a.engine.DefaultTuning()
			}
			return writeJSON(cmd.OutOrStdout(), a.engine.ChordPositionsWithTuning(args[0], name))
		},
	}
	cmd.Flags().StringVarP(&tuningName, "tuning", "t", "", "Tuning name (default from config)")
	return cmd
}

func newFingeringCmd(a *app) *cobra.Command {
	var mode, tuningName string
	cmd := &cobra.Command{
		Use:   "fingering <pitch>...",
		Short: "Lay a pitch sequence out on the neck",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, err := parsePitches(args)
			if err != nil {
				return err
			}
			name := tuningName
			if name == "" {
				name = a.engine.DefaultTuning()
			}
			return writeJSON(cmd.OutOrStdout(), a.engine.CalculateFingeringWithTuning(pitches, mode, name))
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "balanced", "shortest, position-stable, string-priority, open-string or balanced")
	cmd.Flags().StringVarP(&tuningName, "tuning", "t", "", "Tuning name (default from config)")
	return cmd
}

func newTuningsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tunings",
		Short: "List the known tunings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), a.engine.ListTunings())
		},
	}
}

// parsePitches accepts semitone offsets from E1 or note names with octave
func parsePitches(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			out[i] = n
			continue
		}
		abs, err := pitch.AbsoluteSemitone(arg)
		if err != nil {
			return nil, fmt.Errorf("pitch %d: %w", i+1, err)
		}
		out[i] = abs - lowE
	}
	return out, nil
}
