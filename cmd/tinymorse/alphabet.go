package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/bft-labs/tinymorse/pkg/morse"
)

func newAlphabetCmd() *cobra.Command {
	var wpm int
	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Show the supported characters with their codes and timing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timing := morse.DefaultTiming()
			if wpm > 0 {
				timing = morse.TimingForWPM(wpm)
			}
			renderAlphabet(cmd, timing)
			return nil
		},
	}
	cmd.Flags().IntVar(&wpm, "wpm", 0, "show durations at this speed (default: 200ms unit)")
	return cmd
}

func renderAlphabet(cmd *cobra.Command, timing morse.Timing) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("unit %dms, %d wpm", timing.Unit, timing.WPM()))

	t.AppendHeader(table.Row{"Char", "Code", "Units", "Duration"})
	t.AppendRows(lo.Map(morse.Characters(), func(c byte, _ int) table.Row {
		seq := morse.Resolve(c).Sequence
		units := seq.Duration(morse.Timing{Unit: 1})
		return table.Row{string(c), seq.String(), units, fmt.Sprintf("%dms", seq.Duration(timing))}
	}))
	t.AppendFooter(table.Row{"space", strings.TrimSpace(morse.WordSeparator), 7, fmt.Sprintf("%dms", timing.WordGap())})
	t.Render()
}
