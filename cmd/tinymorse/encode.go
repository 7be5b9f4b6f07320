package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/bft-labs/tinymorse/pkg/morse"
)

var (
	dotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	sepStyle  = lipgloss.NewStyle().Faint(true)
)

func newEncodeCmd() *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Print text as dots and dashes",
		Long:  "Print text as dots and dashes. Reads stdin line by line when no text is given.",
		Example: strings.TrimSpace(`
  tinymorse encode cq cq de k1abc
  echo sos | tinymorse encode --color`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachInput(cmd, args, func(line string) error {
				code := morse.Encode(line)
				if color {
					code = colorize(code)
				}
				fmt.Fprintln(cmd.OutOrStdout(), code)

				if c, i, found := lo.FindIndexOf([]byte(line), func(b byte) bool {
					return !morse.Resolve(b).OK()
				}); found {
					fmt.Fprintf(cmd.ErrOrStderr(), "stopped at %q (position %d): no morse code\n", c, i)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "color dots and dashes")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [code...]",
		Short: "Print dots and dashes as text",
		Long: "Print dots and dashes as text. Characters are separated by spaces and words by '/'.\n" +
			"Reads stdin line by line when no code is given.",
		Example: "  tinymorse decode \"... --- ...\"\n  tinymorse decode -- \"-.-. --.-\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			return forEachInput(cmd, args, func(line string) error {
				text, err := morse.Decode(line)
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			})
		},
	}
}

// forEachInput calls fn with the joined arguments, or with each stdin line
// when there are none.
func forEachInput(cmd *cobra.Command, args []string, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}
	return eachLine(cmd.InOrStdin(), fn)
}

func eachLine(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := fn(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	return sc.Err()
}

func colorize(code string) string {
	var sb strings.Builder
	for _, r := range code {
		switch r {
		case '.':
			sb.WriteString(dotStyle.Render("."))
		case '-':
			sb.WriteString(dashStyle.Render("-"))
		case '/':
			sb.WriteString(sepStyle.Render("/"))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
