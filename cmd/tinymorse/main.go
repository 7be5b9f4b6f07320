package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/bft-labs/tinymorse/internal/adapters/log"
	"github.com/bft-labs/tinymorse/internal/cliconfig"
)

const helpBanner = `
 _   _                                           
| |_(_)_ __  _   _   _ __ ___   ___  _ __ ___  ___ 
| __| | '_ \| | | | | '_ ' _ \ / _ \| '__/ __|/ _ \
| |_| | | | | |_| | | | | | | | (_) | |  \__ \  __/
 \__|_|_| |_|\__, | |_| |_| |_|\___/|_|  |___/\___|
             |___/                                 
`

const helpDescription = `
Play text as International Morse Code.

Highlights:
  - Reads stdin, a file (optionally followed), a serial device or a TCP client.
  - Plays through the speaker, draws glyphs in the terminal, or just logs.
  - Letters, digits and spaces are supported; a buffer stops at anything else.
  - Configure via file ($HOME/.tinymorse/config.toml), TINYMORSE_* env, or flags.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  echo "cq cq de k1abc" | tinymorse --wpm 18
  tinymorse --input /dev/ttyACM0 --tone terminal
  tinymorse --input notes.txt --follow
  tinymorse --listen :7373 --no-greeting
  tinymorse encode hello world
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath string
		echo    bool
	)

	root := &cobra.Command{
		Use:           "tinymorse",
		Short:         "Play text as morse code",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			level, _ := logAdapter.ParseLevel(cfg.LogLevel)
			log := logAdapter.NewConsoleLogger(cmd.ErrOrStderr(), level)
			log.Debug().Interface("config", cfg).Msg("configuration")

			return runPlay(cmd, cfg, echo, log)
		},
	}

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.tinymorse/config.toml)")
	f.IntVar(&cfg.UnitMs, "unit", cfg.UnitMs, "dot length in milliseconds")
	f.IntVar(&cfg.WPM, "wpm", cfg.WPM, "words per minute (PARIS); overrides --unit")
	f.StringVar(&cfg.Tone, "tone", cfg.Tone, "tone backend: "+strings.Join(cliconfig.ToneBackends, ", "))
	f.Float64Var(&cfg.Frequency, "frequency", cfg.Frequency, "speaker tone frequency in Hz")
	f.Float64Var(&cfg.Volume, "volume", cfg.Volume, "speaker volume (0, 1]")
	f.BoolVar(&echo, "echo", false, "also draw glyphs in the terminal when using the speaker")

	f.StringVarP(&cfg.Input, "input", "i", cfg.Input, "input: - for stdin, a file, or a serial device")
	f.BoolVarP(&cfg.Follow, "follow", "f", cfg.Follow, "keep reading text appended to the input file")
	f.StringVar(&cfg.Listen, "listen", cfg.Listen, "accept text from TCP clients on this address")

	f.StringVar(&cfg.Greeting, "greeting", cfg.Greeting, "message written to the peer after startup")
	f.BoolVar(&cfg.NoGreeting, "no-greeting", cfg.NoGreeting, "do not send a greeting")
	f.DurationVar(&cfg.GreetingDelay, "greeting-delay", cfg.GreetingDelay, "delay before the greeting")
	if err := f.MarkHidden("greeting"); err != nil {
		panic(err)
	}

	f.DurationVar(&cfg.PollInterval, "poll", cfg.PollInterval, "poll interval when idle")
	f.IntVar(&cfg.BufferSize, "buffer-size", cfg.BufferSize, "maximum bytes played per read")
	f.BoolVar(&cfg.Once, "once", cfg.Once, "exit when input goes idle")
	f.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "simulate timing without sleeping or sound")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newAlphabetCmd())
	return root
}

// loadConfig layers the config file, then TINYMORSE_* env, under the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log := logAdapter.NewConsoleLogger(os.Stderr, zerolog.InfoLevel)
		log.Error().Err(err).Msg("tinymorse")
		os.Exit(1)
	}
}
