package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/tinymorse/internal/cliconfig"
	"github.com/bft-labs/tinymorse/pkg/morse"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// noConfig points --config at a file that does not exist so a developer's
// own config cannot leak into the test.
func noConfig(t *testing.T) []string {
	return []string{"--config", filepath.Join(t.TempDir(), "none.toml")}
}

func TestEncodeCmd(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		want      string
		wantNotes string
	}{
		{"args", "", []string{"encode", "sos"}, "... --- ...\n", ""},
		{"joined args", "", []string{"encode", "hi", "there"}, ".... .. / - .... . .-. .\n", ""},
		{"stdin lines", "e\r\nt\n", []string{"encode"}, ".\n-\n", ""},
		{"halts", "", []string{"encode", "ab#c"}, ".- -...\n", "stopped at '#' (position 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("stdout = %q, want %q", out, tt.want)
			}
			if !strings.Contains(errOut, tt.wantNotes) {
				t.Errorf("stderr = %q, want %q", errOut, tt.wantNotes)
			}
		})
	}
}

func TestEncodeCmd_Color(t *testing.T) {
	out, _, err := execute(t, "", "encode", "--color", "a")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, ".") || !strings.Contains(out, "-") {
		t.Errorf("stdout = %q, want dot and dash", out)
	}
}

func TestDecodeCmd(t *testing.T) {
	out, _, err := execute(t, "", "decode", "--", "-.-. --.-", "/", "-.. -..-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "CQ DX\n" {
		t.Errorf("stdout = %q, want CQ DX", out)
	}

	_, _, err = execute(t, "", "decode", ".- ........")
	if !errors.Is(err, morse.ErrUnknownCode) {
		t.Errorf("Execute() error = %v, want ErrUnknownCode", err)
	}
}

func TestAlphabetCmd(t *testing.T) {
	out, _, err := execute(t, "", "alphabet", "--wpm", "20")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"unit 60ms, 20 wpm", "-----", "--..", "1140ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("alphabet output missing %q:\n%s", want, out)
		}
	}
}

func TestPlay_DryRunTerminal(t *testing.T) {
	input := filepath.Join(t.TempDir(), "msg.txt")
	if err := os.WriteFile(input, []byte("SOS"), 0o644); err != nil {
		t.Fatal(err)
	}

	args := append(noConfig(t),
		"--input", input,
		"--tone", "terminal",
		"--dry-run",
		"--no-greeting",
		"--unit", "10",
		"--poll", "5ms",
		"--log-level", "error",
	)
	out, errOut, err := execute(t, "", args...)
	if err != nil {
		t.Fatalf("Execute() error = %v (stderr %s)", err, errOut)
	}
	if got := strings.Count(out, "▄▄▄"); got != 3 {
		t.Errorf("dashes drawn = %d, want 3 in %q", got, out)
	}
	if got := strings.Count(out, "▄"); got != 15 {
		t.Errorf("glyph blocks = %d, want 15 in %q", got, out)
	}
}

func TestPlay_StdinGreetingAndLog(t *testing.T) {
	args := append(noConfig(t),
		"--tone", "log",
		"--dry-run",
		"--greeting-delay", "0s",
		"--poll", "5ms",
		"--log-level", "debug",
	)
	out, errOut, err := execute(t, "e", args...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "Welcome to tiny morse") {
		t.Errorf("stdout = %q, want greeting", out)
	}
	if !strings.Contains(errOut, "tone on") {
		t.Errorf("log output missing tone events:\n%s", errOut)
	}
}

func TestPlay_InvalidConfig(t *testing.T) {
	args := append(noConfig(t), "--tone", "kazoo")
	if _, _, err := execute(t, "", args...); err == nil {
		t.Error("Execute() expected error for unknown tone")
	}
}

func TestLoadConfig_FileEnvFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "tone = \"log\"\nunit_ms = 80\nbuffer_size = 16\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TINYMORSE_UNIT_MS", "90")
	t.Setenv("TINYMORSE_BUFFER_SIZE", "32")

	root := newRootCmd()
	if err := root.ParseFlags([]string{"--config", path, "--buffer-size", "48"}); err != nil {
		t.Fatal(err)
	}
	cfg := cliconfig.DefaultConfig()
	// Mirror the flag value bound inside newRootCmd.
	cfg.BufferSize = 48
	if err := loadConfig(root, &cfg, path); err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Tone != "log" {
		t.Errorf("Tone = %q, want log from file", cfg.Tone)
	}
	if cfg.UnitMs != 90 {
		t.Errorf("UnitMs = %d, want 90 from env", cfg.UnitMs)
	}
	if cfg.BufferSize != 48 {
		t.Errorf("BufferSize = %d, want 48 from flag", cfg.BufferSize)
	}
}
