package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				WPM:          12,
				Tone:         "terminal",
				PollInterval: "25ms",
				Volume:       0.3,
				Once:         &trueVal,
			},
			changed: map[string]bool{},
			expected: Config{
				WPM:          12,
				Tone:         "terminal",
				PollInterval: 25 * time.Millisecond,
				Volume:       0.3,
				Once:         true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Tone:  "log",
				Input: "/dev/ttyACM0",
			},
			changed: map[string]bool{"tone": true},
			initial: Config{Tone: "speaker"},
			expected: Config{
				Tone:  "speaker", // unchanged because flag was set
				Input: "/dev/ttyACM0",
			},
		},
		{
			name:       "false bool overrides true default",
			fileConfig: FileConfig{DryRun: &falseVal},
			changed:    map[string]bool{},
			initial:    Config{DryRun: true},
			expected:   Config{DryRun: false},
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{GreetingDelay: "soon"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
		{
			name: "handles all field types correctly",
			fileConfig: FileConfig{
				UnitMs:        150,
				WPM:           10,
				Tone:          "log",
				Frequency:     800,
				Volume:        0.9,
				Input:         "notes.txt",
				Follow:        &trueVal,
				Listen:        "127.0.0.1:7373",
				Greeting:      "CQ\r\n",
				NoGreeting:    &falseVal,
				GreetingDelay: "3s",
				PollInterval:  "75ms",
				BufferSize:    16,
				Once:          &trueVal,
				DryRun:        &trueVal,
				LogLevel:      "warn",
			},
			changed: map[string]bool{},
			expected: Config{
				UnitMs:        150,
				WPM:           10,
				Tone:          "log",
				Frequency:     800,
				Volume:        0.9,
				Input:         "notes.txt",
				Follow:        true,
				Listen:        "127.0.0.1:7373",
				Greeting:      "CQ\r\n",
				GreetingDelay: 3 * time.Second,
				PollInterval:  75 * time.Millisecond,
				BufferSize:    16,
				Once:          true,
				DryRun:        true,
				LogLevel:      "warn",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyFileConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config =\n%+v\nwant\n%+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
wpm = 18
tone = "terminal"
volume = 0.4
greeting_delay = "1s"
follow = true
input = "notes.txt"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.WPM != 18 {
		t.Errorf("WPM = %v, want 18", fc.WPM)
	}
	if fc.Tone != "terminal" {
		t.Errorf("Tone = %v, want terminal", fc.Tone)
	}
	if fc.Volume != 0.4 {
		t.Errorf("Volume = %v, want 0.4", fc.Volume)
	}
	if fc.GreetingDelay != "1s" {
		t.Errorf("GreetingDelay = %v, want 1s", fc.GreetingDelay)
	}
	if fc.Follow == nil || !*fc.Follow {
		t.Errorf("Follow = %v, want true", fc.Follow)
	}
	if fc.Input != "notes.txt" {
		t.Errorf("Input = %v, want notes.txt", fc.Input)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
tone = "log"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".tinymorse") {
		t.Errorf("DefaultConfigPath() = %v, should contain .tinymorse", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
