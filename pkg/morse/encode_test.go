package morse

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single", "e", "."},
		{"sos", "SOS", "... --- ..."},
		{"words", "hi there", ".... .. / - .... . .-. ."},
		{"collapsed spaces", "a   b", ".- / -..."},
		{"leading and trailing spaces", "  a  ", ".-"},
		{"digits", "73", "--... ...--"},
		{"halts at punctuation", "ab#cd", ".- -..."},
		{"halts at newline", "ok\nno", "--- -.-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"sos", "... --- ...", "SOS", false},
		{"words", ".... .. / - .... . .-. .", "HI THERE", false},
		{"extra whitespace", "  .-   -...  ", "AB", false},
		{"empty word", "/ .- /", "A", false},
		{"unknown group", ".- ......", "A", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownCode) {
				t.Errorf("error = %v, want ErrUnknownCode", err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode_InvertsEncode(t *testing.T) {
	for _, in := range []string{"THE QUICK BROWN FOX", "CQ CQ DE 2E0ABC", "0 1 2 3"} {
		got, err := Decode(Encode(in))
		if err != nil {
			t.Fatalf("Decode(Encode(%q)) error = %v", in, err)
		}
		if got != in {
			t.Errorf("Decode(Encode(%q)) = %q", in, got)
		}
	}
}
