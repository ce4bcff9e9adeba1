package probe

import (
	"strings"
	"testing"
)

// sampleStream is what ffprobe prints for a healthy 1080p source with
// -show_entries stream=width,height,duration -of default=nw=1:nk=1.
const sampleStream = "1920\n1080\n3571.234000\n"

func TestParseOutput(t *testing.T) {
	res, err := ParseOutput([]byte(sampleStream))
	if err != nil {
		t.Fatalf("ParseOutput() error: %v", err)
	}

	if res.Width != 1920 {
		t.Errorf("Width = %d, want 1920", res.Width)
	}
	if res.Height != 1080 {
		t.Errorf("Height = %d, want 1080", res.Height)
	}
	if res.Duration != 3571.234 {
		t.Errorf("Duration = %v, want 3571.234", res.Duration)
	}
}

func TestParseOutputTolerantFraming(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no trailing newline", "640\n480\n12.5"},
		{"crlf line endings", "640\r\n480\r\n12.5\r\n"},
		{"blank lines between fields", "640\n\n480\n\n12.5\n\n"},
		{"padded fields", "  640 \n 480\n\t12.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseOutput([]byte(tt.data))
			if err != nil {
				t.Fatalf("ParseOutput() error: %v", err)
			}
			if res.Width != 640 || res.Height != 480 || res.Duration != 12.5 {
				t.Errorf("got %dx%d %vs, want 640x480 12.5s",
					res.Width, res.Height, res.Duration)
			}
		})
	}
}

func TestParseOutputRejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"empty output", "", "want 3 probe fields, got 0"},
		{"missing duration", "640\n480\n", "want 3 probe fields, got 2"},
		{"extra field", "640\n480\n12.5\n30/1\n", "want 3 probe fields, got 4"},
		{"width not a number", "wide\n480\n12.5\n", "parse width"},
		{"height not a number", "640\nN/A\n12.5\n", "parse height"},
		{"duration not a number", "640\n480\nN/A\n", "parse duration"},
		{"zero width", "0\n480\n12.5\n", "non-positive width"},
		{"negative height", "640\n-480\n12.5\n", "parse height"},
		{"zero duration", "640\n480\n0.000000\n", "non-positive duration"},
		{"negative duration", "640\n480\n-3.2\n", "non-positive duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOutput([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseOutput() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}
