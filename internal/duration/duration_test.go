package duration

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "full H:MM:SS", input: "1:05:03", want: time.Hour + 5*time.Minute + 3*time.Second},
		{name: "MM:SS", input: "10:00", want: 10 * time.Minute},
		{name: "unpadded components", input: "1:5:3", want: time.Hour + 5*time.Minute + 3*time.Second},
		{name: "zero", input: "0:00", want: 0},
		{name: "large hour component", input: "100:00:00", want: 100 * time.Hour},
		{name: "single component", input: "90", wantErr: true},
		{name: "four components", input: "1:2:3:4", wantErr: true},
		{name: "non-numeric", input: "1:xx:00", wantErr: true},
		{name: "minutes out of range", input: "1:60:00", wantErr: true},
		{name: "seconds out of range", input: "1:00:60", wantErr: true},
		{name: "negative component", input: "1:-5:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				if _, ok := err.(*MalformedError); !ok {
					t.Fatalf("Parse(%q) error = %T, want *MalformedError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{time.Hour + 5*time.Minute + 3*time.Second, "1:05:03"},
		{2*time.Hour + 30*time.Minute, "2:30:00"},
		{10 * time.Minute, "0:10:00"},
		{0, "0:00:00"},
		{90*time.Minute + 500*time.Millisecond, "1:30:01"}, // rounds to nearest second
		{-time.Minute, "0:00:00"},
	}

	for _, tt := range tests {
		if got := Format(tt.input); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Round-tripping through Format must stay within one second of the original
// value, for arbitrary non-negative durations.
func TestRoundTrip(t *testing.T) {
	cases := []time.Duration{
		0,
		time.Second,
		time.Hour + 5*time.Minute + 3*time.Second,
		17*time.Hour + 59*time.Minute + 59*time.Second,
		123*time.Minute + 45*time.Second,
		time.Duration(1.75 * float64(time.Hour)),
	}

	for _, d := range cases {
		parsed, err := Parse(Format(d))
		if err != nil {
			t.Fatalf("Parse(Format(%v)) failed: %v", d, err)
		}
		diff := parsed - d
		if diff < 0 {
			diff = -diff
		}
		if diff > time.Second {
			t.Errorf("round trip of %v drifted by %v", d, diff)
		}
	}
}

func TestFromHours(t *testing.T) {
	if got := FromHours(1.5); got != 90*time.Minute {
		t.Errorf("FromHours(1.5) = %v, want 90m", got)
	}
	if got := FromHours(0.25); got != 15*time.Minute {
		t.Errorf("FromHours(0.25) = %v, want 15m", got)
	}
	if got := Hours(90 * time.Minute); got != 1.5 {
		t.Errorf("Hours(90m) = %v, want 1.5", got)
	}
}
