package display

import (
	"math"
	"testing"
)

func TestTimeStrToSeconds(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  float64
	}{
		{"typical progress token", "00:14:27.799", 867.799},
		{"exactly one hour", "01:00:00.00", 3600},
		{"seconds with fraction", "00:00:05.5", 5.5},
		{"zero", "00:00:00.00", 0},
		{"multi-hour", "10:36:22.01", 38182.01},
		{"garbage", "not-a-clock", 0},
		{"too few fields", "14:27", 0},
		{"non-numeric field", "aa:bb:cc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeStrToSeconds(tt.clock)
			if math.Abs(got-tt.want) > 0.0005 {
				t.Errorf("TimeStrToSeconds(%q) = %v, want %v", tt.clock, got, tt.want)
			}
		})
	}
}

func TestFormatTimeFull(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00:000"},
		{"documented example", 867.799, "00:14:27:799"},
		{"exactly one hour", 3600, "01:00:00:000"},
		{"half-second fraction", 5.5, "00:00:05:500"},
		{"all fields", 3723.456, "01:02:03:456"},
		{"sidecar offset", 38182.01, "10:36:22:010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTimeFull(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatTimeFull(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

// Round-trip: parsing a clock string and formatting it back should agree
// within millisecond precision (the formats differ only in the ms separator).
func TestClockRoundTrip(t *testing.T) {
	got := FormatTimeFull(TimeStrToSeconds("00:14:27.799"))
	if got != "00:14:27:799" {
		t.Errorf("round trip = %q, want %q", got, "00:14:27:799")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical recording 4.7 GiB", 5046586572, "4.7 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
