package timeexpr

import (
	"errors"
	"testing"
	"time"
)

var parseNow = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func TestParseDurations(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"25", 1500},
		{"1h30m", 5400},
		{"90s", 90},
		{"1 30", 90},
		{"1 30 15", 5415},
		{"2h", 7200},
		{"1h 30", 5400},   // bare token inherits minutes from the hour neighbour
		{"10m30", 630},    // trailing bare segment reads as seconds
		{"1h30", 5400},    // trailing bare segment reads as minutes
		{"0h25m", 1500},   // zero-valued segments are allowed if the total is positive
		{"  25  ", 1500},  // surrounding whitespace ignored
		{"90S", 90},
		{"1H30M", 5400},
	}
	for _, c := range cases {
		got, err := Parse(c.input, parseNow)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseInvalidFormat(t *testing.T) {
	for _, input := range []string{"", "abc", "h30", "25x", "1:30", "-5", "m", "   ", "9 9 9 9"} {
		if _, err := Parse(input, parseNow); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidFormat", input, err)
		}
	}
}

func TestParseOutOfRange(t *testing.T) {
	for _, input := range []string{"0", "0s", "0 0", "999999999h", "99999999999999999999"} {
		if _, err := Parse(input, parseNow); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Parse(%q) error = %v, want ErrOutOfRange", input, err)
		}
	}
}

func TestParseTargetTimeLaterToday(t *testing.T) {
	got, err := Parse("19 30t", parseNow)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if want := 90 * 60; got != want {
		t.Fatalf("Parse(\"19 30t\") = %d, want %d", got, want)
	}
}

func TestParseTargetTimeRollsToTomorrow(t *testing.T) {
	got, err := Parse("17 30t", parseNow)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	// 18:00 now, 17:30 already passed: tomorrow, 23.5 hours away
	if want := 23*3600 + 30*60; got != want {
		t.Fatalf("Parse(\"17 30t\") = %d, want %d", got, want)
	}
	if got <= 0 {
		t.Fatalf("target-time result must be strictly positive, got %d", got)
	}
}

func TestParseTargetTimeDefaultsMissingComponents(t *testing.T) {
	got, err := Parse("20t", parseNow)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if want := 2 * 3600; got != want {
		t.Fatalf("Parse(\"20t\") = %d, want %d", got, want)
	}
}

func TestParseTargetTimeRejectsImpossibleClock(t *testing.T) {
	for _, input := range []string{"24 00t", "17 60t", "17 30 60t"} {
		if _, err := Parse(input, parseNow); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Parse(%q) error = %v, want ErrOutOfRange", input, err)
		}
	}
}
