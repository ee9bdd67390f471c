package notify

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCapMessageTrimsAndPassesShortText(t *testing.T) {
	if got := capMessage("  Time's up!  "); got != "Time's up!" {
		t.Fatalf("got %q", got)
	}
	if got := capMessage("   "); got != "" {
		t.Fatalf("blank message should cap to empty, got %q", got)
	}
}

func TestCapMessageBoundsLongText(t *testing.T) {
	long := strings.Repeat("x", maxMessageLen+50)
	got := capMessage(long)
	if utf8.RuneCountInString(got) != maxMessageLen+1 {
		t.Fatalf("capped length = %d runes", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected truncation suffix, got %q", got[len(got)-10:])
	}
}

func TestCapMessageKeepsRuneBoundaries(t *testing.T) {
	// Multi-byte runes across the cap must not be split.
	long := strings.Repeat("ü", maxMessageLen+10)
	got := capMessage(long)
	if !utf8.ValidString(got) {
		t.Fatalf("capped message is not valid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != maxMessageLen+1 {
		t.Fatalf("capped length = %d runes", utf8.RuneCountInString(got))
	}
}
