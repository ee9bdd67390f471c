package action

import (
	"errors"
	"testing"
)

func TestKindRoundTrip(t *testing.T) {
	kinds := []Kind{
		ShowMessage, LockSession, OpenFile, OpenWebsite,
		SwitchToClock, SwitchToCountUp, Sleep, Shutdown, Restart,
	}
	for _, k := range kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) error: %v", k.String(), err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	got, err := ParseKind("FORMAT_DISK")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("error = %v, want ErrUnknownKind", err)
	}
	if got != ShowMessage {
		t.Fatalf("unknown kind should fall back to ShowMessage, got %v", got)
	}
}

func TestDowngradeRewritesDestructiveActions(t *testing.T) {
	for _, k := range []Kind{Sleep, Shutdown, Restart} {
		safe, rewritten := Downgrade(Action{Kind: k})
		if !rewritten {
			t.Fatalf("expected %v to be downgraded", k)
		}
		if safe.Kind != ShowMessage {
			t.Fatalf("Downgrade(%v) = %v, want ShowMessage", k, safe.Kind)
		}
	}
}

func TestDowngradeIdempotent(t *testing.T) {
	safe, _ := Downgrade(Action{Kind: Shutdown})
	again, rewritten := Downgrade(safe)
	if rewritten {
		t.Fatalf("second downgrade rewrote an already-safe action")
	}
	if again.Kind != ShowMessage {
		t.Fatalf("downgrade is not idempotent: %v", again.Kind)
	}
}

func TestDowngradePreservesAllowedActions(t *testing.T) {
	allowed := Action{Kind: OpenWebsite, Payload: "https://example.com"}
	safe, rewritten := Downgrade(allowed)
	if rewritten || safe != allowed {
		t.Fatalf("allowed action was altered: %+v -> %+v", allowed, safe)
	}
}
