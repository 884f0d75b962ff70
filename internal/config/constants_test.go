package config

import (
	"testing"
	"time"
)

func TestConstants(t *testing.T) {
	if DebounceDelay != 500*time.Millisecond {
		t.Fatalf("DebounceDelay = %v, want 500ms", DebounceDelay)
	}
	if FetchTimeout <= 0 {
		t.Fatalf("FetchTimeout must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DatasetResource == "" {
		t.Fatalf("DatasetResource should not be empty")
	}
	if LinkRel != "noopener noreferrer" {
		t.Fatalf("unexpected link rel %q", LinkRel)
	}
	if CardWidth < MinCardWidth {
		t.Fatalf("CardWidth must not be below MinCardWidth")
	}
}
