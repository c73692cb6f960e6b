package spawn

import "testing"

func TestDetachedEmptyCommand(t *testing.T) {
	if err := Detached("  "); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestDetachedStartsCommand(t *testing.T) {
	if err := Detached("true"); err != nil {
		t.Fatalf("expected spawn to succeed: %v", err)
	}
}
