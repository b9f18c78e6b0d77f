package utils

import (
	"regexp"
	"testing"
)

var idPattern = regexp.MustCompile(`^tr_\d{13}_\d{3}$`)

func TestNewID_Format(t *testing.T) {
	id := NewID("tr")
	if !idPattern.MatchString(id) {
		t.Fatalf("unexpected id format: %s", id)
	}
}

func TestNewInviteCode_Shape(t *testing.T) {
	code := NewInviteCode()
	if len(code) != 6 {
		t.Fatalf("expected 6 characters, got %q", code)
	}
	if code != regexp.MustCompile(`[^0-9A-Z]`).ReplaceAllString(code, "") {
		t.Fatalf("invite code contains invalid characters: %q", code)
	}
}

func TestPick(t *testing.T) {
	if Pick(nil) != "" {
		t.Fatal("empty list must pick empty string")
	}
	if Pick([]string{"only"}) != "only" {
		t.Fatal("single-element list must pick that element")
	}
}
