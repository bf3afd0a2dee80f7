package openai

import (
	"context"
	"strings"
	"testing"
)

func TestSummarizeWithoutKey(t *testing.T) {
	c := New("")

	got, err := c.SummarizeReminder(context.Background(), "Study Session", "Review chapters 1-3")
	if err != nil {
		t.Fatalf("SummarizeReminder: %v", err)
	}
	if got != "Study Session: Review chapters 1-3" {
		t.Fatalf("summary = %q", got)
	}

	got, err = c.SummarizeReminder(context.Background(), "Exam", "")
	if err != nil || got != "Exam" {
		t.Fatalf("summary = %q, %v", got, err)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := New("").SummarizeReminder(context.Background(), "  ", ""); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("é", 100)
	got := Truncate(long)
	if !strings.HasSuffix(got, "...") || len([]rune(got)) != 83 {
		t.Fatalf("Truncate produced %d runes: %q", len([]rune(got)), got)
	}
	if Truncate("short") != "short" {
		t.Fatal("short text must be returned unchanged")
	}
}
