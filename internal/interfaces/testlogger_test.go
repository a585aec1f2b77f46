package interfaces_test

import (
	"testing"

	"trustlens/internal/interfaces"
)

func TestTestLoggerRecordsEntriesInOrder(t *testing.T) {
	t.Parallel()

	tl := interfaces.NewTestLogger(false)
	tl.Info("first", interfaces.Field{Key: "n", Value: 1})
	tl.Warn("second")
	tl.Error("third")

	entries := tl.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[0].Level != "info" || entries[0].Msg != "first" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[0].Fields["n"] != 1 {
		t.Errorf("fields = %v", entries[0].Fields)
	}
	if entries[1].Level != "warn" || entries[2].Level != "error" {
		t.Errorf("levels = %q, %q", entries[1].Level, entries[2].Level)
	}
}

func TestTestLoggerWithSharesRecording(t *testing.T) {
	t.Parallel()

	tl := interfaces.NewTestLogger(false)
	child := tl.With(interfaces.Field{Key: "component", Value: "fetcher"})
	child.Info("scoped", interfaces.Field{Key: "url", Value: "http://x.test"})

	entries := tl.Entries()
	if len(entries) != 1 {
		t.Fatalf("parent should see child entries, got %d", len(entries))
	}
	if entries[0].Fields["component"] != "fetcher" {
		t.Errorf("persistent field missing: %v", entries[0].Fields)
	}
	if entries[0].Fields["url"] != "http://x.test" {
		t.Errorf("call field missing: %v", entries[0].Fields)
	}
}

func TestTestLoggerEntriesIsACopy(t *testing.T) {
	t.Parallel()

	tl := interfaces.NewTestLogger(false)
	tl.Info("only")

	got := tl.Entries()
	got[0].Msg = "mutated"

	if tl.Entries()[0].Msg != "only" {
		t.Error("Entries must return a copy, not the backing slice")
	}
}
