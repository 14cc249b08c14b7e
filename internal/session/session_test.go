package session

import (
	"errors"
	"testing"

	"github.com/pennaedit/penna/internal/buffer"
)

func typeText(c *Controller, text string) {
	for _, r := range text {
		c.Apply(Edit{Op: buffer.InsertRune{R: r}})
	}
}

func TestControllerStartsUntitled(t *testing.T) {
	c := NewController("")
	if !c.Untitled() {
		t.Fatalf("expected untitled session")
	}
	if eff := c.Start(); eff.Kind != EffectNone {
		t.Fatalf("expected no startup effect, got %+v", eff)
	}
	if c.Loading() {
		t.Fatalf("expected no pending operation")
	}
}

func TestControllerStartsWithFileLoad(t *testing.T) {
	c := NewController("/tmp/notes.txt")
	eff := c.Start()
	if eff.Kind != EffectLoad || eff.Path != "/tmp/notes.txt" {
		t.Fatalf("expected load effect for startup file, got %+v", eff)
	}
	if !c.Loading() {
		t.Fatalf("expected pending operation after startup dispatch")
	}
	if !c.Untitled() {
		t.Fatalf("path must stay empty until the load resolves")
	}
}

func TestNewResetsSession(t *testing.T) {
	c := NewController("")
	c.Resolve(Opened{Path: "/tmp/a.txt", Text: "content"})
	c.Resolve(Opened{Err: errors.New("boom")})
	c.Apply(New{})
	if !c.Untitled() {
		t.Fatalf("expected untitled after New, got %q", c.Path())
	}
	if c.Buffer().Text() != "" {
		t.Fatalf("expected fresh buffer, got %q", c.Buffer().Text())
	}
	if c.Err() != nil {
		t.Fatalf("expected error cleared, got %v", c.Err())
	}
}

func TestOpenDispatchesPickWithoutStateChange(t *testing.T) {
	c := NewController("")
	typeText(c, "draft")
	eff := c.Apply(Open{})
	if eff.Kind != EffectPickOpen {
		t.Fatalf("expected pick-open effect, got %+v", eff)
	}
	if c.Buffer().Text() != "draft" {
		t.Fatalf("expected buffer untouched while pick is pending")
	}
	if !c.Loading() {
		t.Fatalf("expected pending operation")
	}
}

func TestOpenedSuccessReplacesDocument(t *testing.T) {
	c := NewController("")
	typeText(c, "scratch")
	c.Apply(Open{})
	c.Resolve(Opened{Path: "/tmp/a.txt", Text: "from disk"})
	if c.Path() != "/tmp/a.txt" {
		t.Fatalf("expected path set, got %q", c.Path())
	}
	if c.Buffer().Text() != "from disk" {
		t.Fatalf("expected buffer loaded, got %q", c.Buffer().Text())
	}
	if cur := c.Buffer().Cursor(); cur != (buffer.Pos{}) {
		t.Fatalf("expected cursor reset, got %+v", cur)
	}
	if c.Loading() {
		t.Fatalf("expected no pending operation after resolve")
	}
}

func TestOpenedFailureKeepsDocument(t *testing.T) {
	c := NewController("")
	c.Resolve(Opened{Path: "/tmp/a.txt", Text: "kept"})
	failure := errors.New("read failed")
	c.Apply(Open{})
	c.Resolve(Opened{Err: failure})
	if c.Path() != "/tmp/a.txt" {
		t.Fatalf("expected previous path kept, got %q", c.Path())
	}
	if c.Buffer().Text() != "kept" {
		t.Fatalf("expected previous buffer kept, got %q", c.Buffer().Text())
	}
	if !errors.Is(c.Err(), failure) {
		t.Fatalf("expected stored error, got %v", c.Err())
	}
}

func TestEditClearsError(t *testing.T) {
	c := NewController("")
	c.Resolve(Opened{Err: errors.New("boom")})
	if c.Err() == nil {
		t.Fatalf("expected stored error")
	}
	c.Apply(Edit{Op: buffer.InsertRune{R: 'x'}})
	if c.Err() != nil {
		t.Fatalf("expected edit to clear error, got %v", c.Err())
	}
	if c.Buffer().Text() != "x" {
		t.Fatalf("expected edit applied, got %q", c.Buffer().Text())
	}
}

func TestSaveCapturesTextBeforeDispatch(t *testing.T) {
	c := NewController("")
	typeText(c, "hello")
	eff := c.Apply(Save{})
	if eff.Kind != EffectSave || eff.Path != "" {
		t.Fatalf("unexpected save effect %+v", eff)
	}
	typeText(c, " world")
	if eff.Text != "hello" {
		t.Fatalf("expected captured text %q, got %q", "hello", eff.Text)
	}
}

func TestSaveUsesCurrentPath(t *testing.T) {
	c := NewController("")
	c.Resolve(Opened{Path: "/tmp/a.txt", Text: "hi"})
	eff := c.Apply(Save{})
	if eff.Path != "/tmp/a.txt" {
		t.Fatalf("expected save against current path, got %q", eff.Path)
	}
}

func TestSavedSuccessAdoptsPath(t *testing.T) {
	c := NewController("")
	c.Apply(Save{})
	c.Resolve(Saved{Path: "/tmp/picked.txt"})
	if c.Path() != "/tmp/picked.txt" {
		t.Fatalf("expected picked path adopted, got %q", c.Path())
	}
	if c.Err() != nil {
		t.Fatalf("expected no error, got %v", c.Err())
	}
}

func TestSavedFailureKeepsPath(t *testing.T) {
	c := NewController("")
	c.Resolve(Opened{Path: "/tmp/a.txt", Text: "hi"})
	failure := errors.New("disk full")
	c.Apply(Save{})
	c.Resolve(Saved{Err: failure})
	if c.Path() != "/tmp/a.txt" {
		t.Fatalf("expected path untouched, got %q", c.Path())
	}
	if !errors.Is(c.Err(), failure) {
		t.Fatalf("expected stored error, got %v", c.Err())
	}
}

func TestResultsApplyInArrivalOrder(t *testing.T) {
	// A save completing after a New still adopts its path; staleness is not
	// detected.
	c := NewController("")
	typeText(c, "x")
	c.Apply(Save{})
	c.Apply(New{})
	c.Resolve(Saved{Path: "/tmp/late.txt"})
	if c.Path() != "/tmp/late.txt" {
		t.Fatalf("expected late result applied unconditionally, got %q", c.Path())
	}
}

func TestLoadingTracksPendingOperations(t *testing.T) {
	c := NewController("")
	c.Apply(Open{})
	c.Apply(Save{})
	if !c.Loading() {
		t.Fatalf("expected loading with two pending ops")
	}
	c.Resolve(Opened{Path: "/a", Text: ""})
	if !c.Loading() {
		t.Fatalf("expected loading with one pending op")
	}
	c.Resolve(Saved{Path: "/b"})
	if c.Loading() {
		t.Fatalf("expected idle after both resolved")
	}
}
