package player

import (
	"errors"
	"testing"
)

// fakeStarter records every start and stop without spawning anything.
type fakeStarter struct {
	started []string
	stopped []string
	exits   map[string]func()
	failOn  string
}

func newFakeStarter() *fakeStarter {
	return &fakeStarter{exits: make(map[string]func())}
}

func (f *fakeStarter) start(url string, onExit func()) (func(), error) {
	if url == f.failOn {
		return nil, errors.New("boom")
	}
	f.started = append(f.started, url)
	f.exits[url] = onExit
	return func() { f.stopped = append(f.stopped, url) }, nil
}

func TestSinglePlaybackInvariant(t *testing.T) {
	fake := newFakeStarter()
	p := NewWithStarter(fake.start)

	if err := p.Play("RE-A", "http://x/a"); err != nil {
		t.Fatalf("Play A failed: %v", err)
	}
	if err := p.Play("RE-B", "http://x/b"); err != nil {
		t.Fatalf("Play B failed: %v", err)
	}

	if len(fake.stopped) != 1 || fake.stopped[0] != "http://x/a" {
		t.Errorf("A must be stopped when B starts; stopped=%v", fake.stopped)
	}
	sid, ok := p.Playing()
	if !ok || sid != "RE-B" {
		t.Errorf("Playing: got %q/%v, want RE-B playing", sid, ok)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	fake := newFakeStarter()
	p := NewWithStarter(fake.start)

	if err := p.Play("RE-A", "http://x/a"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	p.Stop()
	p.Stop()

	if len(fake.stopped) != 1 {
		t.Errorf("stop calls: got %d, want 1", len(fake.stopped))
	}
	if _, ok := p.Playing(); ok {
		t.Error("nothing should be playing after Stop")
	}
}

func TestNaturalExitClearsCurrent(t *testing.T) {
	fake := newFakeStarter()
	p := NewWithStarter(fake.start)

	if err := p.Play("RE-A", "http://x/a"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	fake.exits["http://x/a"]()

	if _, ok := p.Playing(); ok {
		t.Error("clip should be cleared after it finishes on its own")
	}
}

func TestLateExitFromStoppedClipIgnored(t *testing.T) {
	fake := newFakeStarter()
	p := NewWithStarter(fake.start)

	if err := p.Play("RE-A", "http://x/a"); err != nil {
		t.Fatalf("Play A failed: %v", err)
	}
	if err := p.Play("RE-B", "http://x/b"); err != nil {
		t.Fatalf("Play B failed: %v", err)
	}

	// A's process exit arrives after B already replaced it.
	fake.exits["http://x/a"]()

	sid, ok := p.Playing()
	if !ok || sid != "RE-B" {
		t.Errorf("late exit of A must not clear B; got %q/%v", sid, ok)
	}
}

func TestPlayStartFailureLeavesNothingPlaying(t *testing.T) {
	fake := newFakeStarter()
	fake.failOn = "http://x/bad"
	p := NewWithStarter(fake.start)

	if err := p.Play("RE-A", "http://x/a"); err != nil {
		t.Fatalf("Play A failed: %v", err)
	}
	if err := p.Play("RE-B", "http://x/bad"); err == nil {
		t.Fatal("expected start failure")
	}

	// A was already stopped before the failed start; nothing plays now.
	if _, ok := p.Playing(); ok {
		t.Error("nothing should be playing after a failed start")
	}
}
