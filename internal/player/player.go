// Package player plays call recordings through an external audio
// player binary, spawned per clip. At most one clip plays at a time:
// starting a new one stops whatever is currently playing.
package player

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// ErrNoPlayer is returned when no supported audio player binary is on PATH.
var ErrNoPlayer = errors.New("player: no supported audio player found (tried mpv, ffplay, afplay, mpg123)")

// Starter launches playback of the audio at url. onExit must be called
// exactly once when playback ends on its own. The returned stop
// function terminates playback early; calling it must suppress onExit
// or be tolerated by it.
type Starter func(url string, onExit func()) (stop func(), err error)

// Player enforces the single-concurrently-playing-clip invariant over
// an injected Starter.
type Player struct {
	mu      sync.Mutex
	start   Starter
	current *playback
	gen     int
}

type playback struct {
	sid  string
	stop func()
}

// New creates a Player that spawns an external audio binary per clip.
func New() *Player {
	return &Player{start: execStarter}
}

// NewWithStarter creates a Player with a custom Starter. Tests use
// this to exercise the invariant without spawning processes.
func NewWithStarter(start Starter) *Player {
	return &Player{start: start}
}

// Play starts playback of the recording identified by sid from url,
// stopping any clip that is currently playing first.
func (p *Player) Play(sid, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	p.gen++
	gen := p.gen
	stop, err := p.start(url, func() { p.exited(gen) })
	if err != nil {
		return fmt.Errorf("starting playback of %s: %w", sid, err)
	}
	p.current = &playback{sid: sid, stop: stop}
	return nil
}

// Stop terminates the current clip, if any. Idempotent.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Playing returns the sid of the clip currently playing, if any.
func (p *Player) Playing() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return "", false
	}
	return p.current.sid, true
}

// stopLocked stops the current clip. Caller holds p.mu.
func (p *Player) stopLocked() {
	if p.current == nil {
		return
	}
	p.current.stop()
	p.current = nil
	// Bump the generation so a late onExit from the stopped clip is ignored.
	p.gen++
}

// exited clears the current clip after natural end of playback, unless
// a newer clip has already replaced it.
func (p *Player) exited(gen int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen == gen {
		p.current = nil
	}
}

// playerBinaries lists supported players in preference order with the
// flags that make them headless and quiet.
var playerBinaries = []struct {
	name string
	args []string
}{
	{"mpv", []string{"--no-video", "--really-quiet"}},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{"afplay", nil},
	{"mpg123", []string{"-q"}},
}

// execStarter spawns the first available player binary for url.
func execStarter(url string, onExit func()) (func(), error) {
	var bin string
	var args []string
	for _, cand := range playerBinaries {
		if path, err := exec.LookPath(cand.name); err == nil {
			bin = path
			args = cand.args
			break
		}
	}
	if bin == "" {
		return nil, ErrNoPlayer
	}

	cmd := exec.Command(bin, append(append([]string{}, args...), url)...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", bin, err)
	}

	go func() {
		_ = cmd.Wait()
		onExit()
	}()

	stop := func() {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	}
	return stop, nil
}
