package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/log"
	"github.com/voxboard-dev/voxboard/internal/player"
	"github.com/voxboard-dev/voxboard/internal/session"
	"github.com/voxboard-dev/voxboard/internal/tui"
)

// newCallLogsFixture builds a CallLogsModel whose commands are never
// executed, so no network traffic happens.
func newCallLogsFixture(t *testing.T) CallLogsModel {
	t.Helper()

	store, err := session.NewStore(session.DriverMemory)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	client := api.New("http://example.invalid", store, log.Discard())
	p := player.NewWithStarter(func(url string, onExit func()) (func(), error) {
		return func() {}, nil
	})
	return NewCallLogsModel(client, "u1", p)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func openedDetail(t *testing.T, m CallLogsModel) CallLogsModel {
	t.Helper()

	m, _ = m.Update(tui.CallLogsLoadedMsg{Logs: []api.CallLog{
		{ID: "c1", CallSID: "CA1", FromNumber: "+15551234567", Duration: 60, Status: "completed"},
	}})
	m, _ = m.Update(keyMsg("enter"))
	if !m.detailOpen {
		t.Fatal("detail dialog did not open")
	}
	return m
}

func TestDetailDiscardsStaleRecordings(t *testing.T) {
	m := openedDetail(t, newCallLogsFixture(t))

	if !m.recLoading {
		t.Fatal("expected recordings to be loading after opening the dialog")
	}

	// A result carrying an older sequence number must be dropped.
	m, _ = m.Update(tui.RecordingsLoadedMsg{
		Seq:  m.detailSeq - 1,
		Recs: []api.Recording{{RecordingSID: "RE-stale"}},
	})
	if len(m.recordings) != 0 {
		t.Fatalf("stale recordings applied: %v", m.recordings)
	}
	if !m.recLoading {
		t.Error("stale result cleared the loading state")
	}

	// The current sequence number applies normally.
	m, _ = m.Update(tui.RecordingsLoadedMsg{
		Seq:  m.detailSeq,
		Recs: []api.Recording{{RecordingSID: "RE1", Duration: 42}},
	})
	if m.recLoading {
		t.Error("current result left loading state set")
	}
	if len(m.recordings) != 1 || m.recordings[0].RecordingSID != "RE1" {
		t.Fatalf("recordings = %v, want [RE1]", m.recordings)
	}
}

func TestClosedDetailIgnoresLateResults(t *testing.T) {
	m := openedDetail(t, newCallLogsFixture(t))
	openSeq := m.detailSeq

	m, _ = m.Update(keyMsg("esc"))
	if m.detailOpen {
		t.Fatal("detail dialog did not close")
	}

	m, _ = m.Update(tui.RecordingsLoadedMsg{
		Seq:  openSeq,
		Recs: []api.Recording{{RecordingSID: "RE-late"}},
	})
	if len(m.recordings) != 0 {
		t.Errorf("late recordings applied after close: %v", m.recordings)
	}

	m, _ = m.Update(tui.TranscriptLoadedMsg{
		Seq:        openSeq,
		Transcript: &api.Transcript{FullTranscript: "late"},
	})
	if m.transcript != nil {
		t.Error("late transcript applied after close")
	}
}

func TestReopenedDetailUsesFreshSequence(t *testing.T) {
	m := openedDetail(t, newCallLogsFixture(t))
	firstSeq := m.detailSeq

	m, _ = m.Update(keyMsg("esc"))
	m, _ = m.Update(keyMsg("enter"))
	if m.detailSeq <= firstSeq {
		t.Fatalf("reopened dialog reused sequence %d", m.detailSeq)
	}

	// The first dialog's result must not land in the second dialog.
	m, _ = m.Update(tui.RecordingsLoadedMsg{
		Seq:  firstSeq,
		Recs: []api.Recording{{RecordingSID: "RE-old"}},
	})
	if len(m.recordings) != 0 {
		t.Errorf("first dialog's recordings applied to reopened dialog: %v", m.recordings)
	}
}

func TestEditingTracksOpenDialogs(t *testing.T) {
	m := newCallLogsFixture(t)
	if m.Editing() {
		t.Fatal("fresh screen reports editing")
	}

	m, _ = m.Update(keyMsg("f"))
	if !m.Editing() {
		t.Error("open filter panel not reported as editing")
	}
	m, _ = m.Update(keyMsg("esc"))
	if m.Editing() {
		t.Error("closed filter panel still reported as editing")
	}

	m, _ = m.Update(keyMsg("o"))
	if !m.Editing() {
		t.Error("open dial dialog not reported as editing")
	}
}

func TestLoadErrorShowsBanner(t *testing.T) {
	m := newCallLogsFixture(t)

	m, _ = m.Update(tui.CallLogsLoadedMsg{Err: errors.New("connection refused")})
	if m.loading {
		t.Error("error result left loading state set")
	}
	if m.errMsg == "" {
		t.Error("error result produced no banner")
	}
}
