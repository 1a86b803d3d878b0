package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
)

// LoadSummaryCmd fetches the dashboard summary. A failing endpoint
// still produces a SummaryLoadedMsg; the result is marked degraded.
func LoadSummaryCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		return tui.SummaryLoadedMsg{Result: client.GetSummary(context.Background(), userID)}
	}
}
