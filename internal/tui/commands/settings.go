package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
)

// LoadUserConfigCmd fetches the platform configuration.
func LoadUserConfigCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := client.GetUserConfig(context.Background(), userID)
		return tui.UserConfigLoadedMsg{Config: cfg, Err: err}
	}
}

// SaveUserConfigCmd saves the full configuration object.
func SaveUserConfigCmd(client *api.Client, cfg *api.UserConfig) tea.Cmd {
	return func() tea.Msg {
		return tui.UserConfigSavedMsg{Err: client.SaveUserConfig(context.Background(), cfg)}
	}
}
