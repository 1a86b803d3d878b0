package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
)

// LoadScriptsCmd fetches the script list.
func LoadScriptsCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		scripts, err := client.ListScripts(context.Background(), userID)
		return tui.ScriptsLoadedMsg{Scripts: scripts, Err: err}
	}
}

// SaveScriptCmd saves a script. Content is validated as JSON by the
// view before this command is ever issued, and again by the API module
// as a backstop.
func SaveScriptCmd(client *api.Client, script *api.Script) tea.Cmd {
	return func() tea.Msg {
		_, err := client.SaveScript(context.Background(), script)
		return tui.ScriptSavedMsg{Err: err}
	}
}

// DeleteScriptCmd removes a script.
func DeleteScriptCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return tui.ScriptDeletedMsg{Err: client.DeleteScript(context.Background(), id)}
	}
}
