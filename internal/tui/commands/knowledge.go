package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/tui"
)

// LoadKnowledgeCmd fetches the document list.
func LoadKnowledgeCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		kbs, err := client.ListKnowledgeBases(context.Background(), userID)
		return tui.KnowledgeLoadedMsg{KBs: kbs, Err: err}
	}
}

// UploadKnowledgeCmd uploads a local file as a knowledge-base
// document.
func UploadKnowledgeCmd(client *api.Client, userID, kbName, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return tui.KnowledgeUploadedMsg{Err: fmt.Errorf("opening %s: %w", path, err)}
		}
		defer f.Close()

		_, err = client.UploadKnowledgeBase(context.Background(), userID, kbName, filepath.Base(path), f)
		return tui.KnowledgeUploadedMsg{Err: err}
	}
}

// DeleteKnowledgeCmd removes a document.
func DeleteKnowledgeCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return tui.KnowledgeDeletedMsg{Err: client.DeleteKnowledgeBase(context.Background(), id)}
	}
}
