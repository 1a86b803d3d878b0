// Package commands provides Bubble Tea commands for asynchronous API
// and session operations. Each command runs in its own goroutine and
// delivers a typed message from the tui package.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/session"
	"github.com/voxboard-dev/voxboard/internal/tui"
)

// CheckSessionCmd loads the persisted session at startup.
func CheckSessionCmd(store session.Store) tea.Cmd {
	return func() tea.Msg {
		sess, err := store.Load(context.Background())
		return tui.SessionCheckedMsg{Session: sess, Err: err}
	}
}

// LoginCmd exchanges credentials for a token and persists the
// resulting session.
func LoginCmd(client *api.Client, store session.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := client.Login(ctx, email, password)
		if err != nil {
			return tui.LoginResultMsg{Err: err}
		}
		if err := store.Login(ctx, res.Token, res.UserID); err != nil {
			return tui.LoginResultMsg{Err: err}
		}
		return tui.LoginResultMsg{UserID: res.UserID}
	}
}

// RegisterCmd creates an account and persists the resulting session.
func RegisterCmd(client *api.Client, store session.Store, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := client.Register(ctx, name, email, password)
		if err != nil {
			return tui.LoginResultMsg{Err: err}
		}
		if err := store.Login(ctx, res.Token, res.UserID); err != nil {
			return tui.LoginResultMsg{Err: err}
		}
		return tui.LoginResultMsg{UserID: res.UserID}
	}
}

// LogoutCmd clears the persisted session.
func LogoutCmd(store session.Store) tea.Cmd {
	return func() tea.Msg {
		return tui.LoggedOutMsg{Err: store.Logout(context.Background())}
	}
}
