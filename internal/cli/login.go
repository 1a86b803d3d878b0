// login.go implements the "voxboard login", "voxboard logout", and
// "voxboard whoami" commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voxboard-dev/voxboard/pkg/validation"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := strings.TrimSpace(args[0])

	password := loginPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	}

	if err := validation.ValidateLogin(email, password); err != nil {
		return err
	}

	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	res, err := d.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := d.store.Login(ctx, res.Token, res.UserID); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (user %s)\n", email, res.UserID)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.store.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	sess, err := d.requireSession(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("User ID: %s\n", sess.UserID)
	return nil
}
