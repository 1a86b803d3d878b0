// scripts.go implements the "voxboard scripts" command group: list,
// save, and delete conversation scripts.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/pkg/validation"
)

var scriptFlags struct {
	id   string
	name string
	file string
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Work with conversation scripts",
}

var scriptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scripts",
	RunE:  runScriptsList,
}

var scriptsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a script",
	Long: `Save a conversation script. Content is read from --file, or from
stdin when --file is omitted, and must be valid JSON. Pass --id to
update an existing script.`,
	RunE: runScriptsSave,
}

var scriptsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a script",
	Args:  cobra.ExactArgs(1),
	RunE:  runScriptsDelete,
}

func init() {
	scriptsSaveCmd.Flags().StringVar(&scriptFlags.id, "id", "", "Script ID to update")
	scriptsSaveCmd.Flags().StringVar(&scriptFlags.name, "name", "", "Script name")
	scriptsSaveCmd.Flags().StringVar(&scriptFlags.file, "file", "", "Path to the JSON content")

	scriptsCmd.AddCommand(scriptsListCmd)
	scriptsCmd.AddCommand(scriptsSaveCmd)
	scriptsCmd.AddCommand(scriptsDeleteCmd)
}

func runScriptsList(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	sess, err := d.requireSession(ctx)
	if err != nil {
		return err
	}

	scripts, err := d.client.ListScripts(ctx, sess.UserID)
	if err != nil {
		return err
	}

	if len(scripts) == 0 {
		fmt.Println("No scripts yet")
		return nil
	}

	fmt.Printf("%-36s  %-28s  %s\n", "ID", "Name", "Updated")
	for _, s := range scripts {
		fmt.Printf("%-36s  %-28s  %s\n", s.ID, s.ScriptName, s.UpdatedAt)
	}
	return nil
}

func runScriptsSave(cmd *cobra.Command, args []string) error {
	var content []byte
	var err error
	if scriptFlags.file != "" {
		content, err = os.ReadFile(scriptFlags.file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", scriptFlags.file, err)
		}
	} else {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	if err := validation.ValidateScript(scriptFlags.name, string(content)); err != nil {
		return err
	}

	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	sess, err := d.requireSession(ctx)
	if err != nil {
		return err
	}

	saved, err := d.client.SaveScript(ctx, &api.Script{
		ID:            scriptFlags.id,
		UserID:        sess.UserID,
		ScriptName:    scriptFlags.name,
		ScriptContent: string(content),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Saved script %q (id %s)\n", saved.ScriptName, saved.ID)
	return nil
}

func runScriptsDelete(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	if _, err := d.requireSession(ctx); err != nil {
		return err
	}

	if err := d.client.DeleteScript(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Script deleted")
	return nil
}
