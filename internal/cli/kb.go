// kb.go implements the "voxboard kb" command group: list, upload, and
// delete knowledge-base documents.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var kbName string

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Work with knowledge bases",
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded documents",
	RunE:  runKBList,
}

var kbUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runKBUpload,
}

var kbDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runKBDelete,
}

func init() {
	kbUploadCmd.Flags().StringVar(&kbName, "name", "", "Knowledge base name (defaults to the file name)")

	kbCmd.AddCommand(kbListCmd)
	kbCmd.AddCommand(kbUploadCmd)
	kbCmd.AddCommand(kbDeleteCmd)
}

func runKBList(cmd *cobra.Command, args []string) error {
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

	kbs, err := d.client.ListKnowledgeBases(ctx, sess.UserID)
	if err != nil {
		return err
	}

	if len(kbs) == 0 {
		fmt.Println("No documents uploaded yet")
		return nil
	}

	fmt.Printf("%-36s  %-24s  %-28s  %s\n", "ID", "Name", "File", "Uploaded")
	for _, kb := range kbs {
		fmt.Printf("%-36s  %-24s  %-28s  %s\n", kb.ID, kb.KBName, kb.OriginalFilename, kb.CreatedAt)
	}
	return nil
}

func runKBUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	name := kbName
	if name == "" {
		name = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

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

	kb, err := d.client.UploadKnowledgeBase(ctx, sess.UserID, name, filepath.Base(path), f)
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded %s as %q (id %s)\n", filepath.Base(path), name, kb.ID)
	return nil
}

func runKBDelete(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	if _, err := d.requireSession(ctx); err != nil {
		return err
	}

	if err := d.client.DeleteKnowledgeBase(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Document deleted")
	return nil
}
