package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"statepad/internal/document"
)

var saveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save standard input as a document",
	Long: `Read standard input and save it under NAME, as the editor's save-as
would. The configured suffix is appended when missing; an existing
document with that name is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	content := string(data)

	sess := newSession(nil)
	sess.HandleEdit(content)
	out, err := sess.SaveAsWith(context.Background(), content, document.Answer(args[0]))
	if err != nil {
		return err
	}
	if out == document.Cancelled {
		return fmt.Errorf("save: %w: name is blank", document.ErrInvalidName)
	}
	name, _ := sess.CurrentFilename()
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", name, len(data))
	return nil
}
