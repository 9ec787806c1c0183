package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"statepad/internal/document"
	"statepad/internal/logger"
	"statepad/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Open the editor",
	Long: `Open the interactive editor, optionally on a stored document.

Keys:
  ctrl+s   Save (asks for a name when untitled)
  ctrl+r   Save as
  ctrl+n   New document
  tab      Switch between editor and document list
  enter    Open the selected document
  ctrl+d   Diff the buffer against the stored copy
  ctrl+y   Copy the buffer to the clipboard
  f1       Help
  ctrl+q   Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI is replaced in tests.
var runTUI = tui.Run

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return errors.New("the editor needs a terminal; use list, show or save for scripting")
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	sess := newSession(nil)
	if len(args) == 1 {
		if err := openArg(ctx, sess, args[0]); err != nil {
			return err
		}
	}

	opts := tui.Options{
		ConfirmDiscard: cfg.ConfirmDiscard,
		NoColor:        cfg.NoColor,
		DiffView:       cfg.DiffView,
		Suffix:         cfg.Suffix,
		SaveDiffView:   persistDiffView,
	}
	if watchDir != nil {
		ch, err := watchDir.Watch(ctx)
		if err != nil {
			logger.Warn("watch %s: %v", watchDir.Root(), err)
		} else {
			opts.Watch = ch
		}
	}

	// Log lines must not land on the screen the TUI owns.
	if cfg.LogFile == "" {
		prev := logger.Output()
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(prev)
	}

	logger.Info("session %s: editor started", sess.ID())
	return runTUI(ctx, sess, opts)
}

// openArg opens name, trying it with the configured suffix when the bare
// name is not stored. A name that exists under neither is an error.
func openArg(ctx context.Context, sess *document.Session, name string) error {
	err := sess.OpenNamed(ctx, name)
	if !errors.Is(err, document.ErrNotFound) {
		return err
	}
	if full, ok := document.NormalizeName(name, cfg.Suffix); ok && full != name {
		if err2 := sess.OpenNamed(ctx, full); err2 == nil || !errors.Is(err2, document.ErrNotFound) {
			return err2
		}
	}
	return fmt.Errorf("%w%s", err, suggest(ctx, name))
}
