package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"statepad/internal/config"
	"statepad/internal/document"
	"statepad/internal/logger"
	"statepad/internal/store/dir"
	"statepad/internal/store/memory"
	"statepad/internal/store/sqlite"
)

var version = "dev"

// Persistent flags.
var (
	cfgPath     string
	storeFlag   string
	dataDirFlag string
	verbose     bool
	logFile     string
	noColor     bool
)

// Resolved in PersistentPreRunE and released in PersistentPostRunE.
var (
	cfg      *config.Config
	fileCfg  *config.Config // cfg as read from cfgFile, before flags
	cfgFile  string
	store    document.Store
	closers  []func() error
	watchDir *dir.Store
)

var rootCmd = &cobra.Command{
	Use:   "statepad [name]",
	Short: "Edit one text document at a time",
	Long: `statepad edits a single text document and tracks whether it has a
name and whether it has unsaved changes.

Documents live in a store: a directory of files (default), a SQLite
database, or memory for throwaway sessions. Names typed at the save-as
prompt get the configured suffix (.txt) appended.

Run without a subcommand to open the editor, optionally on NAME.`,
	Args:               cobra.MaximumNArgs(1),
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runEdit,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (default ~/.statepad/config.toml)")
	pf.StringVar(&storeFlag, "store", "", "document store: memory, dir or sqlite")
	pf.StringVar(&dataDirFlag, "data-dir", "", "where the dir and sqlite stores keep documents")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")
	pf.BoolVar(&noColor, "no-color", false, "disable colors")
}

// SetVersion sets the version reported by the version command and the log banner.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Resources opened for the command are
// released even when it fails.
func Execute() error {
	err := rootCmd.Execute()
	return errors.Join(err, teardown(rootCmd, nil))
}

// noStore marks commands that run without loading config or a store.
const noStore = "statepad/no-store"

func setup(cmd *cobra.Command, _ []string) error {
	// A failed previous run skips PersistentPostRunE.
	if err := teardown(cmd, nil); err != nil {
		return err
	}
	if cmd.Annotations[noStore] != "" {
		return nil
	}
	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	fileCfg, cfgFile = config.Clone(c), path
	applyFlags(c)
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	logger.SetVerbose(c.Verbose)
	logger.SetOutput(cmd.ErrOrStderr())
	if c.LogFile != "" {
		f, err := logger.OpenFile(c.LogFile, version)
		if err != nil {
			return err
		}
		logger.SetOutput(f)
		closers = append(closers, f.Close)
	}

	s, err := openStore(c)
	if err != nil {
		return err
	}
	store = s
	logger.Debug("config %s: store=%s data_dir=%s", path, c.Store, c.DataDir)
	return nil
}

func applyFlags(c *config.Config) {
	if storeFlag != "" {
		c.Store = storeFlag
	}
	if dataDirFlag != "" {
		c.DataDir = config.ExpandPath(dataDirFlag)
	}
	if logFile != "" {
		c.LogFile = config.ExpandPath(logFile)
	}
	c.Verbose = c.Verbose || verbose
	c.NoColor = c.NoColor || noColor
}

func openStore(c *config.Config) (document.Store, error) {
	watchDir = nil
	switch c.Store {
	case config.StoreMemory:
		return memory.NewStore(nil), nil
	case config.StoreDir:
		s, err := dir.NewStore(c.DataDir)
		if err != nil {
			return nil, err
		}
		watchDir = s
		return s, nil
	case config.StoreSQLite:
		s, err := sqlite.NewStore(c.DataDir)
		if err != nil {
			return nil, err
		}
		closers = append(closers, s.Close)
		return s, nil
	}
	return nil, fmt.Errorf("unknown store %q", c.Store)
}

func teardown(_ *cobra.Command, _ []string) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		errs = append(errs, closers[i]())
	}
	closers = nil
	logger.SetOutput(os.Stderr)
	return errors.Join(errs...)
}

// persistDiffView writes view to the config file. Flag overrides of the
// current run are left out.
func persistDiffView(view string) error {
	c := config.Clone(fileCfg)
	c.DiffView = view
	if err := config.Save(cfgFile, c); err != nil {
		return err
	}
	fileCfg = c
	logger.Debug("config %s: diff_view=%s", cfgFile, view)
	return nil
}

// newSession builds a session over the configured store.
func newSession(prompt document.Prompt) *document.Session {
	return document.NewSession(store, prompt, document.WithSuffix(cfg.Suffix))
}
