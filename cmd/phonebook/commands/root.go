package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"phonebook/internal/app"
)

// state is shared by the command tree of a single invocation.
type state struct {
	v          *viper.Viper
	configFile string
	cfg        app.Config
	log        *zap.Logger
	newLogger  func(verbose bool) (*zap.Logger, error)
}

func newState() *state {
	return &state{v: app.NewViper(), newLogger: app.NewLogger}
}

// sync flushes the logger if one was built.
func (st *state) sync() {
	if st.log != nil {
		_ = st.log.Sync()
	}
}

// Execute runs the CLI against os.Args and prints a failure to stderr.
func Execute() error {
	st := newState()
	return execute(newRootCommand(st), st)
}

// execute runs root and flushes the logger on every path, including
// failures where cobra skips post-run hooks.
func execute(root *cobra.Command, st *state) error {
	defer st.sync()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// NewRootCommand builds the phonebook command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newState())
}

func newRootCommand(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:           "phonebook",
		Short:         "Command-line contact book",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(st.v, st.configFile)
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.log, err = st.newLogger(cfg.Verbose)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.open()
			if err != nil {
				return err
			}
			return runLoop(cmd.InOrStdin(), cmd.OutOrStdout(), a.Dispatcher)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&st.configFile, "config", "", "YAML config file with db.path, db.encoding and db.eol")
	flags.String("db", "", "database file (default \"database.txt\")")
	flags.String("encoding", "", "database charset (default \"UTF-8\")")
	flags.String("eol", "", "record separator, escapes allowed (default \"\\n\")")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	_ = st.v.BindPFlag("db.path", flags.Lookup("db"))
	_ = st.v.BindPFlag("db.encoding", flags.Lookup("encoding"))
	_ = st.v.BindPFlag("db.eol", flags.Lookup("eol"))
	_ = st.v.BindPFlag("verbose", flags.Lookup("verbose"))

	root.AddCommand(initCmd(st), runCmd(st))
	return root
}

// open loads the address book. Errors here abort startup.
func (st *state) open() (*app.App, error) {
	a, err := app.New(st.cfg, st.log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	st.log.Debug("database opened", zap.String("path", st.cfg.DB.Path))
	return a, nil
}
