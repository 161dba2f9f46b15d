package commands

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type syncCountingCore struct {
	zapcore.Core
	syncs int
}

func (c *syncCountingCore) Sync() error {
	c.syncs++
	return c.Core.Sync()
}

func newTestState(core *syncCountingCore) *state {
	st := newState()
	st.newLogger = func(bool) (*zap.Logger, error) { return zap.New(core), nil }
	return st
}

func TestExecute_SyncsLoggerWhenStartupFails(t *testing.T) {
	core := &syncCountingCore{Core: zapcore.NewNopCore()}
	st := newTestState(core)
	root := newRootCommand(st)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--db", filepath.Join(t.TempDir(), "missing.txt"), "run", "all"})

	require.Error(t, execute(root, st))
	assert.Equal(t, 1, core.syncs)
}

func TestExecute_SyncsLoggerOnSuccess(t *testing.T) {
	core := &syncCountingCore{Core: zapcore.NewNopCore()}
	st := newTestState(core)
	root := newRootCommand(st)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--db", filepath.Join(t.TempDir(), "database.txt"), "init"})

	require.NoError(t, execute(root, st))
	assert.Equal(t, 1, core.syncs)
}
