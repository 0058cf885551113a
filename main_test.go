package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	for _, sub := range []string{"serve", "migrate", "seed"} {
		assert.Contains(t, output, sub, "Help missing %q command", sub)
	}
	assert.Contains(t, output, "--auto-migrate")
}

func TestMigrateCommand_RejectsUnknownAction(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"migrate", "sideways"})

	assert.Error(t, cmd.Execute())
}

type fakeMigrator struct {
	calls   []string
	version uint
	err     error
}

func (f *fakeMigrator) Up() error   { f.calls = append(f.calls, "up"); return f.err }
func (f *fakeMigrator) Down() error { f.calls = append(f.calls, "down"); return f.err }
func (f *fakeMigrator) Version() (uint, bool, error) {
	f.calls = append(f.calls, "version")
	return f.version, false, f.err
}

func TestRunMigrateAction(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{"up", "Migrations completed successfully"},
		{"down", "Rollback completed"},
		{"version", "version=1 dirty=false"},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			f := &fakeMigrator{version: 1}
			cmd := NewMigrateCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)

			require.NoError(t, runMigrateAction(cmd, f, tt.action))
			assert.Equal(t, []string{tt.action}, f.calls)
			assert.Contains(t, buf.String(), tt.want)
		})
	}

	t.Run("error is returned", func(t *testing.T) {
		f := &fakeMigrator{err: errors.New("dirty database")}
		cmd := NewMigrateCmd()
		cmd.SetOut(new(bytes.Buffer))
		assert.Error(t, runMigrateAction(cmd, f, "up"))
	})
}
