package commands

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestExecuteFallback(t *testing.T) {
	r := NewRegistry("run")
	fs := newFlagSet("run")
	depth := fs.Int("depth", 3, "")
	ran := false
	r.Register("run", "start the viewer", fs, func() error { ran = true; return nil })

	require.NoError(t, r.Execute([]string{"-depth", "5"}))
	assert.True(t, ran)
	assert.Equal(t, 5, *depth)

	ran = false
	require.NoError(t, r.Execute(nil))
	assert.True(t, ran)
}

func TestExecuteNamed(t *testing.T) {
	r := NewRegistry("run")
	r.Register("run", "", newFlagSet("run"), func() error { return errors.New("wrong command") })
	fs := newFlagSet("config")
	write := fs.String("write", "", "")
	r.Register("config", "", fs, func() error { return nil })

	require.NoError(t, r.Execute([]string{"config", "-write", "out.yaml"}))
	assert.Equal(t, "out.yaml", *write)
	assert.Equal(t, []string{"config", "run"}, r.Names())
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry("run")
	boom := errors.New("boom")
	r.Register("run", "", newFlagSet("run"), func() error { return boom })

	err := r.Execute([]string{"dance"})
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), "dance")

	assert.ErrorIs(t, r.Execute(nil), boom)
	assert.Error(t, r.Execute([]string{"-nope"}), "unknown flag")
}

func TestSplit(t *testing.T) {
	r := NewRegistry("run")
	name, rest := r.Split([]string{"config", "-write", "x"})
	assert.Equal(t, "config", name)
	assert.Equal(t, []string{"-write", "x"}, rest)

	name, rest = r.Split([]string{"-depth", "2"})
	assert.Equal(t, "run", name)
	assert.Equal(t, []string{"-depth", "2"}, rest)
}
