package teardown

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "killnode.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestExecRunner_PassesHost(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "calls.log")
	script := writeScript(t, `echo "$#:$1" >> "`+logFile+`"`)

	r := &ExecRunner{Script: script, Timeout: 5 * time.Second}
	for _, h := range []string{"a", "b"} {
		code, err := r.Run(context.Background(), h)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	}

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"1:a", "1:b"}, strings.Fields(string(data)))
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	script := writeScript(t, `exit 3`)

	code, err := (&ExecRunner{Script: script, Timeout: 5 * time.Second}).Run(context.Background(), "node")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestExecRunner_Timeout(t *testing.T) {
	script := writeScript(t, `exec sleep 5`)

	start := time.Now()
	code, err := (&ExecRunner{Script: script, Timeout: 100 * time.Millisecond}).Run(context.Background(), "node")
	assert.ErrorIs(t, err, ErrCommandTimeout)
	assert.Equal(t, -1, code)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestExecRunner_MissingScript(t *testing.T) {
	code, err := (&ExecRunner{Script: filepath.Join(t.TempDir(), "missing.sh")}).Run(context.Background(), "node")
	assert.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestSweep_CancelledDoesNotInvokeScript(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "calls.log")
	script := writeScript(t, `echo "$1" >> "`+logFile+`"`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	r := &ExecRunner{Script: script, Timeout: 5 * time.Second}
	results := NewController(r, zap.NewNop(), &out).Sweep(ctx, []string{"a", "b"})

	require.Len(t, results, 2)
	assert.True(t, results[0].Skipped)
	assert.True(t, results[1].Skipped)
	assert.NotContains(t, out.String(), "Issued kill command")
	assert.NoFileExists(t, logFile)
}
