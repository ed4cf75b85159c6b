package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/gaussjordan/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestRun_Sections(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, logging.NewNoOpLogger()))

	text := out.String()
	last := -1
	for _, name := range []string{sectionEchelon, sectionSamples, sectionRandom, sectionInverse} {
		idx := strings.Index(text, section(name))
		require.Greaterf(t, idx, last, "section %q missing or out of order", name)
		last = idx
	}
	require.Equal(t, 4, strings.Count(text, "Matrix:"))
	require.Contains(t, text, "matrix is not square") // the 5x4 sample
	require.Contains(t, text, "random-generated matrix.")
}

func TestRun_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7

	var a, b bytes.Buffer
	require.NoError(t, run(&a, cfg, logging.NewNoOpLogger()))
	require.NoError(t, run(&b, cfg, logging.NewNoOpLogger()))
	require.Equal(t, a.String(), b.String())
}

func TestRun_LogsFailuresAndTiming(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1

	var out, logs bytes.Buffer
	require.NoError(t, run(&out, cfg, logging.NewSlogLogger(logging.LogLevelInfo, "text", &logs)))
	require.Contains(t, logs.String(), "inversion failed")
	require.Contains(t, logs.String(), "program terminated")
	require.Contains(t, logs.String(), "seed=1")
}

var errSink = errors.New("sink closed")

// failAfter accepts n writes, then fails every later one.
type failAfter struct{ n, calls int }

func (f *failAfter) Write(p []byte) (int, error) {
	f.calls++
	if f.calls > f.n {
		return 0, errSink
	}

	return len(p), nil
}

// TestRun_PropagatesWriteErrors fails each write in turn; every one of them
// must abort run with the writer's error.
func TestRun_PropagatesWriteErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 11

	counter := &failAfter{n: math.MaxInt}
	require.NoError(t, run(counter, cfg, logging.NewNoOpLogger()))
	total := counter.calls
	require.Greater(t, total, 0)

	for n := 0; n < total; n++ {
		err := run(&failAfter{n: n}, cfg, logging.NewNoOpLogger())
		require.ErrorIsf(t, err, errSink, "write %d", n)
	}
}

func TestRootCmd_Flags(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"--seed", "3", "--max-dim", "2", "--log-format", "json", "--tolerance", "1e-12"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), section(sectionInverse))
	require.Contains(t, errOut.String(), `"msg":"program terminated"`)
}

func TestRootCmd_RejectsBadConfig(t *testing.T) {
	for _, args := range [][]string{
		{"--max-dim", "0"},
		{"--log-format", "xml"},
		{"--log-level", "loud"},
		{"--tolerance", "-1"},
		{"extra-arg"},
	} {
		var out, errOut bytes.Buffer
		cmd := newRootCmd(&out, &errOut)
		cmd.SetArgs(args)
		require.Error(t, cmd.Execute(), "%v", args)
		require.Empty(t, out.String(), "%v", args)
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Upper = math.Inf(1)
	require.ErrorIs(t, cfg.Validate(), errConfig)

	cfg = DefaultConfig()
	cfg.Tolerance = math.NaN()
	require.ErrorIs(t, cfg.Validate(), errConfig)
}
