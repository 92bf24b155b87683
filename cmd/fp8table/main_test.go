package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avdva/fp8/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterFor(t *testing.T) {
	a := assert.New(t)
	tbl, err := table.Build(context.Background())
	require.NoError(t, err)
	for _, format := range []string{formatText, formatCSV, formatJSON, formatPlot} {
		write, err := writerFor(format)
		if !a.NoError(err, format) {
			continue
		}
		var buf bytes.Buffer
		a.NoError(write(tbl, &buf), format)
		a.NotEmpty(buf.String(), format)
	}
	_, err = writerFor("png")
	a.EqualError(err, "unsupported format 'png'")
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	dir, err := os.MkdirTemp("", "fp8table")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	output := filepath.Join(dir, "table.csv")
	require.NoError(t, run(context.Background(), optionFlags{format: formatCSV, output: output, quiet: true}))
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	a.Len(lines, table.Size+1)
	a.Equal("120,01111000,0,15,0,infinite,infinity,+Inf", lines[121])

	a.Error(run(context.Background(), optionFlags{format: "svg", output: output, quiet: true}))
	a.Error(run(context.Background(), optionFlags{format: formatCSV, output: filepath.Join(dir, "missing", "x.csv"), quiet: true}))
}

type closeBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closeBuffer) Close() error {
	b.closed = true
	return nil
}

func redirectOutput(t *testing.T) (out *closeBuffer, errOut *bytes.Buffer) {
	oldOut, oldErr := stdout, stderr
	out, errOut = &closeBuffer{}, &bytes.Buffer{}
	stdout, stderr = out, errOut
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
	})
	return out, errOut
}

func TestRunStdout(t *testing.T) {
	a := assert.New(t)
	out, errOut := redirectOutput(t)

	require.NoError(t, run(context.Background(), optionFlags{format: formatPlot}))
	a.True(out.closed)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	a.Len(lines, table.Size+1)
	a.Equal("x,y,marker", lines[0])
	a.Contains(errOut.String(), "[ fp8table - 1-4-3 minifloat table ]")
	a.Contains(errOut.String(), "version: ")
}

func TestRunQuiet(t *testing.T) {
	a := assert.New(t)
	out, errOut := redirectOutput(t)

	require.NoError(t, run(context.Background(), optionFlags{format: formatText, quiet: true}))
	a.Empty(errOut.String())
	a.True(strings.HasPrefix(out.String(), "BITS"))
}
