package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/audiomark"
	"github.com/yyyoichi/audiomark/wavio"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeClip(t *testing.T, path string, n int, layout audiomark.Layout) {
	t.Helper()
	samples := make([]int, n)
	for i := range samples {
		samples[i] = (i*7919)%4000 - 2000
	}
	require.NoError(t, wavio.WriteFile(path, &wavio.Clip{
		Samples: samples,
		Format:  audiomark.PCM16(layout, 22050),
	}))
}

func TestEmbedExtract(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeClip(t, in, 4000, audiomark.Stereo)

	stdout, err := run(t, "embed", "-i", in, "-o", out, "-m", "ID-42", "--terminator", "--json")
	require.NoError(t, err)
	var es embedSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &es))
	assert.Equal(t, "ID-42", es.Embedded)
	assert.Equal(t, 48, es.MarkBits)
	assert.Equal(t, 48, es.Written)
	assert.False(t, es.Partial)
	assert.Equal(t, "truncate", es.Policy)

	stdout, err = run(t, "extract", "-i", out, "--terminator", "--json")
	require.NoError(t, err)
	var xs extractSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &xs))
	assert.True(t, xs.Detected)
	assert.True(t, xs.Terminated)
	assert.Equal(t, "ID-42", xs.Watermark)
}

func TestEmbedDefaultMark(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeClip(t, in, 1000, audiomark.Mono)

	stdout, err := run(t, "embed", "-i", in, "-o", out, "--cap", "8")
	require.NoError(t, err)
	var es embedSummary
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &es))
	assert.Equal(t, "AUDIO_WM", es.Embedded)
}

func TestDefaultTerminator(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeClip(t, in, 4000, audiomark.Mono)

	_, err := run(t, "embed", "-i", in, "-o", out, "-m", "HI")
	require.NoError(t, err)

	stdout, err := run(t, "extract", "-i", out, "--json")
	require.NoError(t, err)
	var xs extractSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &xs))
	assert.Equal(t, "HI", xs.Watermark)
	assert.True(t, xs.Terminated)
	assert.Equal(t, audiomark.DefaultScanBits, xs.Bits)
}

func TestExtractCycled(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeClip(t, in, 2000, audiomark.Mono)

	_, err := run(t, "embed", "-i", in, "-o", out, "-m", "loop", "--policy", "cycle")
	require.NoError(t, err)

	stdout, err := run(t, "extract", "-i", out, "--policy", "cycle", "--cycled-chars", "4", "--json")
	require.NoError(t, err)
	var xs extractSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &xs))
	assert.True(t, xs.Detected)
	assert.Equal(t, "loop", xs.Watermark)
	assert.False(t, xs.Partial)
	assert.Equal(t, 2000, xs.Bits)

	stdout, err = run(t, "extract", "-i", out, "--policy", "cycle", "--window", "20", "--cycled-chars", "4", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(stdout), &xs))
	assert.Equal(t, "lo", xs.Watermark)
	assert.True(t, xs.Partial)
}

func TestExtractNoWatermark(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "silence.wav")
	require.NoError(t, wavio.WriteFile(in, &wavio.Clip{
		Samples: make([]int, 1000),
		Format:  audiomark.PCM16(audiomark.Mono, 8000),
	}))

	stdout, err := run(t, "extract", "-i", in, "--json")
	require.NoError(t, err)
	var xs extractSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &xs))
	assert.False(t, xs.Detected)
	assert.Equal(t, noWatermark, xs.Watermark)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "in.wav")
	writeClip(t, in, 44100, audiomark.Stereo)

	stdout, err := run(t, "inspect", "-i", in, "--json")
	require.NoError(t, err)
	var is inspectSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &is))
	assert.Equal(t, 44100, is.Samples)
	assert.Equal(t, 22050, is.Frames)
	assert.Equal(t, "1s", is.Duration)
	assert.Equal(t, 100, is.Capacity)
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "in.wav")
	writeClip(t, in, 100, audiomark.Mono)

	test := []struct {
		name string
		args []string
	}{
		{"missing input flag", []string{"extract"}},
		{"missing file", []string{"extract", "-i", filepath.Join(dir, "nope.wav")}},
		{"bad policy", []string{"extract", "-i", in, "--policy", "sideways"}},
		{"cycle with terminator", []string{"embed", "-i", in, "-o", filepath.Join(dir, "o.wav"), "--policy", "cycle", "--terminator"}},
		{"missing config", []string{"inspect", "-i", in, "--config", filepath.Join(dir, "none.yaml")}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
