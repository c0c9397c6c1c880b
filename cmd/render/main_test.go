package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderFlags(t *testing.T) {
	newRenderFlagsTests := []struct {
		name    string
		osArgs  []string
		want    renderFlags
		wantErr bool
	}{
		{
			name:   "defaults",
			osArgs: []string{"render"},
			want:   renderFlags{in: "-", out: "-", width: 800, height: 600, background: "white"},
		},
		{
			name:   "no args",
			want:   renderFlags{in: "-", out: "-", width: 800, height: 600, background: "white"},
		},
		{
			name:   "all",
			osArgs: []string{"render", "-in=a.json", "-out=b.png", "-width=40", "-height=30", "-background=#000"},
			want:   renderFlags{in: "a.json", out: "b.png", width: 40, height: 30, background: "#000"},
		},
		{
			name:    "zero width",
			osArgs:  []string{"render", "-width=0"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			osArgs:  []string{"render", "-depth=3"},
			wantErr: true,
		},
	}
	for _, test := range newRenderFlagsTests {
		t.Run(test.name, func(t *testing.T) {
			got, err := newRenderFlags(test.osArgs, io.Discard)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, *got)
		})
	}
}

func TestRunStdio(t *testing.T) {
	f := renderFlags{in: "-", out: "-", width: 100, height: 50, background: "black"}
	stdin := strings.NewReader(`{"shapes":[{"x":25,"y":25,"radius":10,"color":"rgb(255, 0, 0)"},{"x":75,"y":25,"radius":10,"color":"#00ff00"}]}`)
	var stdout bytes.Buffer
	var logBuf bytes.Buffer
	err := f.run(stdin, &stdout, log.New(&logBuf, "", 0))
	require.NoError(t, err)
	img, err := png.Decode(&stdout)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())
	assertColor(t, color.RGBA{255, 0, 0, 255}, img.At(25, 25), "first shape")
	assertColor(t, color.RGBA{0, 255, 0, 255}, img.At(75, 25), "second shape")
	assertColor(t, color.RGBA{0, 0, 0, 255}, img.At(50, 45), "background")
	assert.Empty(t, logBuf.String(), "nothing is logged when writing to standard output")
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "state.json")
	out := filepath.Join(dir, "state.png")
	require.NoError(t, os.WriteFile(in, []byte(`{"shapes":[]}`), 0600))
	f := renderFlags{in: in, out: out, width: 10, height: 10, background: "transparent"}
	var logBuf bytes.Buffer
	require.NoError(t, f.run(nil, nil, log.New(&logBuf, "", 0)))
	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assertColor(t, color.RGBA{}, img.At(5, 5), "transparent background")
	assert.Contains(t, logBuf.String(), "wrote 0 shapes")
}

func TestRunErrors(t *testing.T) {
	runErrorTests := []struct {
		name  string
		f     renderFlags
		stdin string
	}{
		{
			name:  "invalid json",
			f:     renderFlags{in: "-", out: "-", width: 10, height: 10, background: "white"},
			stdin: "{",
		},
		{
			name:  "negative radius",
			f:     renderFlags{in: "-", out: "-", width: 10, height: 10, background: "white"},
			stdin: `{"shapes":[{"x":1,"y":1,"radius":-1,"color":"red"}]}`,
		},
		{
			name:  "invalid background",
			f:     renderFlags{in: "-", out: "-", width: 10, height: 10, background: "not-a-color"},
			stdin: `{"shapes":[]}`,
		},
		{
			name: "missing input file",
			f:    renderFlags{in: filepath.Join(t.TempDir(), "missing.json"), out: "-", width: 10, height: 10, background: "white"},
		},
	}
	for _, test := range runErrorTests {
		t.Run(test.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := test.f.run(strings.NewReader(test.stdin), &stdout, log.New(io.Discard, "", 0))
			assert.Error(t, err)
			assert.Zero(t, stdout.Len(), "nothing is written on failure")
		})
	}
}

func assertColor(t *testing.T, want color.RGBA, got color.Color, msgAndArgs ...interface{}) {
	t.Helper()
	r, g, b, a := got.RGBA()
	gotRGBA := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	assert.Equal(t, want, gotRGBA, msgAndArgs...)
}
