package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeflow/pipenet"
)

var lifeSupport = filepath.Join("..", "..", "level", "testdata", "life_support.yaml")

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseFlags([]string{"-level", "x.yaml", "-rotate", " a, b,,b ", "-expect", "Oxygen", "-v"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, config{level: "x.yaml", rotate: []string{"a", "b", "b"}, expect: "Oxygen", verbose: true}, cfg)

	_, err = parseFlags(nil, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "-level")
}

func TestRun(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config
		output string
		err    error
	}{
		{"Unsolved", config{level: lifeSupport}, "output: None\n", nil},
		{"Solved", config{level: lifeSupport, rotate: []string{"a", "d"}, expect: "Oxygen"}, "output: Oxygen\n", nil},
		{"Mismatch", config{level: lifeSupport, rotate: []string{"a", "d", "d"}, expect: "Oxygen"}, "output: Fire\n", errMismatch},
		{"UnknownTile", config{level: lifeSupport, rotate: []string{"zz"}}, "", pipenet.ErrTileNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tc.cfg, &stdout, &stderr)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.output, stdout.String())
			assert.Contains(t, stderr.String(), "level loaded")
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(config{level: lifeSupport, rotate: []string{"a"}, verbose: true}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "oxygen")
	assert.Contains(t, stdout.String(), "gas=Oxygen")
	assert.Contains(t, stderr.String(), `msg="pipe tile rotated" tile=a`)
}

func TestRun_BadExpect(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(config{level: lifeSupport, expect: "Helium"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-expect")
}
