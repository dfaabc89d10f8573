package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/joshuapare/hexkit/pkg/hexdump"
	"github.com/joshuapare/hexkit/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestDumpCommand(t *testing.T) {
	input := []byte("ABC\x00\x01hello, hexctl\xff")

	tests := []struct {
		name           string
		setup          func()
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "default layout",
			wantContain: []string{"Hex Dump:", "41 42 43 00 01", "ABC..hello, hexc", "74 6C FF"},
		},
		{
			name:           "compact",
			setup:          func() { dumpCompact = true },
			wantContain:    []string{"41 42 43"},
			wantNotContain: []string{"Hex Dump:", "═"},
		},
		{
			name:           "no ascii",
			setup:          func() { dumpLayout.noASCII = true; dumpCompact = true },
			wantContain:    []string{"41 42 43 00 01"},
			wantNotContain: []string{"ABC.."},
		},
		{
			name:           "offset and length",
			setup:          func() { dumpOffset = 5; dumpLength = 5; dumpCompact = true },
			wantContain:    []string{"68 65 6C 6C 6F", "hello"},
			wantNotContain: []string{"41 42 43"},
		},
		{
			name:        "narrow width with indent",
			setup:       func() { dumpLayout.width = 4; dumpLayout.indent = 2; dumpCompact = true },
			wantContain: []string{"  41 42 43 00 ABC.\n  01 68 65 6C"},
		},
		{
			name:        "json",
			setup:       func() { jsonOut = true },
			wantJSON:    true,
			wantContain: []string{`"lines": 2`, `"length": 19`, `"wide": false`},
		},
		{
			name:    "zero width",
			setup:   func() { dumpLayout.width = 0 },
			wantErr: true,
		},
		{
			name:    "offset past end",
			setup:   func() { dumpOffset = 100 },
			wantErr: true,
		},
		{
			name:           "quiet",
			setup:          func() { quiet = true },
			wantNotContain: []string{"41"},
		},
	}

	path := writeInput(t, input)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			if tt.setup != nil {
				tt.setup()
			}

			output, err := captureOutput(t, func() error {
				return runDump([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runDump() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDumpCommand_MatchesLibrary(t *testing.T) {
	resetFlags()
	dumpCompact = true
	input := []byte("the cli prints exactly what the library renders")

	output, err := captureOutput(t, func() error {
		return runDump([]string{writeInput(t, input)})
	})
	require.NoError(t, err)

	want, err := hexdump.Dump(input, hexdump.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, want+"\n", output)
}

func TestDumpCommand_ErrorKinds(t *testing.T) {
	resetFlags()
	dumpLayout.width = 0
	_, err := captureOutput(t, func() error {
		return runDump([]string{writeInput(t, []byte{1})})
	})
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	resetFlags()
	_, err = captureOutput(t, func() error {
		return runDump([]string{"/nonexistent/hexctl-input"})
	})
	require.ErrorIs(t, err, types.ErrRead)
}

func TestDumpCommand_Wide(t *testing.T) {
	resetFlags()
	dumpLayout.wide = true
	dumpLayout.bom = true
	input := []byte{0x41, 0x42}

	output, err := captureOutput(t, func() error {
		return runDump([]string{writeInput(t, input)})
	})
	require.NoError(t, err)
	require.Equal(t, "\xff\xfe", output[:2])

	text, err := hexdump.DecodeUTF16([]byte(output))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "41 42"), "got %q", text)
	require.Contains(t, text, "AB")
}

func TestDumpCommand_WideJSON(t *testing.T) {
	resetFlags()
	dumpLayout.wide = true
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runDump([]string{writeInput(t, []byte("hi"))})
	})
	require.NoError(t, err)

	var res dumpResult
	require.NoError(t, json.Unmarshal([]byte(output), &res))
	require.True(t, res.Wide)
	require.Equal(t, 1, res.Lines)
	require.True(t, strings.HasPrefix(res.Dump, "68 69"))
}

func TestDumpCommand_Stdin(t *testing.T) {
	resetFlags()
	dumpCompact = true

	var output string
	var err error
	withStdin(t, []byte("xyz"), func() {
		output, err = captureOutput(t, func() error {
			return runDump([]string{"-"})
		})
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(output, "78 79 7A"), "got %q", output)
}

func TestDumpCommand_EmptyInput(t *testing.T) {
	resetFlags()
	dumpCompact = true

	output, err := captureOutput(t, func() error {
		return runDump([]string{writeInput(t, nil)})
	})
	require.NoError(t, err)
	require.Empty(t, output)
}
