package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/cmd/hexctl/logger"
	"github.com/joshuapare/hexkit/internal/buf"
	"github.com/joshuapare/hexkit/internal/mmfile"
	"github.com/joshuapare/hexkit/pkg/hexdump"
	"github.com/joshuapare/hexkit/pkg/types"
)

var (
	dumpLayout  layoutFlags
	dumpOffset  int
	dumpLength  int
	dumpCompact bool
)

func init() {
	cmd := newDumpCmd()
	dumpLayout.register(cmd)
	cmd.Flags().IntVar(&dumpOffset, "offset", 0, "Start dumping at this byte offset")
	cmd.Flags().IntVarP(&dumpLength, "length", "n", -1, "Number of bytes to dump (-1 = to end)")
	cmd.Flags().BoolVar(&dumpCompact, "compact", false, "Omit the banner")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file|->",
		Short: "Hex dump a file or standard input",
		Long: `The dump command renders a file as uppercase hex pairs with an ASCII gutter.
Use "-" to read standard input.

Example:
  hexctl dump firmware.bin
  hexctl dump firmware.bin --offset 512 --length 64 --width 8
  hexctl dump firmware.bin --no-ascii --indent 4
  hexctl dump firmware.bin --wide --bom > dump.txt
  cat blob | hexctl dump - --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	printVerbose("Reading: %s\n", path)

	data, cleanup, err := load(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("unmap failed", "path", path, "error", err)
		}
	}()

	window, ok := buf.Clamp(data, dumpOffset, dumpLength)
	if !ok {
		return types.Wrap(types.ErrInvalidArgument,
			fmt.Sprintf("offset %d outside input of %d bytes", dumpOffset, len(data)), nil)
	}

	return emitDump(path, dumpOffset, window, &dumpLayout, dumpCompact)
}

// load returns the contents of path, or of standard input for "-".
func load(path string) ([]byte, func() error, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, types.Wrap(types.ErrRead, "stdin", err)
		}
		return data, func() error { return nil }, nil
	}
	return mmfile.Map(path)
}

// dumpResult is the JSON form of a rendered dump.
type dumpResult struct {
	Source string `json:"source"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Lines  int    `json:"lines"`
	Wide   bool   `json:"wide"`
	Dump   string `json:"dump"`
}

// emitDump renders window and writes it to stdout in the selected format.
func emitDump(source string, offset int, window []byte, layout *layoutFlags, compact bool) error {
	opts := layout.options()

	if layout.wide {
		d, err := hexdump.NewWide(window, opts)
		if err != nil {
			return fmt.Errorf("failed to render dump: %w", err)
		}
		defer d.Release()
		logRendered(source, len(window), d.Lines(), d.OnHeap(), true)

		if jsonOut {
			return printJSON(resultOf(source, offset, d.Lines(), len(window), true, d.String()))
		}
		if quiet {
			return nil
		}
		out, err := d.UTF16LE(layout.bom)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	d, err := hexdump.NewNarrow(window, opts)
	if err != nil {
		return fmt.Errorf("failed to render dump: %w", err)
	}
	defer d.Release()
	logRendered(source, len(window), d.Lines(), d.OnHeap(), false)

	if jsonOut {
		return printJSON(resultOf(source, offset, d.Lines(), len(window), false, d.String()))
	}

	if !compact {
		title := fmt.Sprintf("Hex Dump: %s (%d bytes at offset %d)", source, len(window), offset)
		printInfo("%s\n", banner(title, d.LineSize()-1))
	}
	if d.Len() > 0 {
		printInfo("%s\n", d.String())
	}
	return nil
}

func resultOf(source string, offset, lines, length int, wide bool, dump string) dumpResult {
	return dumpResult{
		Source: source,
		Offset: offset,
		Length: length,
		Lines:  lines,
		Wide:   wide,
		Dump:   dump,
	}
}

func logRendered(source string, n, lines int, heap, wide bool) {
	logger.Debug("rendered dump",
		"source", source,
		"bytes", n,
		"lines", lines,
		"heap", heap,
		"wide", wide,
	)
}
