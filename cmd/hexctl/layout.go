package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/pkg/hexdump"
)

// layoutFlags holds the dump layout options shared by dump and proc.
type layoutFlags struct {
	indent  int
	width   int
	noASCII bool
	wide    bool
	bom     bool
}

func (l *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&l.indent, "indent", hexdump.DefaultIndent, "Spaces before each line")
	cmd.Flags().
		IntVarP(&l.width, "width", "w", hexdump.DefaultBytesPerLine, "Bytes shown per line")
	cmd.Flags().BoolVar(&l.noASCII, "no-ascii", false, "Omit the ASCII gutter")
	cmd.Flags().BoolVar(&l.wide, "wide", false, "Write the dump as UTF-16LE")
	cmd.Flags().BoolVar(&l.bom, "bom", false, "Prefix UTF-16LE output with a byte order mark")
}

func (l *layoutFlags) options() hexdump.Options {
	return hexdump.Options{
		Indent:       l.indent,
		BytesPerLine: l.width,
		ShowASCII:    !l.noASCII,
	}
}
