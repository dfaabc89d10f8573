package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/pkg/types"
)

var (
	procLayout  layoutFlags
	procAddr    string
	procLength  int
	procCompact bool
)

// region is one readable mapping of a process address space.
type region struct {
	Start  uintptr `json:"start"`
	End    uintptr `json:"end"`
	Perms  string  `json:"perms"`
	Offset int64   `json:"offset"`
	Path   string  `json:"path,omitempty"`
}

func (r region) contains(addr uintptr) bool { return addr >= r.Start && addr < r.End }

func init() {
	cmd := newProcCmd()
	procLayout.register(cmd)
	cmd.Flags().StringVar(&procAddr, "addr", "", "Address to dump (hex with 0x prefix or decimal)")
	cmd.Flags().IntVarP(&procLength, "length", "n", 256, "Number of bytes to dump")
	cmd.Flags().BoolVar(&procCompact, "compact", false, "Omit the banner")
	rootCmd.AddCommand(cmd)
}

func newProcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proc <pid>",
		Short: "List or dump readable memory of a process",
		Long: `The proc command lists the readable memory mappings of a process, or with
--addr dumps memory starting at that address. The dump is clamped to the end
of the mapping containing the address. Linux only.

Example:
  hexctl proc 4242
  hexctl proc 4242 --addr 0x55d0c8a00000 --length 128
  hexctl proc 4242 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProc(args)
		},
	}
	return cmd
}

func runProc(args []string) error {
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid <= 0 {
		return types.Wrap(types.ErrInvalidArgument, fmt.Sprintf("bad pid %q", args[0]), err)
	}

	printVerbose("Reading mappings of pid %d\n", pid)

	regions, err := readableRegions(pid)
	if err != nil {
		return fmt.Errorf("failed to list mappings: %w", err)
	}

	if procAddr == "" {
		return printRegions(pid, regions)
	}

	addr, err := strconv.ParseUint(procAddr, 0, 64)
	if err != nil {
		return types.Wrap(types.ErrInvalidArgument, fmt.Sprintf("bad address %q", procAddr), err)
	}
	if procLength < 0 {
		return types.Wrap(types.ErrInvalidArgument, fmt.Sprintf("negative length %d", procLength), nil)
	}

	r, ok := findRegion(regions, uintptr(addr))
	if !ok {
		return types.Wrap(types.ErrInvalidArgument,
			fmt.Sprintf("address 0x%x is not in a readable mapping", addr), nil)
	}
	n := min(uint64(procLength), uint64(r.End)-addr)

	data, err := readMemory(pid, uintptr(addr), int(n))
	if err != nil {
		return fmt.Errorf("failed to read memory: %w", err)
	}

	source := fmt.Sprintf("pid %d @ 0x%x", pid, addr)
	return emitDump(source, int(addr-uint64(r.Start)), data, &procLayout, procCompact)
}

func findRegion(regions []region, addr uintptr) (region, bool) {
	for _, r := range regions {
		if r.contains(addr) {
			return r, true
		}
	}
	return region{}, false
}

func printRegions(pid int, regions []region) error {
	if jsonOut {
		return printJSON(map[string]interface{}{
			"pid":     pid,
			"regions": regions,
		})
	}
	for _, r := range regions {
		printInfo("%016x-%016x %s %8x %s\n", r.Start, r.End, r.Perms, r.Offset, r.Path)
	}
	return nil
}
