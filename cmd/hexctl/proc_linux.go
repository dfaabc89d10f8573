//go:build linux

package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/prometheus/procfs"

	"github.com/joshuapare/hexkit/pkg/types"
)

// procRoot is the procfs mount point; tests may point it elsewhere.
var procRoot = procfs.DefaultMountPoint

func readableRegions(pid int) ([]region, error) {
	fs, err := procfs.NewFS(procRoot)
	if err != nil {
		return nil, types.Wrap(types.ErrRead, "procfs", err)
	}
	p, err := fs.Proc(pid)
	if err != nil {
		return nil, types.Wrap(types.ErrRead, "pid "+strconv.Itoa(pid), err)
	}
	maps, err := p.ProcMaps()
	if err != nil {
		return nil, types.Wrap(types.ErrRead, "maps", err)
	}

	regions := make([]region, 0, len(maps))
	for _, m := range maps {
		if m.Perms == nil || !m.Perms.Read {
			continue
		}
		regions = append(regions, region{
			Start:  m.StartAddr,
			End:    m.EndAddr,
			Perms:  permString(m.Perms),
			Offset: m.Offset,
			Path:   m.Pathname,
		})
	}
	return regions, nil
}

func permString(p *procfs.ProcMapPermissions) string {
	b := []byte("----")
	if p.Read {
		b[0] = 'r'
	}
	if p.Write {
		b[1] = 'w'
	}
	if p.Execute {
		b[2] = 'x'
	}
	switch {
	case p.Shared:
		b[3] = 's'
	case p.Private:
		b[3] = 'p'
	}
	return string(b)
}

// readMemory reads up to n bytes at addr from /proc/<pid>/mem.
func readMemory(pid int, addr uintptr, n int) ([]byte, error) {
	f, err := os.Open(filepath.Join(procRoot, strconv.Itoa(pid), "mem"))
	if err != nil {
		return nil, types.Wrap(types.ErrRead, "mem", err)
	}
	defer f.Close()

	data := make([]byte, n)
	read, err := f.ReadAt(data, int64(addr))
	if err != nil && read == 0 {
		return nil, types.Wrap(types.ErrRead, "mem", err)
	}
	return data[:read], nil
}
