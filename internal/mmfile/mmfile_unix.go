//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/hexkit/pkg/types"
)

// Map maps the file at path read-only and returns its contents with a
// cleanup function that unmaps it. Files that cannot be mapped (pipes,
// devices, procfs entries) are read into memory instead.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, types.Wrap(types.ErrRead, path, err)
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, types.Wrap(types.ErrRead, path, err)
	}
	if !info.Mode().IsRegular() {
		return readAll(path)
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, types.Wrap(types.ErrCapacityExceeded,
			fmt.Sprintf("file too large to map (%d bytes)", size), nil)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, types.Wrap(types.ErrRead, path, err)
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
