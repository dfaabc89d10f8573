// Package mmfile provides platform-specific helpers for loading dump input.
package mmfile

import (
	"os"

	"github.com/joshuapare/hexkit/pkg/types"
)

func noop() error { return nil }

// readAll loads path into memory when mapping is unavailable or unsuitable.
func readAll(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noop, types.Wrap(types.ErrRead, path, err)
	}
	return data, noop, nil
}
