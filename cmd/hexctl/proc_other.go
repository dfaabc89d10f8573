//go:build !linux

package main

import "github.com/joshuapare/hexkit/pkg/types"

func readableRegions(int) ([]region, error) {
	return nil, types.Wrap(types.ErrUnsupported, "process memory requires Linux", nil)
}

func readMemory(int, uintptr, int) ([]byte, error) {
	return nil, types.Wrap(types.ErrUnsupported, "process memory requires Linux", nil)
}
