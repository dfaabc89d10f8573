//go:build windows

package mmfile

// Map reads the entire file into memory.
func Map(path string) ([]byte, func() error, error) {
	return readAll(path)
}
