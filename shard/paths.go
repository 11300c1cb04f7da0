package shard

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileExt is the extension of every generated slot file.
const FileExt = ".json"

// Capacity returns 16^width, the number of addresses a width can name.
func Capacity(width int) int {
	capacity := 1
	for range width {
		capacity *= 16
	}
	return capacity
}

// FormatAddress renders an address as zero-padded lowercase hex of the given
// width.
func FormatAddress(addr, width int) string {
	return fmt.Sprintf("%0*x", width, addr)
}

// FilePath maps an address string onto the output tree. The first depth
// characters each become one single-character directory level; the remaining
// characters plus the JSON extension become the file base name. Depth 0
// places the file directly under baseDir.
func FilePath(baseDir, hexStr string, depth int) string {
	if depth == 0 {
		return filepath.Join(baseDir, hexStr+FileExt)
	}
	parts := make([]string, 0, depth+2)
	parts = append(parts, baseDir)
	for i := range depth {
		parts = append(parts, string(hexStr[i]))
	}
	parts = append(parts, hexStr[depth:]+FileExt)
	return filepath.Join(parts...)
}

// AddressFromPath reverses FilePath: given a slot file's path relative to its
// base directory, it reassembles the address string by concatenating the
// directory levels with the file base name.
func AddressFromPath(relPath string) string {
	relPath = strings.TrimSuffix(relPath, FileExt)
	return strings.ReplaceAll(relPath, string(filepath.Separator), "")
}
