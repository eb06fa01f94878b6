package textio

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadText reads all of r and joins its lines with no separator: every
// '\n' is dropped and nothing is put in its place.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return strings.ReplaceAll(string(data), "\n", ""), nil
}

// ReadFile is ReadText over the file at path.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open input %q: %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	text, err := ReadText(f)
	if err != nil {
		return "", fmt.Errorf("failed to read input %q: %w", path, err)
	}
	return text, nil
}
