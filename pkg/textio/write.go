package textio

import (
	"fmt"
	"strings"

	"github.com/natefinch/atomic"
)

// Wrap breaks text into lines of width bytes. Every line, including the
// last, ends in '\n'. A width of zero or less returns text unchanged.
func Wrap(text string, width int) string {
	if width <= 0 || text == "" {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/width + 1)
	for len(text) > width {
		sb.WriteString(text[:width])
		sb.WriteByte('\n')
		text = text[width:]
	}
	sb.WriteString(text)
	sb.WriteByte('\n')
	return sb.String()
}

// WriteFile writes text to path atomically: readers see either the old
// file or the complete new one, never a partial write.
func WriteFile(path, text string) error {
	if err := atomic.WriteFile(path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("failed to write output %q: %w", path, err)
	}
	return nil
}
