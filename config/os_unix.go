//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName removes characters not allowed in file names.
func CleanFileName(in string) string {
	var sb strings.Builder
	for _, sym := range in {
		if strings.ContainsRune(string(os.PathSeparator)+string(os.PathListSeparator), sym) {
			continue
		}
		sb.WriteRune(sym)
	}
	out := strings.TrimLeft(sb.String(), ".")
	if len(out) == 0 {
		return "_bad_file_name_"
	}
	return out
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
