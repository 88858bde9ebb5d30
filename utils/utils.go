package utils

import (
	"io"
	"os"
	"strings"
)

func MergeStrings(lines ...string) string {
	prunedLines := []string{}
	for _, line := range lines {
		if line != "" {
			prunedLines = append(prunedLines, line)
		}
	}

	return strings.Join(prunedLines, "\n")
}

func OrStr(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return []byte{}, nil
	}

	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
