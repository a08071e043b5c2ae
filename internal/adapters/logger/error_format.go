package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager matches zerr.Error, which reports its own message without the chain.
type messager interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of zerr errors. The first non-zerr error
// ends the walk with its full message. Links without a message only carry
// metadata; it is merged into the link above them, or into the first link
// when there is none above.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	pending := map[string]any{}
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: take(pending)})
			break
		}

		switch {
		case m.Message() != "":
			meta := m.Metadata()
			for k, v := range take(pending) {
				meta[k] = v
			}
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		case len(entries) > 0:
			last := &entries[len(entries)-1]
			for k, v := range m.Metadata() {
				last.Metadata[k] = v
			}
		default:
			for k, v := range m.Metadata() {
				pending[k] = v
			}
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// take returns m, or nil when it is empty, and resets the caller's map.
func take(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
		delete(m, k)
	}
	return out
}

// formatErrorEntries renders entries as a headline followed by an indented
// "Caused by" list. Metadata keys are sorted.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		prefix, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			prefix, indent = "    → ", "      "
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
