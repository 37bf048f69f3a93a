package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error satisfies it.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured metadata, as zerr.Error does.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

const (
	mainIndent  = "       "
	causeIndent = "      "
)

// collectErrorEntries walks the error chain. zerr layers contribute their own message and
// metadata; the first standard error contributes its full message and ends the walk.
// Layers without a message only carry metadata, which is folded into the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var carried map[string]any

	for current := err; current != nil; {
		if kind, cause, ok := splitKind(current); ok {
			entries = append(entries, ErrorEntry{Message: kind.Message(), Metadata: carried})
			carried = nil
			current = cause
			continue
		}

		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: carried})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			carried = mergeMetadata(carried, meta)
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: mergeMetadata(carried, meta)})
		carried = nil
		current = errors.Unwrap(current)
	}

	return entries
}

// splitKind recognises errors built as fmt.Errorf("%w: %w", sentinel, cause),
// where sentinel is a message-only zerr error naming the failure kind.
func splitKind(err error) (messager, error, bool) {
	multi, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil, nil, false
	}
	errs := multi.Unwrap()
	if len(errs) != 2 || errors.Unwrap(errs[0]) != nil {
		return nil, nil, false
	}
	kind, ok := errs[0].(messager)
	if !ok {
		return nil, nil, false
	}
	return kind, errs[1], true
}

func mergeMetadata(into, from map[string]any) map[string]any {
	if into == nil {
		return from
	}
	for k, v := range from {
		into[k] = v
	}
	return into
}

// formatErrorEntries renders entries as a main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		prefix, indent := "Error: ", mainIndent
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			prefix, indent = "    → ", causeIndent
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
