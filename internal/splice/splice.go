// Package splice replaces the region between two marker strings of a text document.
package splice

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrMarkerNotFound is returned when the start or end marker is absent.
	ErrMarkerNotFound = errors.New("marker not found")
	// ErrMarkerOrder is returned when the end marker does not follow the start marker.
	ErrMarkerOrder = errors.New("end marker does not follow start marker")
	// ErrMarkerInContent is returned when the new content contains a marker,
	// which would make the next run find the wrong region.
	ErrMarkerInContent = errors.New("content contains a marker")
	// ErrDocumentNotFound is returned when no candidate document exists.
	ErrDocumentNotFound = errors.New("document not found")
)

// Splice returns doc with everything strictly between the first start marker
// and the first end marker replaced by content on its own lines:
//
//	<start>\n<content>\n<end>
//
// Text outside the markers is returned unchanged. The result depends only on
// doc outside the region and on content, so repeated runs are idempotent.
func Splice(doc, start, end, content string) (string, error) {
	startIdx := strings.Index(doc, start)
	if startIdx < 0 {
		return "", fmt.Errorf("%w: start marker %q", ErrMarkerNotFound, start)
	}
	endIdx := strings.Index(doc, end)
	if endIdx < 0 {
		return "", fmt.Errorf("%w: end marker %q", ErrMarkerNotFound, end)
	}
	regionStart := startIdx + len(start)
	if endIdx < regionStart {
		return "", fmt.Errorf("%w: start at byte %d, end at byte %d", ErrMarkerOrder, startIdx, endIdx)
	}
	if strings.Contains(content, start) || strings.Contains(content, end) {
		return "", ErrMarkerInContent
	}

	var b strings.Builder
	b.Grow(len(doc) + len(content))
	b.WriteString(doc[:regionStart])
	b.WriteByte('\n')
	if trimmed := strings.Trim(content, "\n"); trimmed != "" {
		b.WriteString(trimmed)
		b.WriteByte('\n')
	}
	b.WriteString(doc[endIdx:])
	return b.String(), nil
}

// File splices content into the document at path. The file is rewritten,
// keeping its permissions, only when the result differs. It reports whether
// the file changed. On any error the file is left untouched.
func File(path, start, end, content string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	current, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	updated, err := Splice(string(current), start, end, content)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	if bytes.Equal(current, []byte(updated)) {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

// FindDocument returns path when set, otherwise the first of candidates that exists.
func FindDocument(path string, candidates ...string) (string, error) {
	if path != "" {
		return path, nil
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: none of %s exists", ErrDocumentNotFound, strings.Join(candidates, ", "))
}
