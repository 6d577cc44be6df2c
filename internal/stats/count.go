// Package stats classifies files as line-counted text or typed binary
package stats

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// UnknownType is the sentinel used when no media type can be guessed.
// With the content-sniff fallback in place it is reached only for
// extensionless entries with no readable content: directories, missing
// files and empty files.
const UnknownType = "unknown file type"

// sniffLen bounds the number of bytes fed to content-type detection.
const sniffLen = 512

// Count is the tagged result of inspecting a file: either a number of lines
// (text variant) or a guessed media type (type variant). Exactly one
// variant is populated.
type Count struct {
	Lines    int64
	TypeName string
}

// IsText reports whether the count holds the line-count variant.
func (c Count) IsText() bool {
	return c.TypeName == ""
}

// CountLines reads the file at path and returns its line count when the
// content is valid UTF-8 text. Otherwise (unreadable, a directory, or not
// text) it returns the type variant with a guessed media type. It never
// fails; every error collapses into the type fallback.
func CountLines(path string) Count {
	data, err := os.ReadFile(path)
	if err != nil || !utf8.Valid(data) {
		return Count{TypeName: guessType(path, data)}
	}
	return Count{Lines: countRecords(data)}
}

// countRecords counts lines the way line iteration does: every newline
// terminates a record, and a trailing unterminated record still counts.
func countRecords(data []byte) int64 {
	if len(data) == 0 {
		return 0
	}
	n := int64(bytes.Count(data, []byte{'\n'}))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// guessType guesses a media type from the filename extension, falling back
// to content sniffing when the extension is unhelpful and some content was
// readable.
func guessType(path string, data []byte) string {
	if mediaType := mime.TypeByExtension(filepath.Ext(path)); mediaType != "" {
		return mediaType
	}
	if len(data) > 0 {
		if len(data) > sniffLen {
			data = data[:sniffLen]
		}
		return http.DetectContentType(data)
	}
	if sniffed := sniffFile(path); sniffed != "" {
		return sniffed
	}
	return UnknownType
}

// sniffFile reads up to sniffLen bytes from path for content-type
// detection. An unreadable or empty file yields "".
func sniffFile(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}

	fileHandle, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer fileHandle.Close()

	buffer := make([]byte, sniffLen)
	bytesRead, readErr := fileHandle.Read(buffer)
	if (readErr != nil && readErr != io.EOF) || bytesRead == 0 {
		return ""
	}
	return http.DetectContentType(buffer[:bytesRead])
}
