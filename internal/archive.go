package internal

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// macOSResourceForkDir is the metadata directory macOS Finder adds when
// zipping; it can contain a shadow copy of conversations.json.
const macOSResourceForkDir = "__MACOSX"

// RawArchive holds the located conversation log before schema dispatch.
type RawArchive struct {
	// Path of the archive on disk (may be a display name for in-memory
	// archives). Used for provider filename fallback and error messages.
	Path string
	// EntryName is the path of the conversations.json entry inside the
	// zip, also consulted by the provider filename fallback.
	EntryName string
	// Conversations is the parsed JSON document, normally an array.
	Conversations json.RawMessage
}

// ReadArchive opens a zip export from disk and extracts its
// conversations.json document.
func ReadArchive(path string) (*RawArchive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CorruptArchiveError{Path: path, Err: err}
	}
	return ReadArchiveBytes(data, path)
}

// ReadArchiveBytes extracts conversations.json from an in-memory zip
// blob. name is used for error reporting and filename-based provider
// detection.
func ReadArchiveBytes(data []byte, name string) (*RawArchive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &CorruptArchiveError{Path: name, Err: err}
	}

	entry := findConversationsEntry(zr)
	if entry == nil {
		return nil, &MissingConversationsError{Path: name}
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, &CorruptArchiveError{Path: name, Err: err}
	}
	defer func() { _ = rc.Close() }()

	contents, err := io.ReadAll(rc)
	if err != nil {
		return nil, &CorruptArchiveError{Path: name, Err: err}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(contents, &raw); err != nil {
		return nil, &InvalidJSONError{Path: entry.Name, Err: err}
	}

	return &RawArchive{
		Path:          name,
		EntryName:     entry.Name,
		Conversations: raw,
	}, nil
}

// findConversationsEntry locates the conversation log inside the zip:
// an exact root-level conversations.json wins, otherwise the first
// entry whose path ends with conversations.json outside the macOS
// resource-fork directory.
func findConversationsEntry(zr *zip.Reader) *zip.File {
	var fallback *zip.File
	for _, f := range zr.File {
		if f.Name == "conversations.json" {
			return f
		}
		if fallback == nil &&
			strings.HasSuffix(f.Name, "conversations.json") &&
			!strings.Contains(f.Name, macOSResourceForkDir) {
			fallback = f
		}
	}
	return fallback
}
