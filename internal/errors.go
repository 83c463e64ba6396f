package internal

import "fmt"

// MissingConversationsError indicates the archive does not contain a
// conversations.json file anywhere.
type MissingConversationsError struct {
	Path string
}

func (e *MissingConversationsError) Error() string {
	return fmt.Sprintf("no conversations.json found in archive %s", e.Path)
}

// CorruptArchiveError indicates the zip container could not be opened
// (truncated file, unsupported compression).
type CorruptArchiveError struct {
	Path string
	Err  error
}

func (e *CorruptArchiveError) Error() string {
	return fmt.Sprintf("cannot open archive %s: %v", e.Path, e.Err)
}

func (e *CorruptArchiveError) Unwrap() error {
	return e.Err
}

// InvalidJSONError indicates conversations.json was located but its
// contents do not parse as JSON.
type InvalidJSONError struct {
	Path string
	Err  error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *InvalidJSONError) Unwrap() error {
	return e.Err
}

// StructureError indicates the JSON parsed but does not match the
// minimal shape either export schema requires, or no conversation in
// the file could be normalized.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid session structure: %s", e.Reason)
}

// AmbiguousProviderError indicates neither the content shape nor the
// filename identified the export's provider. Callers should prompt for
// an explicit provider choice rather than report corruption.
type AmbiguousProviderError struct {
	Path string
}

func (e *AmbiguousProviderError) Error() string {
	return fmt.Sprintf("could not determine export provider for %s; pass one explicitly", e.Path)
}
