package internal

import (
	"errors"
	"testing"

	"github.com/iksnae/ai-wrapped/testutil"
)

func TestReadArchiveBytesRootFile(t *testing.T) {
	data := testutil.BuildZip(t, map[string]string{
		"conversations.json": `[{"uuid":"a"}]`,
	})

	archive, err := ReadArchiveBytes(data, "export.zip")
	if err != nil {
		t.Fatalf("ReadArchiveBytes() error = %v", err)
	}
	if archive.EntryName != "conversations.json" {
		t.Errorf("EntryName = %q, want conversations.json", archive.EntryName)
	}
	if string(archive.Conversations) != `[{"uuid":"a"}]` {
		t.Errorf("Conversations = %s", archive.Conversations)
	}
}

func TestReadArchiveBytesNestedFile(t *testing.T) {
	data := testutil.BuildZip(t, map[string]string{
		"claude_data_2024/conversations.json": `[]`,
		"claude_data_2024/users.json":         `[]`,
	})

	archive, err := ReadArchiveBytes(data, "export.zip")
	if err != nil {
		t.Fatalf("ReadArchiveBytes() error = %v", err)
	}
	if archive.EntryName != "claude_data_2024/conversations.json" {
		t.Errorf("EntryName = %q", archive.EntryName)
	}
}

func TestReadArchiveBytesSkipsResourceFork(t *testing.T) {
	data := testutil.BuildZip(t, map[string]string{
		"__MACOSX/export/conversations.json": `garbage`,
		"export/conversations.json":          `[]`,
	})

	archive, err := ReadArchiveBytes(data, "export.zip")
	if err != nil {
		t.Fatalf("ReadArchiveBytes() error = %v", err)
	}
	if archive.EntryName != "export/conversations.json" {
		t.Errorf("EntryName = %q, want export/conversations.json", archive.EntryName)
	}
}

func TestReadArchiveBytesMissingFile(t *testing.T) {
	data := testutil.BuildZip(t, map[string]string{
		"users.json": `[]`,
	})

	_, err := ReadArchiveBytes(data, "export.zip")
	var missing *MissingConversationsError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingConversationsError", err)
	}
}

func TestReadArchiveBytesCorruptArchive(t *testing.T) {
	_, err := ReadArchiveBytes([]byte("not a zip at all"), "export.zip")
	var corrupt *CorruptArchiveError
	if !errors.As(err, &corrupt) {
		t.Fatalf("error = %v, want CorruptArchiveError", err)
	}
}

func TestReadArchiveBytesInvalidJSON(t *testing.T) {
	data := testutil.BuildZip(t, map[string]string{
		"conversations.json": `{"truncated":`,
	})

	_, err := ReadArchiveBytes(data, "export.zip")
	var invalid *InvalidJSONError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidJSONError", err)
	}
}

func TestReadArchiveFromDisk(t *testing.T) {
	path := testutil.WriteZip(t, t.TempDir(), "export.zip", map[string]string{
		"conversations.json": `[]`,
	})

	archive, err := ReadArchive(path)
	if err != nil {
		t.Fatalf("ReadArchive() error = %v", err)
	}
	if archive.Path != path {
		t.Errorf("Path = %q, want %q", archive.Path, path)
	}
}

func TestReadArchiveMissingPath(t *testing.T) {
	_, err := ReadArchive("/nonexistent/export.zip")
	var corrupt *CorruptArchiveError
	if !errors.As(err, &corrupt) {
		t.Fatalf("error = %v, want CorruptArchiveError", err)
	}
}
