package internal

// ParseResult is the output of the full normalization pipeline.
type ParseResult struct {
	Provider Provider
	Sessions []Session
}

// ParseArchive runs the pipeline on a zip export from disk: read the
// archive, detect the provider, dispatch to the matching adapter. An
// explicit override always wins and skips detection entirely.
func ParseArchive(path string, override Provider) (*ParseResult, error) {
	archive, err := ReadArchive(path)
	if err != nil {
		return nil, err
	}
	return parseRaw(archive, override)
}

// ParseArchiveBytes is ParseArchive over an in-memory zip blob.
func ParseArchiveBytes(data []byte, name string, override Provider) (*ParseResult, error) {
	archive, err := ReadArchiveBytes(data, name)
	if err != nil {
		return nil, err
	}
	return parseRaw(archive, override)
}

func parseRaw(archive *RawArchive, override Provider) (*ParseResult, error) {
	provider := override
	if !provider.Valid() {
		detected, err := DetectProvider(archive.Conversations, archive.EntryName)
		if err != nil {
			// Retry the filename fallback against the archive path before
			// giving up; the entry name is often just conversations.json.
			detected, err = DetectProvider(archive.Conversations, archive.Path)
			if err != nil {
				return nil, err
			}
		}
		provider = detected
	}

	var (
		sessions []Session
		err      error
	)
	switch provider {
	case ProviderClaude:
		sessions, err = ParseLinearSessions(archive.Conversations)
	case ProviderChatGPT:
		sessions, err = NormalizeTreeConversations(archive.Conversations)
	}
	if err != nil {
		return nil, err
	}

	LogDebug("parsed %d sessions from %s export", len(sessions), provider)
	return &ParseResult{Provider: provider, Sessions: sessions}, nil
}
