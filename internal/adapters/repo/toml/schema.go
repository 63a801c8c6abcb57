package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Session sessionSchema  `toml:"session"`
	Records []recordSchema `toml:"records"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported change log schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID        string `toml:"id,omitempty"`
	Reference string `toml:"reference,omitempty"`
}

type recordSchema struct {
	Type          string `toml:"type"`
	Text          string `toml:"text"`
	ContextBefore string `toml:"context_before"`
	ContextAfter  string `toml:"context_after"`
}
