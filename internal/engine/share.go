package engine

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// ShareStateVersion is bumped when the share envelope shape changes.
const ShareStateVersion = 1

// BuilderShareState is the full builder state carried in a share link.
// Older tokens missing newer optional payload fields decode with their
// documented defaults; decoding never invents values.
type BuilderShareState struct {
	Version    int          `json:"v"`
	PlatformID string       `json:"platform"`
	Payload    QueryPayload `json:"payload"`
}

// EncodeShareState serializes state into a URL-safe token.
func EncodeShareState(s BuilderShareState) (string, error) {
	if s.Version == 0 {
		s.Version = ShareStateVersion
	}
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode share state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeShareState parses a token produced by EncodeShareState.
func DecodeShareState(token string) (BuilderShareState, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return BuilderShareState{}, fmt.Errorf("decode share token: %w", err)
	}
	var s BuilderShareState
	if err := json.Unmarshal(data, &s); err != nil {
		return BuilderShareState{}, fmt.Errorf("parse share state: %w", err)
	}
	return s, nil
}
