// Package client loads session records from the booking backend. The backend
// owns the data; this package only fetches and decodes its documented list
// shape, either over HTTP or from a JSON snapshot file.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/ayanmanna123/sessionwatch/internal/session"
)

const sessionsPath = "/api/v1/sessions"

// Source loads session records from a backend base URL or a local file path.
type Source struct {
	location string
	client   *http.Client
}

// listResponse is the enveloped form some backend deployments return.
type listResponse struct {
	Sessions []session.Session `json:"sessions"`
}

// New creates a source for the given location. Locations starting with
// http:// or https:// are treated as backend base URLs; anything else is
// read as a snapshot file.
func New(location string) *Source {
	return &Source{
		location: strings.TrimRight(location, "/"),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// IsRemote reports whether the source fetches over HTTP.
func (s *Source) IsRemote() bool {
	return strings.HasPrefix(s.location, "http://") || strings.HasPrefix(s.location, "https://")
}

// Load fetches and decodes the current session list.
func (s *Source) Load(ctx context.Context) ([]session.Session, error) {
	raw, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return decodeSessions(raw)
}

func (s *Source) read(ctx context.Context) ([]byte, error) {
	if !s.IsRemote() {
		data, err := os.ReadFile(s.location)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot: %w", err)
		}
		return data, nil
	}

	url := s.location + sessionsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sessions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned %s for %s", resp.Status, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return data, nil
}

// decodeSessions accepts both a bare session array and the {"sessions": [...]}
// envelope.
func decodeSessions(raw []byte) ([]session.Session, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var sessions []session.Session
		if err := json.Unmarshal(trimmed, &sessions); err != nil {
			return nil, fmt.Errorf("decoding session list: %w", err)
		}
		return sessions, nil
	}

	var envelope listResponse
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decoding session list: %w", err)
	}
	return envelope.Sessions, nil
}
