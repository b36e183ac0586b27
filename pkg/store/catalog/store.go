package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/de-tools/reliability-atlas/pkg/models/store"
)

// Published locations of the APRL artifacts. Both operations also accept a
// local file path, which keeps air-gapped runs possible.
const (
	DefaultRecommendationsURL = "https://azure.github.io/WARA-Build/objects/recommendations.json"
	DefaultSpecialTypesURL    = "https://raw.githubusercontent.com/Azure/Azure-Proactive-Resiliency-Library-v2/main/tools/WARAinScopeResTypes.csv"
)

type Store interface {
	Recommendations(ctx context.Context, source string) ([]store.CatalogEntry, error)
	SpecialTypes(ctx context.Context, source string) ([]store.SpecialTypeEntry, error)
}

type catalogStore struct {
	client *http.Client
}

func NewStore(client *http.Client) Store {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &catalogStore{client: client}
}

func (s *catalogStore) Recommendations(ctx context.Context, source string) ([]store.CatalogEntry, error) {
	if source == "" {
		source = DefaultRecommendationsURL
	}
	raw, err := s.fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load recommendations from %s: %w", source, err)
	}
	entries, err := decodeRecommendations(raw)
	if err != nil {
		return nil, fmt.Errorf("load recommendations from %s: %w", source, err)
	}
	return entries, nil
}

func (s *catalogStore) SpecialTypes(ctx context.Context, source string) ([]store.SpecialTypeEntry, error) {
	if source == "" {
		source = DefaultSpecialTypesURL
	}
	raw, err := s.fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load special types from %s: %w", source, err)
	}
	entries, err := decodeSpecialTypes(raw)
	if err != nil {
		return nil, fmt.Errorf("load special types from %s: %w", source, err)
	}
	return entries, nil
}

func (s *catalogStore) fetch(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// decodeRecommendations accepts the published JSON array as well as the
// per-service YAML files from the library source tree.
func decodeRecommendations(raw []byte) ([]store.CatalogEntry, error) {
	var entries []store.CatalogEntry
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("parse recommendations JSON: %w", err)
		}
		return entries, nil
	}
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse recommendations YAML: %w", err)
	}
	return entries, nil
}

// decodeSpecialTypes parses the in-scope resource types sheet. Columns are
// ResourceType, WARAinScope, InAprlAndOrAdvisor with yes/no values.
func decodeSpecialTypes(raw []byte) ([]store.SpecialTypeEntry, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse special types CSV: %w", err)
	}

	var entries []store.SpecialTypeEntry
	for i, record := range records {
		if len(record) < 3 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "resourcetype") {
			continue
		}
		entries = append(entries, store.SpecialTypeEntry{
			ResourceType:       strings.TrimSpace(record[0]),
			InScope:            isAffirmative(record[1]),
			InAprlAndOrAdvisor: isAffirmative(record[2]),
		})
	}
	return entries, nil
}

func isAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "y", "1":
		return true
	}
	return false
}
