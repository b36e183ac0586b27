package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/de-tools/reliability-atlas/pkg/models/api"
)

// Artifact naming follows the assessment tooling convention; downstream
// analyzers pick files up by prefix.
const (
	artifactPrefix  = "wara-file-"
	artifactTimeFmt = "2006-01-02T15-04-05Z"
)

// WriteJSON serializes the report into a timestamped artifact inside dir and
// returns the written path.
func WriteJSON(dir string, report *api.Report) (string, error) {
	return writeJSONAt(dir, report, time.Now())
}

func writeJSONAt(dir string, report *api.Report, now time.Time) (string, error) {
	name := artifactPrefix + now.UTC().Format(artifactTimeFmt) + ".json"
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report artifact: %w", err)
	}
	return path, nil
}
