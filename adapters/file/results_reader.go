package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"wolfboard/domain/game"
	"wolfboard/internal"
	"wolfboard/ports"
)

// ResultsReader reads finalized game-record JSON files from a results
// directory, one game per file, ordered by filename. This is the batch
// scoring path: a game runner drops records into the directory and the
// scorer folds them into state.
type ResultsReader struct {
	dir    string
	logger *internal.Logger
}

// NewResultsReader creates a reader over a results directory
func NewResultsReader(dir string) ports.GameSource {
	return &ResultsReader{dir: dir, logger: internal.NewDefaultLogger()}
}

// ListGames reads every *.json file in the directory into a GameRecord.
// Files that fail to parse are reported as errors; validation of the game
// semantics stays with the scoring engine.
func (r *ResultsReader) ListGames(ctx context.Context) ([]*game.GameRecord, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("reading results directory %s: %w", r.dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	records := make([]*game.GameRecord, 0, len(files))
	for _, name := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		path := filepath.Join(r.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		var rec game.GameRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		r.logger.Debug("[ResultsReader] loaded game %s from %s", rec.GameID, name)
		records = append(records, &rec)
	}
	return records, nil
}
