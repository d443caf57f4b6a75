// Package aggregate combines a directory of dated markdown notes into a
// single aggregate document selected by tags, privacy levels, and date
// range.
package aggregate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tagfold/server/domain"
	"github.com/tagfold/server/filelock"
	"github.com/tagfold/server/vault"
)

// noteSeparator joins the extracted contents of consecutive notes in the
// output body.
const noteSeparator = "\n\n---\n\n"

// Engine runs aggregations. Safe for concurrent use: each call works on
// local state and writes to distinct output paths are serialized by a
// per-path mutex, so the existence check and the write act as one step.
type Engine struct {
	log   zerolog.Logger
	now   func() time.Time
	locks sync.Map // output path -> *sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's notion of "today". Used by tests to
// pin output filenames.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns a ready Engine.
func New(log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{log: log, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Aggregate selects the notes matching spec, concatenates their extracted
// content, and writes one aggregate file with synthesized frontmatter.
// Every failure is terminal for the call and nothing is written; an
// existing file at the output path is a hard failure, never a merge.
func (e *Engine) Aggregate(spec domain.FilterSpec) (*domain.AggregationResult, error) {
	if err := spec.RequiredTags.Validate(); err != nil {
		return nil, err
	}

	aggType, token := classify(spec.RequiredTags)
	token = SanitizeToken(token)
	today := e.now().Format("2006-01-02")
	outputPath := filepath.Join(spec.AggregatesDir, token+"-"+today+".md")

	mu := e.pathLock(outputPath)
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(spec.AggregatesDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", domain.ErrWriteFailure, spec.AggregatesDir, err)
	}

	lock := filelock.ForPath(outputPath)
	if err := lock.Acquire(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWriteFailure, err)
	}
	defer lock.Release()

	if _, err := os.Stat(outputPath); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrOutputCollision, outputPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", outputPath, err)
	}

	v := vault.New(spec.NotesDir, e.log)
	files, err := v.ListNoteFiles()
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptySource, spec.NotesDir)
	}

	files = filterByDate(files, spec.StartDate, spec.EndDate)
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s..%s", domain.ErrNoFilesInRange,
			orUnbounded(spec.StartDate), orUnbounded(spec.EndDate))
	}

	result := &domain.AggregationResult{Type: aggType, OutputPath: outputPath}
	var contents []string

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			e.log.Warn().Err(err).Str("file", path).Msg("skipping unreadable note")
			result.Skipped = append(result.Skipped, domain.SkippedFile{Path: path, Reason: "read error"})
			continue
		}
		result.FilesScanned++

		note, err := vault.ParseNote(path, data)
		if err != nil {
			e.log.Warn().Err(err).Str("file", path).Msg("skipping unparseable note")
			result.Skipped = append(result.Skipped, domain.SkippedFile{Path: path, Reason: "parse error"})
			continue
		}

		if !spec.RequiredTags.Matches(note.Tags) {
			result.Skipped = append(result.Skipped, domain.SkippedFile{Path: path, Reason: "tag filter"})
			continue
		}
		if !spec.PrivacyAllowed(note.Privacy) {
			result.Skipped = append(result.Skipped, domain.SkippedFile{Path: path, Reason: "privacy filter"})
			continue
		}

		content := ExtractContent(note.Body)
		if content == "" {
			e.log.Warn().Str("file", path).Msg("note matched but is empty after extraction")
			result.Skipped = append(result.Skipped, domain.SkippedFile{Path: path, Reason: "empty after extraction"})
			continue
		}

		contents = append(contents, content)
		result.NotesIncluded++
	}

	if result.NotesIncluded == 0 {
		return nil, fmt.Errorf("%w: scanned %d files", domain.ErrNoMatchingNotes, result.FilesScanned)
	}

	result.Frontmatter = synthesizeFrontmatter(spec, aggType, token, today)
	result.Body = strings.Join(contents, noteSeparator)

	doc, err := renderDocument(result.Frontmatter, result.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWriteFailure, err)
	}
	if err := filelock.WriteAtomic(outputPath, doc, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWriteFailure, err)
	}

	e.log.Info().
		Str("output", outputPath).
		Int("files_scanned", result.FilesScanned).
		Int("notes_included", result.NotesIncluded).
		Str("type", string(aggType)).
		Msg("aggregate written")

	return result, nil
}

// pathLock returns the mutex guarding one resolved output path.
func (e *Engine) pathLock(path string) *sync.Mutex {
	actual, _ := e.locks.LoadOrStore(path, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// filterByDate keeps files whose filename date falls inside the inclusive
// bounds, by plain string comparison. Empty bounds are unbounded.
func filterByDate(files []string, lower, upper string) []string {
	if lower == "" && upper == "" {
		return files
	}
	kept := files[:0]
	for _, path := range files {
		name := filepath.Base(path)
		date := strings.TrimSuffix(name, filepath.Ext(name))
		if lower != "" && date < lower {
			continue
		}
		if upper != "" && date > upper {
			continue
		}
		kept = append(kept, path)
	}
	return kept
}

func orUnbounded(bound string) string {
	if bound == "" {
		return "unbounded"
	}
	return bound
}
