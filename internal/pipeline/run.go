// Package pipeline ties document reading, profile extraction and ranking
// together for single documents and batches.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Step names reported through ProgressEvent.
const (
	StepIngest = "ingest"
	StepParse  = "parse"
	StepRank   = "rank"
)

// DefaultConcurrency bounds RunBatch when the caller passes no limit.
const DefaultConcurrency = 4

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step     string `json:"step"`
	Document string `json:"document"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. It may be
// invoked from several goroutines during RunBatch.
type ProgressCallback func(event ProgressEvent)

// Options configures a Matcher.
type Options struct {
	Language           string
	TopN               int
	PreserveLineBreaks bool
	Logger             *zap.Logger
	OnProgress         ProgressCallback
}

// Result holds the outputs for one document.
type Result struct {
	Source   string              `json:"source"`
	Profile  *types.Profile      `json:"profile"`
	Matches  []types.MatchResult `json:"matches"`
	Metadata *ingestion.Metadata `json:"metadata,omitempty"`
}

// Matcher extracts profiles and ranks them against a fixed catalog. It holds
// no mutable state and is safe for concurrent use.
type Matcher struct {
	catalog  *catalog.Catalog
	builder  *parsing.Builder
	ranker   *ranking.Ranker
	language string
	topN     int
	log      *zap.Logger
	progress ProgressCallback
}

// New creates a Matcher over c.
func New(c *catalog.Catalog, opts Options) *Matcher {
	topN := opts.TopN
	if topN <= 0 {
		topN = ranking.DefaultTopN
	}
	return &Matcher{
		catalog:  c,
		builder:  parsing.NewDefaultBuilder(parsing.WithPreserveLineBreaks(opts.PreserveLineBreaks)),
		ranker:   ranking.NewDefaultRanker(),
		language: parsing.ResolveLanguage(opts.Language),
		topN:     topN,
		log:      logger.OrNop(opts.Logger),
		progress: opts.OnProgress,
	}
}

// Catalog returns the catalog the matcher ranks against.
func (m *Matcher) Catalog() *catalog.Catalog {
	return m.catalog
}

// Language returns the language tag used for extraction.
func (m *Matcher) Language() string {
	return m.language
}

// BuildProfile extracts a profile from text using the matcher's language
// unless lang overrides it.
func (m *Matcher) BuildProfile(text, lang string) *types.Profile {
	if lang == "" {
		lang = m.language
	}
	return m.builder.Build(text, lang)
}

// Rank scores p against the catalog, returning at most topN results. A
// non-positive topN uses the matcher's default.
func (m *Matcher) Rank(p *types.Profile, topN int) []types.MatchResult {
	if topN <= 0 {
		topN = m.topN
	}
	return m.ranker.Rank(p, m.catalog.Entries(), topN)
}

// MatchText builds a profile from text and ranks it.
func (m *Matcher) MatchText(source, text string) *Result {
	profile := m.BuildProfile(text, "")
	return &Result{
		Source:  source,
		Profile: profile,
		Matches: m.Rank(profile, 0),
	}
}

// Run reads the document at path and ranks the profile extracted from it.
func (m *Matcher) Run(ctx context.Context, path string) (*Result, error) {
	return m.run(ctx, uuid.New(), path)
}

func (m *Matcher) run(ctx context.Context, runID uuid.UUID, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := m.log.With(zap.String(logger.FieldRunID, runID.String()), zap.String(logger.FieldDocument, path))
	start := time.Now()

	doc, err := ingestion.ReadDocument(path)
	if err != nil {
		log.Warn("failed to read document", zap.Error(err))
		return nil, err
	}
	m.emit(runID, StepIngest, path, "read document")
	log.Debug("read document", zap.Int("bytes", doc.Metadata.Bytes), zap.String("hash", doc.Metadata.Hash))

	profile := m.BuildProfile(doc.Text, "")
	m.emit(runID, StepParse, path, "extracted profile")
	log.Debug("extracted profile",
		zap.String(logger.FieldLanguage, profile.Language),
		zap.Int("experience", len(profile.Experience)),
		zap.Int("skills", len(profile.Skills)),
	)

	matches := m.Rank(profile, 0)
	m.emit(runID, StepRank, path, "ranked catalog")

	fields := []zap.Field{zap.Int("matches", len(matches)), zap.Duration("elapsed", time.Since(start))}
	if len(matches) > 0 {
		fields = append(fields, zap.String("top_match", matches[0].Posting.Title), zap.Float64("top_percentage", matches[0].MatchPercentage))
	}
	log.Info("matched document", fields...)

	return &Result{
		Source:   path,
		Profile:  profile,
		Matches:  matches,
		Metadata: doc.Metadata,
	}, nil
}

// RunBatch runs every path with at most concurrency documents in flight.
// Results keep the order of paths. The first error cancels the remaining
// documents and is returned.
func (m *Matcher) RunBatch(ctx context.Context, paths []string, concurrency int) ([]*Result, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	runID := uuid.New()
	m.log.Info("starting batch",
		zap.String(logger.FieldRunID, runID.String()),
		zap.Int("documents", len(paths)),
		zap.Int("concurrency", concurrency),
	)

	results := make([]*Result, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			res, err := m.run(gCtx, runID, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if !errors.Is(err, context.Canceled) {
			m.log.Error("batch failed", zap.String(logger.FieldRunID, runID.String()), zap.Error(err))
		}
		return nil, err
	}
	return results, nil
}

func (m *Matcher) emit(runID uuid.UUID, step, document, message string) {
	if m.progress == nil {
		return
	}
	m.progress(ProgressEvent{
		Step:     step,
		Document: document,
		Message:  message,
		RunID:    runID.String(),
	})
}
