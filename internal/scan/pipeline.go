package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"filmvault/internal/enhance"
	"filmvault/internal/logging"
	"filmvault/internal/services"
	"filmvault/internal/tmdb"
	"filmvault/internal/vision"
)

// ErrScanSuperseded marks a scan whose result arrived after a newer scan
// started. The stale result must be discarded, never surfaced.
var ErrScanSuperseded = errors.New("scan superseded")

// DefaultMaxCandidates limits how many search results a scan surfaces for
// manual disambiguation.
const DefaultMaxCandidates = 5

// Options controls per-scan behavior.
type Options struct {
	// AutoDetect enables confidence-gated auto-selection of the top search
	// result instead of always presenting the candidate list.
	AutoDetect bool
}

// Outcome is the terminal value of a successful scan: the normalized search
// query plus either an auto-selected result or a ranked candidate list
// awaiting user choice. The caller owns persistence of the eventual pick and
// keeps the captured image, so a failed scan never loses it.
type Outcome struct {
	Query        string
	AutoSelected *tmdb.Result
	Candidates   []tmdb.Result
}

// Scanner runs the cover-scan pipeline. Scans are stateless with respect to
// one another; the only shared state is the generation counter used to
// invalidate in-flight scans when a newer one begins.
type Scanner struct {
	codec         enhance.Codec
	extractor     vision.Extractor
	searcher      tmdb.Searcher
	logger        *slog.Logger
	maxCandidates int
	generation    atomic.Uint64
}

// NewScanner wires the pipeline stages together. A nil logger is replaced
// with a no-op logger; maxCandidates at or below zero uses the default.
func NewScanner(codec enhance.Codec, extractor vision.Extractor, searcher tmdb.Searcher, logger *slog.Logger, maxCandidates int) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	return &Scanner{
		codec:         codec,
		extractor:     extractor,
		searcher:      searcher,
		logger:        logging.NewComponentLogger(logger, "scan"),
		maxCandidates: maxCandidates,
	}
}

// Abort invalidates any in-flight scan so its late result is discarded.
func (s *Scanner) Abort() {
	s.generation.Add(1)
}

// ScanCoverImage runs the full pipeline on a captured cover image: enhance,
// extract text, rebuild reading order, score title candidates, normalize the
// winner into a query, and search it. Network calls are strictly sequential;
// errors propagate to the caller untried, since retry policy lives there.
func (s *Scanner) ScanCoverImage(ctx context.Context, raw []byte, opts Options) (*Outcome, error) {
	generation := s.generation.Add(1)
	scanID := uuid.NewString()
	log := s.logger.With(logging.String(logging.FieldScanID, scanID))

	input := raw
	enhanced, err := enhance.EnhanceBytes(s.codec, raw)
	if err != nil {
		// A cover that fails enhancement decode may still OCR; scan the
		// original and let the extraction surface a real decode failure.
		log.Warn("enhancement failed, scanning unenhanced image", logging.Error(err))
	} else {
		input = enhanced
	}

	extraction, err := s.extractor.ExtractText(ctx, input)
	if err != nil {
		return nil, err
	}
	if s.generation.Load() != generation {
		return nil, ErrScanSuperseded
	}

	positioned := vision.PositionAll(extraction.Fragments)
	fullText := AdoptReordered(extraction.FullText, Reorder(positioned))

	candidates := ScoreCandidates(positioned)
	query := NormalizeQuery(BuildQuery(candidates, fullText))
	if len(query) < 3 {
		return nil, services.Wrap(services.ErrTitleNotDetected, "scan", "score",
			"no plausible title survived scoring and fallback", nil)
	}
	log.Info("title detected",
		logging.String(logging.FieldQuery, query),
		logging.Int("candidates", len(candidates)))

	response, err := s.searcher.SearchMulti(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if s.generation.Load() != generation {
		return nil, ErrScanSuperseded
	}

	results := response.Results
	if len(results) > s.maxCandidates {
		results = results[:s.maxCandidates]
	}
	if len(results) == 0 {
		return nil, services.Wrap(services.ErrNoMatch, "scan", "search",
			fmt.Sprintf("no results for %q", query), nil)
	}

	outcome := &Outcome{Query: query, Candidates: results}
	if opts.AutoDetect && AutoMatch(query, results[0].DisplayTitle()) {
		outcome.AutoSelected = &results[0]
		log.Info("auto-selected match",
			logging.String("title", results[0].DisplayTitle()),
			logging.Int64("tmdb_id", results[0].ID))
	}
	return outcome, nil
}
