package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/feature"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/homestay"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/intent"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/plan"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/predicate"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/query"
	"github.com/Paurakh977/HomeStay-MCP/internal/extract"
	"github.com/Paurakh977/HomeStay-MCP/internal/logger"
)

// Options tunes the search pipeline.
type Options struct {
	FuzzyThreshold float64
	DefaultStatus  string
	DefaultLimit   int64
	MaxLimit       int64
	QueryTimeout   time.Duration
	HighWater      int64
}

// ApplyDefaults fills unset options.
func (o *Options) ApplyDefaults() {
	if o.FuzzyThreshold <= 0 {
		o.FuzzyThreshold = feature.DefaultFuzzyThreshold
	}
	if o.DefaultStatus == "" {
		o.DefaultStatus = "approved"
	}
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = 100
	}
	if o.MaxLimit <= 0 {
		o.MaxLimit = 1000
	}
	if o.QueryTimeout <= 0 {
		o.QueryTimeout = 10 * time.Second
	}
	if o.HighWater <= 0 {
		o.HighWater = 100
	}
}

// Request is one inbound search. Explicit carries the caller's structured
// fields; Description is the free-text half. Operator is the raw structured
// override and is validated here.
type Request struct {
	Description    string
	Explicit       intent.Intent
	Operator       string
	Skip           int64
	Limit          int64
	SortField      string
	SortDescending bool
}

// Result is the outbound response shape: identifiers and display names in
// matching order, both counts, the realized predicate, and suggestions.
type Result struct {
	IDs         []string
	Names       []string
	Total       int64
	Filtered    int64
	Predicate   predicate.Node
	Relaxed     bool
	Suggestions []string
}

// Service resolves filter intent and runs the search pipeline.
type Service struct {
	repo    Repository
	metrics Metrics
	schema  query.Schema
	opts    Options
}

// New creates a search service. metrics may be nil.
func New(repo Repository, metrics Metrics, schema query.Schema, opts Options) *Service {
	opts.ApplyDefaults()
	schema.ApplyDefaults()
	return &Service{repo: repo, metrics: metrics, schema: schema, opts: opts}
}

// Search runs the full pipeline: extract, merge, resolve, build, count,
// relax once on zero matches, fetch, and assemble suggestions.
func (s *Service) Search(ctx context.Context, req Request) (Result, error) {
	log := logger.FromContext(ctx)

	skip, limit, err := s.validatePagination(req.Skip, req.Limit)
	if err != nil {
		return Result{}, err
	}

	op, err := intent.ParseOperator(req.Operator)
	if err != nil {
		return Result{}, err
	}

	explicit := req.Explicit
	if op != nil {
		explicit.Operator = op
	}

	merged := intent.Merge(explicit, extract.Extract(req.Description))
	if merged.Status == nil {
		status := s.opts.DefaultStatus
		merged.Status = &status
	}
	s.sanitizeTokens(&merged, log)

	total, err := s.countAll(ctx)
	if err != nil {
		return Result{}, err
	}

	pred := s.build(merged)
	filtered, err := s.count(ctx, pred)
	if err != nil {
		return Result{}, err
	}

	relaxed := false
	if filtered == 0 {
		if variant, ok := merged.Relaxed(); ok {
			relaxedPred := s.build(variant)
			relaxedCount, err := s.count(ctx, relaxedPred)
			if err != nil {
				return Result{}, err
			}
			if relaxedCount > 0 {
				log.Info("Strict query matched nothing, using relaxed variant",
					zap.Int64("relaxed_count", relaxedCount),
				)
				merged, pred, filtered, relaxed = variant, relaxedPred, relaxedCount, true
			}
		}
	}

	var matches []homestay.Summary
	if filtered > 0 {
		matches, err = s.find(ctx, pred, s.sortSpec(req), skip, limit)
		if err != nil {
			return Result{}, err
		}
	}

	if s.metrics != nil {
		s.metrics.SearchExecuted(relaxed)
	}

	ids := make([]string, len(matches))
	names := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
		names[i] = m.Name
	}

	return Result{
		IDs:         ids,
		Names:       names,
		Total:       total,
		Filtered:    filtered,
		Predicate:   pred,
		Relaxed:     relaxed,
		Suggestions: suggestions(filtered, relaxed, merged, s.opts.HighWater),
	}, nil
}

func (s *Service) validatePagination(skip, limit int64) (int64, int64, error) {
	if skip < 0 {
		return 0, 0, fmt.Errorf("%w: skip must be non-negative, got %d", domain.ErrValidation, skip)
	}
	if limit < 0 {
		return 0, 0, fmt.Errorf("%w: limit must be non-negative, got %d", domain.ErrValidation, limit)
	}
	if limit == 0 {
		limit = s.opts.DefaultLimit
	}
	if limit > s.opts.MaxLimit {
		return 0, 0, fmt.Errorf("%w: limit %d exceeds maximum %d", domain.ErrValidation, limit, s.opts.MaxLimit)
	}
	return skip, limit, nil
}

// sanitizeTokens drops feature tokens that are empty after trimming. One bad
// token never aborts the whole query.
func (s *Service) sanitizeTokens(in *intent.Intent, log *zap.Logger) {
	clean := func(set intent.FeatureSet, category feature.Category) intent.FeatureSet {
		set.Must = cleanList(set.Must, category, "must", log)
		set.Optional = cleanList(set.Optional, category, "optional", log)
		return set
	}
	in.Attractions = clean(in.Attractions, feature.CategoryAttraction)
	in.Infrastructure = clean(in.Infrastructure, feature.CategoryInfrastructure)
	in.Services = clean(in.Services, feature.CategoryService)
}

func cleanList(tokens []string, category feature.Category, kind string, log *zap.Logger) []string {
	if tokens == nil {
		return nil
	}
	out := tokens[:0:len(tokens)]
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			log.Warn("Dropping empty feature token",
				zap.String("category", string(category)),
				zap.String("kind", kind),
			)
			continue
		}
		out = append(out, tok)
	}
	return out
}

func (s *Service) build(in intent.Intent) predicate.Node {
	return query.Build(in, plan.Resolve(in, s.opts.FuzzyThreshold), s.schema)
}

func (s *Service) sortSpec(req Request) []homestay.SortSpec {
	if req.SortField != "" {
		return []homestay.SortSpec{{Field: req.SortField, Descending: req.SortDescending}}
	}
	return homestay.DefaultSort()
}

func (s *Service) countAll(ctx context.Context) (int64, error) {
	cctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()
	n, err := s.repo.CountAll(cctx)
	if err != nil {
		return 0, storageErr("count all homestays", err)
	}
	return n, nil
}

func (s *Service) count(ctx context.Context, pred predicate.Node) (int64, error) {
	cctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()
	n, err := s.repo.Count(cctx, pred)
	if err != nil {
		return 0, storageErr("count homestays", err)
	}
	return n, nil
}

func (s *Service) find(
	ctx context.Context, pred predicate.Node,
	sort []homestay.SortSpec, skip, limit int64,
) ([]homestay.Summary, error) {
	cctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()
	matches, err := s.repo.Find(cctx, pred, sort, skip, limit)
	if err != nil {
		return nil, storageErr("find homestays", err)
	}
	return matches, nil
}

// storageErr maps timeouts to the storage-unavailable category; a timeout is
// a failure, never a zero-result relaxation trigger.
func storageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s timed out", domain.ErrStorageUnavailable, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
