package filtering

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/domain/repository"
	corefiltering "github.com/bnema/blockrules/internal/filtering"
	"github.com/bnema/blockrules/internal/filtering/parser"
	"github.com/bnema/blockrules/internal/filtering/rules"
	"github.com/bnema/blockrules/internal/logging"
)

const (
	outputDirPerm = 0o755

	// DefaultMaxParallel bounds UpdateAll when HandlerConfig leaves it unset.
	DefaultMaxParallel = 4
)

// Handler runs the read, parse, compile and persist cycle for rule sources.
type Handler struct {
	outputDir   string
	maxParallel int
	compiler    RulesetCompiler
	repo        repository.RuleSourceRepository
	now         func() time.Time
	jitter      func(time.Duration) time.Duration

	group singleflight.Group

	cbMu           sync.RWMutex
	onStatusChange func(SourceStatus)
}

// HandlerConfig holds configuration for the source handler.
type HandlerConfig struct {
	OutputDir   string // Where compiled artifacts are written
	MaxParallel int    // Concurrent updates in UpdateAll

	Compiler   RulesetCompiler
	Repository repository.RuleSourceRepository // Optional: state is not persisted when nil

	// Optional: overridable for tests
	Now    func() time.Time
	Jitter func(time.Duration) time.Duration
}

// NewHandler creates a Handler and its output directory.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Compiler == nil {
		return nil, errors.New("source handler needs a compiler")
	}
	if err := os.MkdirAll(cfg.OutputDir, outputDirPerm); err != nil {
		return nil, fmt.Errorf("%w %s: %w", corefiltering.ErrCreateOutputDir, cfg.OutputDir, err)
	}

	h := &Handler{
		outputDir:   cfg.OutputDir,
		maxParallel: cfg.MaxParallel,
		compiler:    cfg.Compiler,
		repo:        cfg.Repository,
		now:         cfg.Now,
		jitter:      cfg.Jitter,
	}
	if h.maxParallel <= 0 {
		h.maxParallel = DefaultMaxParallel
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.jitter == nil {
		h.jitter = RandomJitter
	}
	return h, nil
}

// SetStatusCallback sets a callback for status changes of any source.
func (h *Handler) SetStatusCallback(cb func(SourceStatus)) {
	h.cbMu.Lock()
	h.onStatusChange = cb
	h.cbMu.Unlock()
}

func (h *Handler) setStatus(source *entity.RuleSource, state SourceState, message string) {
	h.cbMu.RLock()
	cb := h.onStatusChange
	h.cbMu.RUnlock()
	if cb != nil {
		cb(SourceStatus{SourceID: source.ID, Name: source.Name, State: state, Message: message})
	}
}

// ArtifactPath is where the artifact of source is written.
func (h *Handler) ArtifactPath(source *entity.RuleSource) string {
	return filepath.Join(h.outputDir, string(source.ID)+h.compiler.Extension())
}

// Update runs one cycle for source and records the outcome on it. Concurrent
// calls for the same source share a single run.
//
// The returned error is only set when the outcome could not be persisted; a
// failed read or compile is reported through UpdateResult.FetchResult.
func (h *Handler) Update(ctx context.Context, source *entity.RuleSource) (*UpdateResult, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}

	v, err, shared := h.group.Do(string(source.ID), func() (any, error) {
		return h.update(ctx, source)
	})
	res, _ := v.(*UpdateResult)
	if shared {
		logging.FromContext(ctx).Debug().Str("source", source.Name).Msg("joined in-flight update")
	}
	if res != nil && res.Source != source {
		// another caller ran the update on its own copy of the source
		source.CopyStateFrom(res.Source)
		shadow := *res
		shadow.Source = source
		res = &shadow
	}
	return res, err
}

func (h *Handler) update(ctx context.Context, source *entity.RuleSource) (*UpdateResult, error) {
	ctx = logging.WithSource(ctx, source.Name, string(source.ID))
	log := logging.Component(ctx, "source-handler")

	h.setStatus(source, StateUpdating, "")
	start := h.now()
	outputPath := h.ArtifactPath(source)

	res := &UpdateResult{Source: source, ArtifactPath: outputPath}

	data, err := os.ReadFile(source.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", source.Path).Msg("rule source file not found")
		res.FetchResult = rules.FetchFileNotFound
	case err != nil:
		log.Error().Err(err).Str("path", source.Path).Msg("failed to read rule source")
		res.FetchResult = rules.FetchFileReadError
	default:
		h.parseAndCompile(ctx, source, data, res)
	}

	res.NextFetchIn = NextFetchDelay(res.Metadata.Expires, h.jitter)
	h.record(source, res, start)

	if err := h.persist(ctx, source, res); err != nil {
		h.setStatus(source, StateFailed, err.Error())
		return res, err
	}

	if res.Succeeded() {
		log.Info().
			Int("valid", res.RulesInfo.ValidRules).
			Int("invalid", res.RulesInfo.InvalidRules).
			Int("unsupported", res.RulesInfo.UnsupportedRules).
			Str("checksum", res.Checksum).
			Dur("next_fetch_in", res.NextFetchIn).
			Msg("rule source updated")
		h.setStatus(source, StateUpToDate, res.Metadata.Title)
	} else {
		log.Warn().Str("fetch_result", res.FetchResult.String()).Msg("rule source update failed")
		h.setStatus(source, StateFailed, res.FetchResult.String())
	}
	return res, nil
}

func (h *Handler) parseAndCompile(ctx context.Context, source *entity.RuleSource, data []byte, res *UpdateResult) {
	log := logging.Component(ctx, "source-handler")

	result := ParseSource(ctx, source, data)
	res.FetchResult = result.FetchResult
	res.Metadata = result.Metadata
	res.RulesInfo = result.RulesInfo
	res.TrackerInfos = result.TrackerInfos

	if result.FetchResult == rules.FetchFileUnsupported {
		if err := corefiltering.RemoveArtifact(res.ArtifactPath); err != nil {
			log.Warn().Err(err).Str("path", res.ArtifactPath).Msg("failed to remove stale artifact")
		}
		return
	}

	checksum, err := h.compiler.Compile(ctx, result, res.ArtifactPath)
	if err != nil {
		// The previous artifact, if any, is still valid and stays in place.
		log.Error().Err(err).Str("path", res.ArtifactPath).Msg("failed to compile rule source")
		res.FetchResult = rules.FetchFailedSavingParsedRules
		return
	}
	res.Checksum = checksum
}

// ParseSource parses data with the parser selected by the kind of source.
func ParseSource(ctx context.Context, source *entity.RuleSource, data []byte) *rules.ParseResult {
	settings := parser.RuleSourceSettings{
		NakedHostnameIsPureHost: source.NakedHostnameIsPureHost,
		AllowAbpSnippets:        source.AllowAbpSnippets,
	}
	switch source.Kind {
	case entity.RuleSourceKindAdblock:
		return parser.NewRulesetFileParser(settings).Parse(ctx, string(data))
	case entity.RuleSourceKindDuckDuckGo:
		return parser.NewDuckDuckGoRulesParser().Parse(ctx, data)
	default:
		return parser.ParseRuleSource(ctx, data, settings)
	}
}

// record copies the outcome onto source. Metadata and counters of the last
// successful run survive a failed one.
func (h *Handler) record(source *entity.RuleSource, res *UpdateResult, start time.Time) {
	source.FetchResult = res.FetchResult.String()
	updatedAt := start.UTC()
	source.UpdatedAt = &updatedAt
	next := updatedAt.Add(res.NextFetchIn)
	source.NextFetchAt = &next

	switch res.FetchResult {
	case rules.FetchSuccess:
		source.Title = res.Metadata.Title
		source.Homepage = res.Metadata.Homepage
		source.License = res.Metadata.License
		source.Version = res.Metadata.Version
		source.ValidRules = res.RulesInfo.ValidRules
		source.InvalidRules = res.RulesInfo.InvalidRules
		source.UnsupportedRules = res.RulesInfo.UnsupportedRules
		source.Checksum = res.Checksum
		source.ArtifactPath = res.ArtifactPath
	case rules.FetchFileUnsupported:
		source.ValidRules = 0
		source.InvalidRules = res.RulesInfo.InvalidRules
		source.UnsupportedRules = res.RulesInfo.UnsupportedRules
		source.Checksum = ""
		source.ArtifactPath = ""
	}
}

func (h *Handler) persist(ctx context.Context, source *entity.RuleSource, res *UpdateResult) error {
	if h.repo == nil {
		return nil
	}
	if err := h.repo.Save(ctx, source); err != nil {
		return fmt.Errorf("persist source %s: %w", source.Name, err)
	}
	if res.Succeeded() && res.TrackerInfos != nil {
		if err := h.repo.ReplaceTrackerInfos(ctx, source.ID, TrackerInfoEntities(res.TrackerInfos)); err != nil {
			return fmt.Errorf("persist tracker infos of %s: %w", source.Name, err)
		}
	}
	return nil
}

// TrackerInfoEntities flattens parser tracker infos into entities sorted by domain.
func TrackerInfoEntities(infos map[string]rules.TrackerInfo) []entity.TrackerInfo {
	domains := make([]string, 0, len(infos))
	for d := range infos {
		domains = append(domains, d)
	}
	out := make([]entity.TrackerInfo, 0, len(infos))
	for _, d := range rules.NewStringSet(domains...).Sorted() {
		info := infos[d]
		e := entity.TrackerInfo{Domain: d, Categories: info.Categories}
		if info.Owner != nil {
			e.OwnerName = info.Owner.Name
			e.OwnerDisplayName = info.Owner.DisplayName
			e.PrivacyPolicy = info.Owner.PrivacyPolicy
			e.URL = info.Owner.URL
		}
		out = append(out, e)
	}
	return out
}

// UpdateAll updates every source, at most MaxParallel at a time. Results are
// in the order of sources. The first persistence error is returned after all
// updates finish.
func (h *Handler) UpdateAll(ctx context.Context, sources []*entity.RuleSource) ([]*UpdateResult, error) {
	results := make([]*UpdateResult, len(sources))

	var g errgroup.Group
	g.SetLimit(h.maxParallel)
	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := h.Update(ctx, source)
			results[i] = res
			return err
		})
	}
	return results, g.Wait()
}

// UpdateDue updates the sources whose next fetch time has passed.
func (h *Handler) UpdateDue(ctx context.Context, sources []*entity.RuleSource) ([]*UpdateResult, error) {
	now := h.now()
	var due []*entity.RuleSource
	for _, s := range sources {
		if s.IsDue(now) {
			due = append(due, s)
		}
	}
	log := logging.Component(ctx, "source-handler")
	log.Debug().
		Int("due", len(due)).
		Int("total", len(sources)).
		Msg("checking due sources")
	return h.UpdateAll(ctx, due)
}
