// Package pipeline orchestrates the full analysis flow: cache lookup,
// epistemic analysis, concurrent data validation, verdict synthesis with
// web-search escalation, and report assembly.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ppiankov/clearview/internal/cache"
	"github.com/ppiankov/clearview/internal/llm"
	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/route"
	"github.com/ppiankov/clearview/internal/search"
	"github.com/ppiankov/clearview/internal/sources"
	"github.com/ppiankov/clearview/internal/synth"
	"github.com/ppiankov/clearview/internal/worker"
)

// ErrNoProvider indicates no LLM provider is configured; nothing can be
// analysed without one.
var ErrNoProvider = errors.New("no LLM provider configured")

// Pipeline orchestrates the complete analysis process
type Pipeline struct {
	config      *model.Config
	cache       cache.Cache
	provider    llm.Provider
	analyzer    *llm.Analyzer
	synthesizer *llm.Synthesizer
	searcher    *search.Searcher
	router      *route.Router
	fetcher     *Fetcher
	fred        *sources.FRED
	logger      *log.Logger
}

// NewPipeline creates a pipeline with the given configuration. A missing or
// misconfigured LLM provider is not fatal here: health checks report it and
// Analyze returns ErrNoProvider.
func NewPipeline(cfg *model.Config) *Pipeline {
	logger := log.New(os.Stderr, "pipeline: ", log.LstdFlags)

	var provider llm.Provider
	if cfg.LLM.APIKey != "" || cfg.LLM.Provider == "ollama" {
		p, err := llm.NewProvider(llm.Config{
			Provider:   cfg.LLM.Provider,
			Model:      cfg.LLM.Model,
			SynthModel: cfg.LLM.SynthModel,
			APIKey:     cfg.LLM.APIKey,
			BaseURL:    cfg.LLM.BaseURL,
			Timeout:    cfg.LLM.Timeout,
			MaxTokens:  cfg.LLM.MaxTokens,
			HTTPProxy:  cfg.HTTP.HTTPProxy,
			HTTPSProxy: cfg.HTTP.HTTPSProxy,
			NoProxy:    cfg.HTTP.NoProxy,
		})
		if err != nil {
			logger.Printf("warning: failed to initialize LLM provider: %v", err)
		} else {
			provider = p
		}
	}

	client := sources.NewClient(cfg.HTTP)
	fred := sources.NewFRED(client, cfg.Keys.FRED)

	router := route.NewRouter(route.Connectors{
		FRED:          fred,
		WorldBank:     sources.NewWorldBank(client),
		Commodity:     sources.NewCommodity(client, fred),
		Eurostat:      sources.NewEurostat(client),
		EIA:           sources.NewEIA(client, cfg.Keys.EIA),
		Comtrade:      sources.NewComtrade(client),
		RESTCountries: sources.NewRESTCountries(client),
	}, log.New(os.Stderr, "route: ", log.LstdFlags))

	p := &Pipeline{
		config:  cfg,
		cache:   cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.MaxEntries),
		router:  router,
		fetcher: NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes),
		fred:    fred,
		logger:  logger,
	}

	if provider != nil {
		p.provider = provider
		p.analyzer = llm.NewAnalyzer(provider, cfg.LLM.Model)
		p.synthesizer = llm.NewSynthesizer(provider, cfg.LLM.SynthModel)
		if cfg.Search.Enabled {
			p.searcher = search.NewSearcher(provider, cfg.LLM.SynthModel)
		}
	}

	return p
}

// LLMReady reports whether an LLM provider is configured
func (p *Pipeline) LLMReady() bool { return p.provider != nil }

// FREDConfigured reports whether the FRED connector has an API key
func (p *Pipeline) FREDConfigured() bool { return p.fred.Configured() }

// AnalyzeRequest is one article to analyse
type AnalyzeRequest struct {
	ArticleText string
	Headline    string
	Source      string
}

// Analyze runs the full pipeline for one article. Identical article text
// (modulo surrounding whitespace) within the cache TTL returns the cached
// report with FromCache set and makes no external calls.
func (p *Pipeline) Analyze(ctx context.Context, req AnalyzeRequest) (*model.Report, error) {
	key := cache.ArticleKey(req.ArticleText)
	if data, found := p.cache.Get(key); found {
		var cached model.Report
		if err := json.Unmarshal(data, &cached); err == nil {
			p.logger.Printf("cache hit for article hash %s", cached.ArticleHash)
			cached.FromCache = true
			return &cached, nil
		}
		// Undecodable entries are dropped and recomputed
		_ = p.cache.Delete(key)
	}

	if p.provider == nil {
		return nil, ErrNoProvider
	}

	analysis, err := p.analyzer.Analyze(ctx, req.ArticleText, req.Headline, req.Source)
	if err != nil {
		return nil, err
	}

	p.logger.Printf("running %d validation queries", len(analysis.ValidationQueries))
	observations := p.validateClaims(ctx, analysis.ValidationQueries)

	results := p.synthesizeResults(ctx, analysis.ValidationQueries, observations)

	report := &model.Report{
		Status:              "success",
		FromCache:           false,
		ArticleHash:         cache.ArticleHash(req.ArticleText),
		Thesis:              analysis.Thesis,
		Claims:              analysis.Claims,
		ArgumentMap:         analysis.ArgumentMap,
		ImplicitAssumptions: analysis.ImplicitAssumptions,
		LogicalFlags:        analysis.LogicalFlags,
		ValidationResults:   results,
		Summary:             buildSummary(analysis, results),
	}

	if data, err := json.Marshal(report); err == nil {
		_ = p.cache.Set(key, data, p.config.Cache.TTL)
	}

	p.logger.Printf("analysis complete, hash %s", report.ArticleHash)
	return report, nil
}

// FetchArticle retrieves and extracts one article by URL
func (p *Pipeline) FetchArticle(ctx context.Context, url string) (*FetchResult, error) {
	return p.fetcher.Fetch(ctx, url)
}

// AnalyzeInput analyses one input, which is either an article URL or a
// local text file path.
func (p *Pipeline) AnalyzeInput(ctx context.Context, input string) (*model.Report, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		fetched, err := p.fetcher.Fetch(ctx, input)
		if err != nil {
			return nil, err
		}
		return p.Analyze(ctx, AnalyzeRequest{
			ArticleText: fetched.Text,
			Headline:    fetched.Headline,
			Source:      fetched.Source,
		})
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read article: %w", err)
	}
	return p.Analyze(ctx, AnalyzeRequest{ArticleText: string(data)})
}

// validationJob routes one query; the router guarantees it never fails,
// so GetError is always nil and sibling jobs are never disturbed.
type validationJob struct {
	query  model.ValidationQuery
	router *route.Router
}

type validationResult struct {
	query model.ValidationQuery
	obs   model.Observation
}

func (r *validationResult) GetError() error { return nil }

func (j *validationJob) Execute(ctx context.Context) worker.Result {
	return &validationResult{
		query: j.query,
		obs:   j.router.Execute(ctx, j.query),
	}
}

// validateClaims fans validation queries out over the worker pool and
// returns observations keyed by claim ID.
func (p *Pipeline) validateClaims(ctx context.Context, queries []model.ValidationQuery) map[string]model.Observation {
	observations := make(map[string]model.Observation, len(queries))
	if len(queries) == 0 {
		return observations
	}

	pool := worker.NewPool(p.config.Concurrency.ValidationWorkers)
	pool.Start()
	for _, q := range queries {
		pool.Submit(&validationJob{query: q, router: p.router})
	}
	for _, res := range pool.Wait() {
		vr := res.(*validationResult)
		observations[vr.query.ClaimID] = vr.obs
	}
	return observations
}

// synthJob produces the final validation result for one claim
type synthJob struct {
	p     *Pipeline
	query model.ValidationQuery
	obs   model.Observation
}

type synthResult struct {
	result model.ValidationResult
}

func (r *synthResult) GetError() error { return nil }

func (j *synthJob) Execute(ctx context.Context) worker.Result {
	return &synthResult{result: j.p.synthesizeOne(ctx, j.query, j.obs)}
}

// synthesizeResults turns observations into per-claim verdicts, running the
// synthesis calls concurrently. Claims whose queries produced no entry get
// an insufficient_data placeholder.
func (p *Pipeline) synthesizeResults(ctx context.Context, queries []model.ValidationQuery, observations map[string]model.Observation) []model.ValidationResult {
	pool := worker.NewPool(p.config.Concurrency.ValidationWorkers)
	pool.Start()

	submitted := make(map[string]bool, len(queries))
	for _, q := range queries {
		obs, ok := observations[q.ClaimID]
		if !ok || submitted[q.ClaimID] {
			continue
		}
		submitted[q.ClaimID] = true
		pool.Submit(&synthJob{p: p, query: q, obs: obs})
	}

	var results []model.ValidationResult
	for _, res := range pool.Wait() {
		results = append(results, res.(*synthResult).result)
	}

	// Placeholders for queries that never produced a result
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		seen[r.ClaimID] = true
	}
	for _, q := range queries {
		if seen[q.ClaimID] {
			continue
		}
		seen[q.ClaimID] = true
		results = append(results, model.ValidationResult{
			ClaimID: q.ClaimID,
			Status:  model.StatusInsufficientData,
			Summary: "No suitable data found in available sources for this claim.",
		})
	}
	return results
}

// synthesizeOne produces the verdict for a single claim, escalating failed
// structured lookups to tiered web search. A routed "skip" means no source
// fits the claim type, so it never escalates.
func (p *Pipeline) synthesizeOne(ctx context.Context, q model.ValidationQuery, obs model.Observation) model.ValidationResult {
	if !obs.Available {
		if obs.Error == "No suitable source" || p.searcher == nil {
			return model.ValidationResult{
				ClaimID: q.ClaimID,
				Status:  model.StatusInsufficientData,
				Summary: "No suitable data found in available sources.",
			}
		}

		p.logger.Printf("structured lookup failed for %s, trying web search", q.ClaimID)
		obs = p.searcher.Search(ctx, q.ClaimText, search.TierPrimary)
		if !obs.Available {
			obs = p.searcher.Search(ctx, q.ClaimText, search.TierNews)
		}
		if !obs.Available {
			return model.ValidationResult{
				ClaimID: q.ClaimID,
				Status:  model.StatusInsufficientData,
				Summary: "No suitable data found in available sources.",
			}
		}
	}

	// Web-search observations already carry their own narrative
	if obs.WebSearch && obs.Summary != "" {
		return model.ValidationResult{
			ClaimID:    q.ClaimID,
			Status:     synth.InferStatus(obs.Summary),
			Summary:    obs.Summary,
			SourceName: obs.Source,
			SourceURL:  obs.URL,
			SourceTier: obs.SourceTier,
			RawData:    map[string]interface{}{},
		}
	}

	summary, err := p.synthesizer.Synthesize(ctx, q.ClaimText, obs)
	if err != nil {
		p.logger.Printf("synthesis failed for %s: %v", q.ClaimID, err)
		// The retrieved data survives even without a narrative
		return model.ValidationResult{
			ClaimID:    q.ClaimID,
			Status:     model.StatusInsufficientData,
			Summary:    "Data retrieved but synthesis failed.",
			SourceName: obs.Source,
			SourceURL:  obs.URL,
			SourceTier: model.TierPrimaryData,
			SourceDate: obs.LatestDate,
			RawData:    model.SafeRawData(obs),
		}
	}

	return model.ValidationResult{
		ClaimID:    q.ClaimID,
		Status:     synth.InferStatus(summary),
		Summary:    summary,
		SourceName: obs.Source,
		SourceURL:  obs.URL,
		SourceTier: model.TierPrimaryData,
		SourceDate: obs.LatestDate,
		RawData:    model.SafeRawData(obs),
	}
}

// RenderJSON writes a report as indented JSON
func RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if path == "" || path == "-" {
		_, err = fmt.Println(string(data))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
