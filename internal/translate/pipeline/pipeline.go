// Package pipeline implements the Translation Pipeline (C7): one
// invocation translates one file by composing the language transformer
// (C3), the Residue Oracle (C5), the LLM Refinement Adapter (C4), and the
// Python syntactic validator (C6), in the ordering the original source's
// ExtendedSemanticEngine.transform_code drives per language.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/observability/logger"
	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang/csharp"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang/golang"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang/java"
	"github.com/catherinevee/gcpmigrate/internal/translate/lang/python"
	"github.com/catherinevee/gcpmigrate/internal/translate/pyvalidate"
	"github.com/catherinevee/gcpmigrate/internal/translate/residue"
	"github.com/catherinevee/gcpmigrate/pkg/models"
	"golang.org/x/time/rate"
)

var log = logger.New("pipeline")

// maxLLMRetries bounds the number of additional LLM refinement calls after
// the first, so at most 3 calls are ever made for one file (§4.7).
const maxLLMRetries = 2

// LLMRefiner is the subset of llm.Provider the pipeline depends on, kept
// as a local interface so this package does not import net/http-adjacent
// dependencies transitively for callers that never configure an LLM.
type LLMRefiner interface {
	Refine(ctx context.Context, sourceText string, serviceTag models.ServiceTag, targetProvider models.CloudProvider, retryHint bool) (string, bool)
}

// Pipeline translates one file at a time, composing C3 through C6.
type Pipeline struct {
	catalog *catalog.Catalog
	llm     LLMRefiner

	python *python.Transformer
	java   *java.Transformer
	golang *golang.Transformer
	csharp *csharp.Transformer

	fileBudget time.Duration

	// retryLimiter gates LLM retry calls (not first calls). One limiter is
	// shared by every file this Pipeline translates; its burst of
	// maxLLMRetries+1 tokens is spent first, after which retries are held to
	// one every two seconds. Grounded in the teacher's rate.Limiter-gated request shaping
	// (internal/api/middleware/ratelimit.go).
	retryLimiter *rate.Limiter
}

// New builds a Pipeline. llmProvider may be nil, in which case the
// pipeline degrades gracefully: Python and Go files skip the LLM
// refinement stage entirely.
func New(cat *catalog.Catalog, llmProvider LLMRefiner, fileBudget time.Duration) *Pipeline {
	return &Pipeline{
		catalog:      cat,
		llm:          llmProvider,
		python:       python.New(cat),
		java:         java.New(),
		golang:       golang.New(cat),
		csharp:       csharp.New(),
		fileBudget:   fileBudget,
		retryLimiter: rate.NewLimiter(rate.Every(2*time.Second), maxLLMRetries+1),
	}
}

// Result is the pipeline's output for one file.
type Result struct {
	FinalText string
	Renames   lang.VariableRenameMap
	Warning   string
}

// Translate runs one file through the pipeline. It never returns an
// error: every internal failure degrades to the best available text plus
// a warning, per §7's best-effort-strict error handling principle.
func (p *Pipeline) Translate(ctx context.Context, sourceText string, recipe lang.TransformationRecipe) Result {
	budget := p.fileBudget
	if budget <= 0 {
		budget = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	select {
	case <-ctx.Done():
		return Result{FinalText: sourceText, Renames: lang.VariableRenameMap{}, Warning: "pipeline budget exceeded before translation started"}
	default:
	}

	result := func() (res Result) {
		defer func() {
			if r := recover(); r != nil {
				log.Warn("transform failed, preserving original text", logger.Any("panic", r), logger.String("service", string(recipe.ServiceTag)))
				res = Result{FinalText: sourceText, Renames: lang.VariableRenameMap{}, Warning: fmt.Sprintf("transform failed, original text preserved: %v", r)}
			}
		}()
		return p.route(ctx, sourceText, recipe)
	}()

	select {
	case <-ctx.Done():
		return Result{FinalText: sourceText, Renames: lang.VariableRenameMap{}, Warning: "pipeline budget exceeded during translation"}
	default:
		return result
	}
}

func (p *Pipeline) route(ctx context.Context, sourceText string, recipe lang.TransformationRecipe) Result {
	switch recipe.Language {
	case models.LanguagePython:
		return p.translatePython(ctx, sourceText, recipe)
	case models.LanguageGo:
		return p.translateGo(ctx, sourceText, recipe)
	case models.LanguageJava:
		text, renames := p.java.Transform(sourceText, recipe)
		return Result{FinalText: text, Renames: renames}
	case models.LanguageCSharp:
		text, renames := p.csharp.Transform(sourceText, recipe)
		return Result{FinalText: text, Renames: renames}
	default:
		return Result{FinalText: sourceText, Renames: lang.VariableRenameMap{}, Warning: fmt.Sprintf("unrecognized source language %q", recipe.Language)}
	}
}

func (p *Pipeline) translatePython(ctx context.Context, sourceText string, recipe lang.TransformationRecipe) Result {
	code, renames := p.python.AggressiveCleanup(sourceText, recipe, lang.VariableRenameMap{})

	transformed, transformRenames := p.python.Transform(code, recipe)
	code = transformed
	renames = renames.Merge(transformRenames)

	code, renames = p.python.AggressiveCleanup(code, recipe, renames)

	var warning string
	if p.llm != nil {
		for attempt := 0; attempt <= maxLLMRetries; attempt++ {
			if !residue.HasSourceResidue(code, models.LanguagePython) {
				break
			}
			if attempt > 0 {
				_ = p.retryLimiter.Wait(ctx)
			}
			refined, ok := p.llm.Refine(ctx, code, recipe.ServiceTag, models.ProviderGCP, attempt > 0)
			if ok {
				code = refined
			}
			code, renames = p.python.AggressiveCleanup(code, recipe, renames)
		}
		if residue.HasSourceResidue(code, models.LanguagePython) {
			warning = "residue remains after exhausting LLM refinement retries"
			log.Warn(warning, logger.String("service", string(recipe.ServiceTag)))
		}
	}

	final := pyvalidate.ValidateOrRepair(code, sourceText)
	return Result{FinalText: final, Renames: renames, Warning: warning}
}

func (p *Pipeline) translateGo(ctx context.Context, sourceText string, recipe lang.TransformationRecipe) Result {
	code, renames := p.golang.Transform(sourceText, recipe)

	var warning string
	if p.llm != nil {
		for attempt := 0; attempt <= maxLLMRetries; attempt++ {
			if !residue.HasSourceResidue(code, models.LanguageGo) {
				break
			}
			if attempt > 0 {
				_ = p.retryLimiter.Wait(ctx)
			}
			refined, ok := p.llm.Refine(ctx, code, recipe.ServiceTag, models.ProviderGCP, attempt > 0)
			if ok {
				code = refined
			}
		}
		if residue.HasSourceResidue(code, models.LanguageGo) {
			warning = "residue remains after exhausting LLM refinement retries"
			log.Warn(warning, logger.String("service", string(recipe.ServiceTag)))
		}
	}

	return Result{FinalText: code, Renames: renames, Warning: warning}
}
