// Package commands implements gcpmigrate's cobra subcommands, wiring the
// translation core (catalog, detect, llm, pipeline, plan, store) behind a
// CLI surface, in the shape of driftmgr's cmd/driftmgr/commands package.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/catherinevee/gcpmigrate/internal/config"
	"github.com/catherinevee/gcpmigrate/internal/translate/catalog"
	"github.com/catherinevee/gcpmigrate/internal/translate/llm"
	"github.com/catherinevee/gcpmigrate/internal/translate/pipeline"
)

var activeConfig *config.Config

// SetConfig is called once from the root command's PersistentPreRunE so
// every subcommand shares the same loaded configuration.
func SetConfig(cfg *config.Config) {
	activeConfig = cfg
}

func currentConfig() *config.Config {
	if activeConfig == nil {
		activeConfig = config.Default()
	}
	return activeConfig
}

// buildPipeline wires C1-C7 using the active configuration. The LLM
// adapter is constructed only when enabled; a missing credential leaves
// it in its graceful-degradation mode rather than failing CLI startup.
func buildPipeline(ctx context.Context) (*pipeline.Pipeline, *catalog.Catalog, error) {
	cfg := currentConfig()
	cat := catalog.New()

	var provider pipeline.LLMRefiner
	if cfg.LLM.Enabled {
		apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
		p, err := llm.NewGeminiProvider(ctx, apiKey, cfg.LLM.Model, cat, cfg.Pipeline.LLMTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("build llm provider: %w", err)
		}
		provider = p
	}

	budget := cfg.Pipeline.FileBudget
	if budget <= 0 {
		budget = 120 * time.Second
	}

	return pipeline.New(cat, provider, budget), cat, nil
}
