package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/lenderdesk/docsift/internal/llm"
	"github.com/lenderdesk/docsift/internal/store"
	"github.com/lenderdesk/docsift/pkg/claude"
)

// initStore opens and migrates the run store.
func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "init store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

// initProvider builds the Claude-backed document provider from config.
func initProvider() (*llm.Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := claude.New(cfg.Anthropic.Key,
		claude.WithRateLimit(cfg.Anthropic.RequestsPerSec, cfg.Anthropic.Burst),
	)
	if err != nil {
		return nil, eris.Wrap(err, "init claude client")
	}
	return llm.NewProvider(client,
		llm.WithModel(cfg.Anthropic.Model),
		llm.WithMaxTokens(cfg.Anthropic.MaxTokens),
	)
}
