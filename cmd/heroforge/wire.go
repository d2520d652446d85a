package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/heroforge/heroforge-api/internal/clients/content"
	"github.com/heroforge/heroforge-api/internal/clients/generation"
	"github.com/heroforge/heroforge-api/internal/clients/ledger"
	"github.com/heroforge/heroforge-api/internal/config"
	"github.com/heroforge/heroforge-api/internal/engine"
	characterorch "github.com/heroforge/heroforge-api/internal/orchestrators/character"
	redisclient "github.com/heroforge/heroforge-api/internal/redis"
	"github.com/heroforge/heroforge-api/internal/registry"
	"github.com/heroforge/heroforge-api/internal/repositories/tokenindex"
	"github.com/heroforge/heroforge-api/internal/rules"
	charactersvc "github.com/heroforge/heroforge-api/internal/services/character"
)

// newService wires the full dependency graph from the environment. DevMode
// swaps the RPC ledger for an in-process chain; everything else is shared.
func newService() (charactersvc.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	generator, err := generation.New(&generation.Config{
		APIKey:     cfg.OpenAIAPIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		ChatModel:  cfg.ChatModel,
		ImageModel: cfg.ImageModel,
		Timeout:    cfg.GenTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	publisher, err := content.NewPinning(&content.PinningConfig{
		Endpoint: cfg.PinningEndpoint,
		Token:    cfg.PinningToken,
		Timeout:  cfg.PinTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create content publisher: %w", err)
	}

	var chain ledger.Client
	if cfg.DevMode {
		chain = ledger.NewMemory(&ledger.MemoryConfig{
			XPPerLevel:     cfg.XPPerLevel,
			EvolutionLevel: cfg.EvolutionLevel,
		})
	} else {
		chain, err = ledger.NewRPC(&ledger.RPCConfig{
			Endpoint: cfg.LedgerEndpoint,
			APIKey:   cfg.LedgerAPIKey,
			Timeout:  cfg.LedgerTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ledger client: %w", err)
		}
	}

	var index tokenindex.Repository
	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password: cfg.RedisPassword,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		index, err = tokenindex.NewRedis(&tokenindex.RedisConfig{Client: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create token index: %w", err)
		}
	}

	reg, err := registry.New(&registry.Config{
		Ledger: chain,
		Index:  index,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}

	return characterorch.New(&characterorch.Config{
		StatRoller: rules.NewStatRoller(),
		Generator:  generator,
		Publisher:  publisher,
		Ledger:     chain,
		Registry:   reg,
		Engine: engine.New(&engine.Config{
			XPPerLevel:     cfg.XPPerLevel,
			EvolutionLevel: cfg.EvolutionLevel,
		}),
		Index: index,
	})
}

// printJSON writes a value to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
