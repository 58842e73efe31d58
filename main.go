package main

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/lightninglabs/ironthrone/catalog"
	"github.com/lightninglabs/ironthrone/catalogio"
	"github.com/lightninglabs/ironthrone/config"
	"github.com/lightninglabs/ironthrone/constraints"
	"github.com/lightninglabs/ironthrone/ironthrone"
	"github.com/lightninglabs/ironthrone/pretenders"
	"github.com/lightninglabs/ironthrone/tools"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	expressions, err := catalogio.LoadFile(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.CatalogPath), zap.Int("expressions", len(expressions)))

	engine := buildEngine(expressions, cfg.Steps)

	if cfg.WatchCatalog {
		watcher, err := catalogio.NewWatcher(cfg.CatalogPath, logger, func(reloaded []*catalog.Expression) {
			engine.ReplacePretenders([]pretenders.Pretender{pretenders.New(reloaded, 0)})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch catalog: %v\n", err)
			os.Exit(1)
		}
		defer watcher.Close()
		watcher.Start()
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ironthrone-mcp",
			Version: "0.1.0",
		},
		&mcp.ServerOptions{
			Instructions: "Claim-based natural-language " +
				"understanding over a configured catalog " +
				"of expressions. Parses free-text " +
				"utterances into typed entity claims with " +
				"a combined confidence score.",
		},
	)

	handler := tools.NewHandler(engine, logger)
	tools.RegisterAll(server, handler)

	if err := server.Run(
		context.Background(), &mcp.StdioTransport{},
	); err != nil {
		logger.Error("server error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// buildEngine constructs the standard Iron Throne pipeline: an
// ExpressionPretender over expressions, and the FullMatches, NoTwice,
// LargestClaim and ClaimScores constraints (AllowedSets is not included).
func buildEngine(expressions []*catalog.Expression, steps int) *ironthrone.Engine {
	ep := pretenders.New(expressions, 0)

	return ironthrone.New(
		[]pretenders.Pretender{ep},
		[]constraints.Constraint{
			constraints.FullMatches{},
			constraints.NoTwice{},
			constraints.LargestClaim{},
			constraints.ClaimScores{},
		},
		ironthrone.WithSteps(steps),
	)
}
