package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"investbuddy/cmd"
	"investbuddy/internal/knowledge"
	"investbuddy/internal/logger"
)

func main() {
	root := &cobra.Command{
		Use:   "investbuddy",
		Short: "AI-powered investment assistant for beginners",
	}
	root.AddCommand(serveCmd(), reindexCmd(), quoteCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			if err := deps.QuoteWarmer.Start(); err != nil {
				return fmt.Errorf("failed to start quote warmer: %w", err)
			}

			return deps.ApiHandler.StartApi(deps.Config.Port)
		},
	}
}

func reindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the ETF embedding artifact from scratch",
		RunE: func(_ *cobra.Command, _ []string) error {
			// removing the artifact first forces a full rebuild even if
			// the content hash still matches
			deps, err := initWithoutArtifact()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			fmt.Printf("rebuilt embedding index with %d documents at %s\n",
				deps.Index.Size(), deps.Config.ArtifactPath)
			return nil
		},
	}
}

func initWithoutArtifact() (*cmd.Dependencies, error) {
	// the artifact path is only known after config loads, so peek at the
	// same env var the config layer reads
	path := os.Getenv("INVESTBUDDY_EMBEDDINGS_PATH")
	if path == "" {
		path = "etf_embeddings.msgpack"
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove embedding artifact: %w", err)
	}
	return cmd.InitializeDependencies()
}

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [symbols...]",
		Short: "Fetch live quotes for one or more symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			ctx := logger.AddToContext(context.Background(), logger.New())
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			for _, symbol := range args {
				q, err := deps.MarketData.GetStockPrice(ctx, symbol)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", symbol, err)
					continue
				}
				if err := enc.Encode(q); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "export",
		Short: "Export the ETF knowledge base as CSV",
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()

			entries := knowledge.All()
			if err := gocsv.MarshalFile(&entries, f); err != nil {
				return fmt.Errorf("failed to write csv: %w", err)
			}
			fmt.Printf("exported %d entries to %s\n", len(entries), out)
			return nil
		},
	}
	c.Flags().StringVar(&out, "out", "etf_knowledge.csv", "output file path")
	return c
}
