package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/listing-evaluator/backend/evaluator"
	"github.com/listing-evaluator/backend/generator"
	"github.com/listing-evaluator/backend/llm"
)

func newGenerateCmd() *cobra.Command {
	var output string
	var fullHTML bool
	var evaluate bool

	cmd := &cobra.Command{
		Use:   "generate <listing-json>",
		Short: "Generate a listing document from structured property data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args[0], output, fullHTML, evaluate)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Save output to file instead of stdout")
	cmd.Flags().BoolVar(&fullHTML, "html", false, "Wrap output in a complete UTF-8 HTML document")
	cmd.Flags().BoolVar(&evaluate, "evaluate", false, "Evaluate content quality after generation")

	return cmd
}

func runGenerate(ctx context.Context, inputPath, output string, fullHTML, evaluate bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("could not read input file %s: %w", inputPath, err)
	}

	client, err := llm.NewOpenRouterClient("")
	if err != nil {
		return err
	}

	gen, err := generator.New(client)
	if err != nil {
		return err
	}

	listing, err := gen.ParseListing(data)
	if err != nil {
		return err
	}

	var document string
	if fullHTML {
		document, err = gen.GenerateHTMLDocument(ctx, listing)
	} else {
		document, err = gen.Generate(ctx, listing)
	}
	if err != nil {
		return err
	}

	if summary, err := generator.Summarize(document); err == nil {
		log.Printf("Generated %d/7 blocks for %s (title: %q)", summary.BlocksPresent, listing.Location, summary.Title)
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(document), 0644); err != nil {
			return fmt.Errorf("could not write output file %s: %w", output, err)
		}
		log.Printf("Output saved to %s", output)
	} else {
		fmt.Println(document)
	}

	if evaluate {
		engine, err := evaluator.New(evaluator.DefaultConfig())
		if err != nil {
			return err
		}
		report := engine.Evaluate(document, evaluator.Language(listing.Language))
		fmt.Println()
		printReport(report, true)
	}

	return nil
}
