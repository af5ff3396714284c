package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/listing-evaluator/backend/evaluator"
)

func newEvaluateCmd() *cobra.Command {
	var language string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "evaluate <content-file>",
		Short: "Evaluate listing content quality and compliance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(args[0], language, verbose)
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "en", "Content language for SEO evaluation (en, pt, es)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed breakdown")

	return cmd
}

func runEvaluate(path, language string, verbose bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read content file %s: %w", path, err)
	}

	engine, err := evaluator.New(evaluator.DefaultConfig())
	if err != nil {
		return err
	}

	report := engine.Evaluate(string(content), evaluator.Language(language))
	printReport(report, verbose)

	return nil
}

func printReport(report *evaluator.Report, verbose bool) {
	fmt.Println("CONTENT QUALITY EVALUATION REPORT")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Overall Score: %d/100\n", report.OverallScore)

	switch {
	case report.OverallScore >= 80:
		fmt.Println("EXCELLENT - Content meets high quality standards")
	case report.OverallScore >= 60:
		fmt.Println("GOOD - Content meets basic quality standards")
	case report.OverallScore >= 40:
		fmt.Println("FAIR - Content needs some improvements")
	default:
		fmt.Println("POOR - Content needs significant improvements")
	}

	if !verbose {
		return
	}

	fmt.Println("\nReadability Metrics:")
	fmt.Printf("  Score: %.1f/100\n", report.Readability.Score)
	fmt.Printf("  Avg Words/Sentence: %.1f\n", report.Readability.AvgWordsPerSentence)
	fmt.Printf("  Total Words: %d\n", report.Readability.TotalWords)

	fmt.Println("\nSEO Analysis:")
	fmt.Printf("  Keywords Found: %d\n", report.Seo.KeywordCount)
	fmt.Printf("  Keyword Density: %.2f%%\n", report.Seo.KeywordDensity)
	fmt.Printf("  SEO Score: %d/100\n", report.Seo.Score)

	fmt.Println("\nCharacter Limits:")
	for _, section := range sortedKeys(report.CharacterLimits) {
		result := report.CharacterLimits[section]
		fmt.Printf("  %s: %s %s\n", section, passMark(result.Compliant), result.Status)
	}

	fmt.Println("\nStructure Compliance:")
	for _, block := range sortedStructureKeys(report.Structure) {
		fmt.Printf("  %s: %s\n", block, passMark(report.Structure[block]))
	}
}

func passMark(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func sortedKeys(m map[string]evaluator.LimitResult) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedStructureKeys(m evaluator.StructureResult) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
