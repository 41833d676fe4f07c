package cmd

import (
	"fmt"
	"os"

	"mobius-kb/internal/kb"
	"mobius-kb/internal/site"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate article pages that are missing from the site",
	Long: `Compare the ids in the data file (articles and FAQs) against the HTML
files already present and write a page for every missing id, inserting
the record's content field verbatim. Existing pages are never touched.`,
	Run: runGenerateCommand,
}

func runGenerateCommand(cmd *cobra.Command, args []string) {
	db, err := kb.Load(dataFile)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	report, err := site.Generate(db, knowledgeDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("📋 discovered %d records, %d pages already exist, %d missing\n",
		report.Discovered, report.Existing, report.Missing)
	if report.Missing == 0 {
		fmt.Println("✅ all pages already exist")
		return
	}
	fmt.Printf("🎉 generated %d pages\n", report.Generated)
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
