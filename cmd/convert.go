package cmd

import (
	"fmt"
	"os"

	"mobius-kb/internal/kb"
	"mobius-kb/internal/site"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Rebuild existing article pages from the data file",
	Long: `Overwrite every HTML page in the knowledge directory that has a matching
record in the data file with the structured outline template. Pages
without a matching record are skipped and reported. Any hand-authored
page body is discarded; the page is rebuilt from record metadata only.`,
	Run: runConvertCommand,
}

func runConvertCommand(cmd *cobra.Command, args []string) {
	db, err := kb.Load(dataFile)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("Loaded %d records from %s\n", len(db.AllIDs()), dataFile)
	}

	report, err := site.Convert(db, knowledgeDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("🎉 converted %d pages", report.Converted)
	if len(report.Unmatched) > 0 {
		fmt.Printf(", %d without a record", len(report.Unmatched))
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
