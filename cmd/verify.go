package cmd

import (
	"fmt"
	"os"

	"mobius-kb/internal/kb"
	"mobius-kb/internal/migrate"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check data-file/page integrity without changing anything",
	Long: `Run the integrity checks on their own: every internal url must name its
record's id and point at an existing page, every hotContent reference
must resolve to an article, and every page's data-id attribute must
match its filename. Nothing is modified.`,
	Run: runVerifyCommand,
}

func runVerifyCommand(cmd *cobra.Command, args []string) {
	db, err := kb.Load(dataFile)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	issues, err := migrate.Verify(db, knowledgeDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if len(issues) > 0 {
		fmt.Printf("❌ %d integrity issues found:\n", len(issues))
		printIssues(issues)
		return
	}
	fmt.Println("✅ no integrity issues found")
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
