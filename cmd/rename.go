package cmd

import (
	"fmt"
	"os"

	"mobius-kb/internal/config"
	"mobius-kb/internal/kb"
	"mobius-kb/internal/migrate"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Migrate article ids across the data file and page directory",
	Long: `Apply the standard id mapping table: rewrite ids, internal urls and
hotContent references in the data file, save it, then move each mapped
HTML page to its new filename with its data-id attribute updated, and
finally verify referential integrity.

The data file is saved before any page is touched, so an interrupted run
leaves the data file authoritative and can simply be re-run: already
moved pages are skipped with a warning.`,
	Run: runRenameCommand,
}

func runRenameCommand(cmd *cobra.Command, args []string) {
	mapping := migrate.Mapping(config.StandardIDMapping())
	if err := migrate.ValidateMapping(mapping); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("📋 mapping table has %d entries\n", len(mapping))

	db, err := kb.Load(dataFile)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	changed := migrate.RewriteIDs(db, mapping)
	fmt.Printf("🔄 rewrote %d record ids\n", changed)

	if err := kb.Save(dataFile, db); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("💾 saved %s\n", dataFile)

	report, err := migrate.RenameFiles(knowledgeDir, mapping)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("📊 renamed %d pages, %d entries had no page\n", report.Renamed, report.Skipped)

	if verbose {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Old ID", "New ID", "Renamed")
		for _, e := range report.Entries {
			status := "no"
			if e.Renamed {
				status = "yes"
			}
			table.Append(e.OldID, e.NewID, status)
		}
		if err := table.Render(); err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}
	}

	issues, err := migrate.Verify(db, knowledgeDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if len(issues) > 0 {
		fmt.Println("❌ integrity issues found:")
		printIssues(issues)
		fmt.Println("\n⚠️  migration completed with issues, review the list above")
		return
	}
	fmt.Println("✅ integrity verified, migration complete")
}

func printIssues(issues []migrate.Issue) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Kind", "ID", "Detail")
	for _, i := range issues {
		table.Append(i.Kind, i.ID, i.Detail)
	}
	if err := table.Render(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
