package cmd

import (
	"fmt"
	"os"

	"mobius-kb/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	dataFile     string
	knowledgeDir string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mobius-kb",
	Short: "Maintenance tools for the Mobius knowledge base",
	Long: `Mobius-KB maintains the static knowledge-base site: it rebuilds article
pages from the JSON data file, generates pages that are missing, and
migrates article ids across the data file and the page directory.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", config.DefaultDataFile, "Path to the articles JSON data file")
	rootCmd.PersistentFlags().StringVar(&knowledgeDir, "dir", config.DefaultKnowledgeDir, "Directory holding the article HTML pages")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
