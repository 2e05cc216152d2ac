// formatkit - identify file formats from content.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	jsonOutput  bool
	yamlOutput  bool
	noRefine    bool
	maxReadSize int

	// List flags
	kindFilter string

	// Detect flags
	globPattern string
	recursive   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "formatkit",
	Short: "Identify file formats from content",
	Long: `formatkit identifies file formats by content, not extension.

It matches byte signatures against a catalog of formats and, for
generic containers like ZIP or Compound File Binary, inspects internal
structure to pin down the concrete sub-format.`,
	Version: fmt.Sprintf("%s (%s)", version, commit),
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "emit YAML")

	detectCmd.Flags().BoolVar(&noRefine, "no-refine", false, "skip container refinement")
	detectCmd.Flags().IntVar(&maxReadSize, "max-read", 0, "override signature sampling window in bytes")
	detectCmd.Flags().StringVar(&globPattern, "glob", "", "only detect files matching this glob (directories only)")
	detectCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recurse into directories")

	listCmd.Flags().StringVar(&kindFilter, "kind", "", "only list formats of this kind")

	rootCmd.AddCommand(detectCmd, listCmd, watchCmd)
}
