package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lenderdesk/docsift/internal/schema"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "Inspect known document types and their schemas",
}

var schemasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known document types",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DOC TYPE\tTITLE")
		for _, id := range schema.DocTypeIDs() {
			fmt.Fprintf(w, "%s\t%s\n", id, schema.DocTypes[id])
		}
		return w.Flush()
	},
}

var schemasShowCmd = &cobra.Command{
	Use:   "show <doc-type-id>",
	Short: "Show the resolved schema for a document type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := schema.NewRegistry(cfg.Schema.Dir)
		s := registry.Load(args[0])

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	},
}

func init() {
	schemasCmd.AddCommand(schemasListCmd)
	schemasCmd.AddCommand(schemasShowCmd)
	rootCmd.AddCommand(schemasCmd)
}
