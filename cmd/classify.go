package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/lenderdesk/docsift/internal/docload"
	"github.com/lenderdesk/docsift/internal/extract"
)

var classifySource string

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Identify a document's type from its first page",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		provider, err := initProvider()
		if err != nil {
			return err
		}

		pages, err := docload.LoadPages(classifySource)
		if err != nil {
			return err
		}

		classification, err := extract.ClassifyDocument(ctx, provider, pages)
		if err != nil {
			return eris.Wrap(err, "classify")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(classification)
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifySource, "source", "", "page image file or directory (required)")
	_ = classifyCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(classifyCmd)
}
