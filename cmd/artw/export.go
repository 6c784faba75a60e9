package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/artw-stylekit/internal/export"
	"github.com/pdiddy/artw-stylekit/internal/outline"
)

var exportDocxCmd = &cobra.Command{
	Use:   "export-docx",
	Short: "Export an outline as a DOCX article draft",
	Long: `Export-docx lays out an outline (JSON or YAML) as a Word document: title,
Turkish and English abstracts with keywords, the sections with their
subsections, and the bibliography. Sections without text get a writing brief
with the estimated length, key points and minimum citation count.

With --markdown the same draft is also written as Markdown for review.`,
	RunE: runExportDocx,
}

func init() {
	exportDocxCmd.Flags().String("outline", "", "outline file (default out/outline.json)")
	exportDocxCmd.Flags().String("out", "", "DOCX output file (default out/article_draft.docx)")
	exportDocxCmd.Flags().String("markdown", "", "also write a Markdown draft to this file")

	rootCmd.AddCommand(exportDocxCmd)
}

func runExportDocx(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("outline")
	if path == "" {
		path = cfg.OutPath("outline.json")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.OutPath("article_draft.docx")
	}

	o, err := outline.Load(path)
	if err != nil {
		return err
	}
	printer.Info("Building DOCX from outline...")
	if err := export.SaveDOCX(out, o); err != nil {
		return err
	}
	logger.Info("Document saved", "path", out)
	printer.Success("Document saved to %s", out)
	printer.Detail("Title", outline.Title(o))

	if md, _ := cmd.Flags().GetString("markdown"); md != "" {
		if err := writeText(md, outline.Markdown(o)); err != nil {
			return err
		}
		printer.Success("Markdown saved to %s", md)
	}
	return nil
}
