package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/artw-stylekit/internal/corpus"
	"github.com/pdiddy/artw-stylekit/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Compute the style profile of a corpus",
	Long: `Profile reads a corpus file and computes its stylistic statistics:
document lengths, vocabulary, sentence structure, citation habits and
recurring capitalized terms. The result is written as JSON and feeds every
prompt the generate commands build.`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().String("corpus", "", "corpus file (default data/corpus.jsonl)")
	profileCmd.Flags().String("out", "", "profile output file (default data/style_profile.json)")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	corpusPath, _ := cmd.Flags().GetString("corpus")
	if corpusPath == "" {
		corpusPath = cfg.CorpusPath()
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.ProfilePath()
	}

	printer.Info("Analyzing corpus: %s", corpusPath)
	docs, err := corpus.Load(corpusPath)
	if err != nil {
		return err
	}
	logger.Info("loaded corpus", "documents", len(docs), "path", corpusPath)

	p := profile.Analyze(docs)
	if err := profile.Save(out, p); err != nil {
		return err
	}

	printer.Success("Style profile saved to %s", out)
	printer.Detail("Documents", p.DocumentCount)
	printer.Detail("Avg length", formatFixed(p.AverageDocumentLength, 0)+" words")
	return nil
}
