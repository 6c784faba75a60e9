package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdiddy/artw-stylekit/internal/output"
	"github.com/pdiddy/artw-stylekit/internal/profile"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// inspectTerms is the number of vocabulary terms listed by inspect.
const inspectTerms = 20

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show a summary of a style profile",
	Long: `Inspect prints the headline numbers of a style profile and its most
frequent terms. With --yaml the whole profile is printed as YAML instead.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("profile", "", "style profile file (default data/style_profile.json)")
	inspectCmd.Flags().Bool("yaml", false, "print the full profile as YAML")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("profile")
	if path == "" {
		path = cfg.ProfilePath()
	}
	p, err := profile.Load(path)
	if err != nil {
		return err
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		enc := yaml.NewEncoder(printer.Out())
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	}

	return printInspect(printer, p)
}

func printInspect(pr *output.Printer, p types.StyleProfile) error {
	num := message.NewPrinter(language.English)

	pr.Header("Style Profile Summary")
	pr.Detail("Documents", p.DocumentCount)
	pr.Detail("Avg doc length", formatFixed(p.AverageDocumentLength, 0)+" words")
	pr.Detail("Vocabulary size", num.Sprintf("%d", p.Vocabulary.UniqueTokens))
	pr.Detail("Lexical diversity", formatFixed(p.Vocabulary.LexicalDiversity, 3))
	pr.Detail("Avg sentence", formatFixed(p.SentenceStructure.AverageLength, 1)+" words")

	pr.Header("Top 20 Terms")
	t := output.NewTable(pr.Out(), "Term", "Frequency")
	for _, tc := range p.Vocabulary.TopWords.Top(inspectTerms) {
		t.AddRow(tc.Term, strconv.Itoa(tc.Count))
	}
	return t.Render()
}

func formatFixed(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}
