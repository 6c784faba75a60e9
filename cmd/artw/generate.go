package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/artw-stylekit/internal/generate"
	"github.com/pdiddy/artw-stylekit/internal/outline"
	"github.com/pdiddy/artw-stylekit/internal/profile"
	"github.com/pdiddy/artw-stylekit/internal/prompt"
	"github.com/pdiddy/artw-stylekit/pkg/types"
)

// outlineMaxTokens bounds outline responses.
const outlineMaxTokens = 3000

var generateOutlineCmd = &cobra.Command{
	Use:   "generate-outline",
	Short: "Generate an article outline in the corpus style",
	Long: `Generate-outline renders the outline prompt for --topic from a style
profile, sends it to --model, and saves the returned outline as JSON.

Models are routed by name: gpt-*, o1*, o3* to OpenAI, gemini-* to Google,
claude-* to Anthropic. "mock", unknown names, or a missing API key produce a
fixed placeholder outline. A response that is not a valid outline is saved
verbatim with a warning.`,
	RunE: runGenerateOutline,
}

var generateSectionCmd = &cobra.Command{
	Use:   "generate-section",
	Short: "Generate the text of one article section",
	Long: `Generate-section renders the section prompt and writes the model's answer
to a Markdown file. With --outline, the estimated length, key points and
citation count are taken from the matching section of the outline unless
given as flags.`,
	RunE: runGenerateSection,
}

var generateReferencesCmd = &cobra.Command{
	Use:   "generate-references",
	Short: "Generate a candidate APA 7 bibliography for a topic",
	RunE:  runGenerateReferences,
}

func init() {
	for _, c := range []*cobra.Command{generateOutlineCmd, generateSectionCmd, generateReferencesCmd} {
		c.Flags().String("profile", "", "style profile file (default data/style_profile.json)")
		c.Flags().String("model", "", "model name (default: configured model, mock)")
	}

	generateOutlineCmd.Flags().String("topic", "", "article topic")
	generateOutlineCmd.Flags().String("out", "", "outline output file (default out/outline.json)")
	generateOutlineCmd.MarkFlagRequired("topic")

	generateSectionCmd.Flags().String("outline", "", "outline file to take section estimates from")
	generateSectionCmd.Flags().String("title", "", "article title (default: outline title)")
	generateSectionCmd.Flags().String("section", "", "section title")
	generateSectionCmd.Flags().Int("words", 0, "estimated words (default 500)")
	generateSectionCmd.Flags().StringSlice("points", nil, "key points to cover")
	generateSectionCmd.Flags().Int("citations", 0, "minimum citations (default 2)")
	generateSectionCmd.Flags().String("out", "", "section output file (default out/<section>.md)")
	generateSectionCmd.MarkFlagRequired("section")

	generateReferencesCmd.Flags().String("topic", "", "article topic")
	generateReferencesCmd.Flags().Int("min", prompt.DefaultMinReferences, "minimum number of references")
	generateReferencesCmd.Flags().String("out", "", "output file (default out/references.txt)")
	generateReferencesCmd.MarkFlagRequired("topic")

	rootCmd.AddCommand(generateOutlineCmd, generateSectionCmd, generateReferencesCmd)
}

func runGenerateOutline(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.OutPath("outline.json")
	}

	text, err := generateFor(cmd, prompt.Outline{Topic: topic}, outlineMaxTokens, true)
	if err != nil {
		return err
	}

	saved, err := outline.Save(out, text, logger)
	if err != nil {
		return err
	}
	if saved.Raw() {
		printer.Warning("Response not JSON, saved raw to %s", saved.Path)
		return nil
	}
	printer.Success("Outline saved to %s", saved.Path)
	printer.Detail("Title", saved.Outline.Title)
	printer.Detail("Sections", len(saved.Outline.Sections))
	return nil
}

func runGenerateSection(cmd *cobra.Command, args []string) error {
	req := prompt.Section{}
	req.SectionTitle, _ = cmd.Flags().GetString("section")
	req.ArticleTitle, _ = cmd.Flags().GetString("title")
	req.EstimatedWords, _ = cmd.Flags().GetInt("words")
	req.KeyPoints, _ = cmd.Flags().GetStringSlice("points")
	req.MinCitations, _ = cmd.Flags().GetInt("citations")

	if path, _ := cmd.Flags().GetString("outline"); path != "" {
		o, err := outline.Load(path)
		if err != nil {
			return err
		}
		if err := fillSection(&req, o); err != nil {
			return err
		}
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.OutPath(slug(req.SectionTitle) + ".md")
	}

	text, err := generateFor(cmd, req, generate.DefaultMaxTokens, false)
	if err != nil {
		return err
	}
	if err := writeText(out, text); err != nil {
		return err
	}
	printer.Success("Section saved to %s", out)
	return nil
}

func runGenerateReferences(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	minRefs, _ := cmd.Flags().GetInt("min")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.OutPath("references.txt")
	}

	text, err := generateFor(cmd, prompt.CitationList{Topic: topic, MinReferences: minRefs}, generate.DefaultMaxTokens, false)
	if err != nil {
		return err
	}
	if err := writeText(out, text); err != nil {
		return err
	}
	printer.Success("References saved to %s", out)
	return nil
}

// generateFor validates req, renders it against the profile named by the
// --profile flag and sends it to the --model gateway.
func generateFor(cmd *cobra.Command, req prompt.Request, maxTokens int, jsonMode bool) (string, error) {
	if err := prompt.Validate(req); err != nil {
		return "", err
	}

	profilePath, _ := cmd.Flags().GetString("profile")
	if profilePath == "" {
		profilePath = cfg.ProfilePath()
	}
	p, err := profile.Load(profilePath)
	if err != nil {
		return "", err
	}

	text, err := prompt.Render(req, p)
	if err != nil {
		return "", err
	}

	model, _ := cmd.Flags().GetString("model")
	gcfg := cfg.Generation(model, maxTokens)

	printer.Info("Generating %s with model %s", req.Kind(), gcfg.Model)

	ctx, cancel := context.WithTimeout(cmd.Context(), gcfg.Timeout)
	defer cancel()

	gw := generate.New(ctx, gcfg.AIConfig, logger)
	defer gw.Close()

	return gw.Generate(ctx, generate.Request{
		Prompt:      text,
		MaxTokens:   gcfg.MaxTokens,
		Temperature: gcfg.Temperature,
		JSONMode:    jsonMode,
	}), nil
}

// fillSection copies unset fields of req from the outline section with the
// same title.
func fillSection(req *prompt.Section, o *types.Outline) error {
	if req.ArticleTitle == "" {
		req.ArticleTitle = outline.Title(o)
	}
	for _, s := range o.Sections {
		if !strings.EqualFold(s.Title, req.SectionTitle) {
			continue
		}
		if req.EstimatedWords == 0 {
			req.EstimatedWords = s.EstimatedWords
		}
		if len(req.KeyPoints) == 0 {
			req.KeyPoints = s.KeyPoints
		}
		if req.MinCitations == 0 {
			req.MinCitations = s.RequiredCitations
		}
		return nil
	}
	return fmt.Errorf("section %q not found in outline", req.SectionTitle)
}

func writeText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// slug turns a section title into a file name.
func slug(title string) string {
	f := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !(r == '-' || r == '_' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r > 127)
	})
	if len(f) == 0 {
		return "section"
	}
	return strings.Join(f, "-")
}
