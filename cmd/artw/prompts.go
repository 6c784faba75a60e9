package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/artw-stylekit/internal/profile"
	"github.com/pdiddy/artw-stylekit/internal/prompt"
)

var savePromptsCmd = &cobra.Command{
	Use:   "save-prompts",
	Short: "Write the outline and citation prompts for a topic to a file",
	Long: `Save-prompts renders the outline and citation prompts for --topic from a
style profile into one text file, for pasting into any chat model.`,
	RunE: runSavePrompts,
}

func init() {
	savePromptsCmd.Flags().String("profile", "", "style profile file (default data/style_profile.json)")
	savePromptsCmd.Flags().String("topic", "", "article topic")
	savePromptsCmd.Flags().String("out", "", "output file (default out/prompts.txt)")
	savePromptsCmd.MarkFlagRequired("topic")

	rootCmd.AddCommand(savePromptsCmd)
}

func runSavePrompts(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if err := prompt.Validate(prompt.Outline{Topic: topic}); err != nil {
		return err
	}
	profilePath, _ := cmd.Flags().GetString("profile")
	if profilePath == "" {
		profilePath = cfg.ProfilePath()
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = cfg.OutPath("prompts.txt")
	}

	p, err := profile.Load(profilePath)
	if err != nil {
		return err
	}
	text, err := prompt.Bundle(topic, p)
	if err != nil {
		return err
	}
	if err := writeText(out, text); err != nil {
		return err
	}
	printer.Success("Prompts saved to %s", out)
	return nil
}
