package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/artw-stylekit/internal/citation"
	"github.com/pdiddy/artw-stylekit/internal/httputil"
	"github.com/pdiddy/artw-stylekit/internal/output"
)

var checkCitationsCmd = &cobra.Command{
	Use:   "check-citations <file>",
	Short: "Check APA 7 citations and figure captions in a draft",
	Long: `Check-citations reads a plain-text or Markdown draft and reports its
in-text citations, et al. usage to review, figure caption problems, and the
DOIs it mentions. With --check-dois each DOI is looked up on doi.org.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckCitations,
}

func init() {
	checkCitationsCmd.Flags().Bool("check-dois", false, "resolve each DOI against doi.org")
	checkCitationsCmd.Flags().Bool("strict", false, "exit with an error when issues are found")

	rootCmd.AddCommand(checkCitationsCmd)
}

func runCheckCitations(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading draft: %w", err)
	}
	checkDOIs, _ := cmd.Flags().GetBool("check-dois")
	ccfg := cfg.Citation(checkDOIs)

	report := citation.Check(string(data))

	printer.Header("In-text citations")
	printer.Detail("Found", len(report.Citations))
	for _, c := range report.Citations {
		printer.Print("  %s", c)
	}

	if len(report.DOIs) > 0 {
		printer.Header("DOIs")
		t := output.NewTable(printer.Out(), "DOI", "Status")
		checker := &citation.DOIChecker{
			Client:  httputil.NewClient(ccfg.HTTPConfig),
			Timeout: ccfg.Timeout,
			Logger:  logger,
		}
		for _, doi := range report.DOIs {
			status := "not checked"
			if ccfg.CheckDOIs {
				status = checker.Check(cmd.Context(), doi).String()
			}
			t.AddRow(doi, status)
		}
		if err := t.Render(); err != nil {
			return err
		}
	}

	if !report.HasIssues() {
		printer.Success("No issues found")
		return nil
	}
	printer.Header("Issues")
	for _, issue := range report.Issues {
		printer.Warning("%s", issue)
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		return fmt.Errorf("%d citation issue(s) found", len(report.Issues))
	}
	return nil
}
