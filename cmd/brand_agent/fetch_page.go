package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-auditor/internal/fetch"
)

var fetchPageCmd = &cobra.Command{
	Use:   "fetch-page",
	Short: "Fetch a brand guideline page and save its text",
	Long:  "Fetches one guideline page (using the database-backed page cache when DATABASE_URL is set), extracts its main text with platform-aware selectors, and writes it to a file for later extraction.",
	RunE:  runFetchPage,
}

var (
	fetchPageURL        string
	fetchPageOutputFile string
	fetchPageUseBrowser bool
	fetchPageVerbose    bool
)

func init() {
	fetchPageCmd.Flags().StringVarP(&fetchPageURL, "url", "u", "", "URL of the guideline page (required)")
	fetchPageCmd.Flags().StringVarP(&fetchPageOutputFile, "out", "o", "", "Path to output text file (required)")
	fetchPageCmd.Flags().BoolVar(&fetchPageUseBrowser, "use-browser", false, "Use a headless browser for script-rendered brand portals")
	fetchPageCmd.Flags().BoolVarP(&fetchPageVerbose, "verbose", "v", false, "Print fetch details")

	if err := fetchPageCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := fetchPageCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(fetchPageCmd)
}

func runFetchPage(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if fetchPageVerbose {
		platform := fetch.DetectPlatform(fetchPageURL)
		_, _ = fmt.Fprintf(os.Stderr, "Detected platform: %s\n", platform)
	}

	text, err := fetchGuidelineText(ctx, fetchPageURL, fetchPageUseBrowser, fetchPageVerbose)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("no text extracted from %s", fetchPageURL)
	}

	if err := os.WriteFile(fetchPageOutputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Fetched %d characters\n", len(text))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", fetchPageOutputFile)

	return nil
}
