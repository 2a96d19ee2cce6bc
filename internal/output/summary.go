package output

import (
	"fmt"
	"io"

	"github.com/temirov/ctxbundle/internal/types"
	"github.com/temirov/ctxbundle/internal/utils"
)

const (
	bundleLocationFormat = "Bundle written to %s\n"
	summaryLineFormat    = "Summary: %d %s, %s"
	skippedSuffixFormat  = ", %d skipped (%d binary)"
	tokensSuffixFormat   = ", %d tokens"
	modelSuffixFormat    = " (model: %s)"
)

// FormatSummaryLine renders the entry count, bundle size and optional token estimate.
func FormatSummaryLine(summary types.BundleSummary) string {
	label := "entries"
	if summary.Entries == 1 {
		label = "entry"
	}
	line := fmt.Sprintf(summaryLineFormat, summary.Entries, label, utils.FormatFileSize(summary.Bytes))
	if skipped := summary.SkippedBinary + summary.SkippedOnError; skipped > 0 {
		line += fmt.Sprintf(skippedSuffixFormat, skipped, summary.SkippedBinary)
	}
	if summary.Tokens > 0 {
		line += fmt.Sprintf(tokensSuffixFormat, summary.Tokens)
		if summary.Model != "" {
			line += fmt.Sprintf(modelSuffixFormat, summary.Model)
		}
	}
	return line
}

// WriteSummary prints the bundle location followed by the summary line.
func WriteSummary(writer io.Writer, summary types.BundleSummary) error {
	if _, err := fmt.Fprintf(writer, bundleLocationFormat, summary.OutputPath); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer, FormatSummaryLine(summary))
	return err
}
