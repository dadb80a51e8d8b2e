package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/news-lens/internal/ingest"
)

// WriteBatch prints one line per dataset row followed by a summary.
func WriteBatch(outcomes []ingest.Outcome, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Batch Analysis ===\n\n")
	writeRow(tw, "Line", "Status", "Article", "Score", "Leaning", "Related", "Title")
	writeSep(tw, 7)

	for _, o := range outcomes {
		line := strconv.Itoa(o.Row.Line)
		if o.Err != nil {
			writeRow(tw, line, "failed", "-", "-", "-", "-", Truncate(o.Err.Error(), titleWidth))
			continue
		}

		status := "analyzed"
		if o.Result.Existing {
			status = "existing"
		}
		a := o.Result.Article
		writeRow(tw,
			line,
			status,
			"#"+strconv.FormatInt(a.ID, 10),
			score(a.BiasScore),
			a.PoliticalLeaning,
			strconv.Itoa(len(o.Result.RelatedArticles)),
			Truncate(a.Title, titleWidth),
		)
	}

	failed := ingest.Failed(outcomes)
	fmt.Fprintf(tw, "\nRows\t%d\n", len(outcomes))
	fmt.Fprintf(tw, "Succeeded\t%d\n", len(outcomes)-failed)
	fmt.Fprintf(tw, "Failed\t%d\n", failed)

	return tw.Flush()
}
