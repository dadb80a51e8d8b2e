package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/news-lens/internal/analysis"
	"github.com/DjordjeVuckovic/news-lens/internal/domain"
	"github.com/mattn/go-runewidth"
)

const titleWidth = 48

func WriteTable(res analysis.Result, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	a := res.Article
	fmt.Fprintf(tw, "\n=== Bias Analysis ===\n\n")
	fmt.Fprintf(tw, "Article\t#%d %s\n", a.ID, Truncate(a.Title, titleWidth*2))
	if a.Source != "" {
		fmt.Fprintf(tw, "Source\t%s\n", a.Source)
	}
	if a.URL != "" {
		fmt.Fprintf(tw, "URL\t%s\n", a.URL)
	}
	fmt.Fprintf(tw, "Bias score\t%s\n", score(a.BiasScore))
	fmt.Fprintf(tw, "Leaning\t%s\n", a.PoliticalLeaning)
	fmt.Fprintf(tw, "Emotional language\t%s\n", a.EmotionalLanguage)
	fmt.Fprintf(tw, "Factual reporting\t%s\n", a.FactualReporting)
	if res.Existing {
		fmt.Fprintf(tw, "Status\tpreviously analyzed\n")
	}

	if d := a.AnalysisDetails; d != nil {
		fmt.Fprintf(tw, "Topics\t%s\n", strings.Join(d.Topics, ", "))
		writeFindings(tw, d)
		writePhrases(tw, d)
	}

	if len(res.Steps) > 0 {
		writeSteps(tw, res.Steps)
	}

	if len(res.RelatedArticles) > 0 {
		writeRelated(tw, res.RelatedArticles)
	}

	if a.NeutralVersion != nil {
		fmt.Fprintf(tw, "\nNeutral version\n\n%s\n", *a.NeutralVersion)
	}

	return tw.Flush()
}

func writeFindings(tw *tabwriter.Writer, d *domain.BiasAnalysisDetails) {
	if len(d.KeyFindings) == 0 {
		return
	}
	fmt.Fprintf(tw, "\nKey findings\n\n")
	for _, f := range d.KeyFindings {
		fmt.Fprintf(tw, "- %s\n", f)
	}
}

func writePhrases(tw *tabwriter.Writer, d *domain.BiasAnalysisDetails) {
	if len(d.BiasedPhrases) == 0 {
		return
	}
	fmt.Fprintf(tw, "\nBiased phrases\n\n")
	writeRow(tw, "Original", "Neutral")
	writeSep(tw, 2)
	for _, p := range d.BiasedPhrases {
		writeRow(tw, p.Original, p.Neutral)
	}
}

func writeSteps(tw *tabwriter.Writer, steps []analysis.Step) {
	fmt.Fprintf(tw, "\nPipeline\n\n")
	writeRow(tw, "Step", "Origin", "Reason")
	writeSep(tw, 3)
	for _, s := range steps {
		writeRow(tw, s.Name, string(s.Origin), s.Reason)
	}
}

func writeRelated(tw *tabwriter.Writer, related []domain.RelatedArticle) {
	fmt.Fprintf(tw, "\nRelated coverage\n\n")
	writeRow(tw, "Source", "Score", "Main topic", "Published", "Title")
	writeSep(tw, 5)
	for _, ra := range related {
		writeRow(tw, ra.Source, score(ra.BiasScore), ra.MainTopic, ra.PublishedDate, Truncate(ra.Title, titleWidth))
	}
}

func writeRow(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func writeSep(tw *tabwriter.Writer, n int) {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}

func score(s *int) string {
	if s == nil {
		return "-"
	}
	return strconv.Itoa(*s) + "/100"
}

// Truncate shortens s to at most width terminal cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func WriteJSON(res analysis.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
