package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/message"

	"FolioLens/internal/locale"
	"FolioLens/internal/model"
)

// PreviewRows is how many bars FormatPreview shows.
const PreviewRows = 5

// FormatPreview renders the first bars of a series as a fixed-width table.
func FormatPreview(p *message.Printer, series *model.PriceSeries) string {
	var b strings.Builder
	b.WriteString(p.Sprintf(locale.MsgSample, series.Symbol))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-10s %10s %10s %10s %10s %12s %9s %7s\n",
		p.Sprintf(locale.MsgHeaderDate), p.Sprintf(locale.MsgHeaderOpen), p.Sprintf(locale.MsgHeaderHigh),
		p.Sprintf(locale.MsgHeaderLow), p.Sprintf(locale.MsgHeaderClose), p.Sprintf(locale.MsgHeaderVolume),
		p.Sprintf(locale.MsgHeaderDividend), p.Sprintf(locale.MsgHeaderSplits)))

	n := len(series.Bars)
	if n > PreviewRows {
		n = PreviewRows
	}
	for _, bar := range series.Bars[:n] {
		b.WriteString(fmt.Sprintf("%-10s %10.2f %10.2f %10.2f %10.2f %12.0f %9.2f %7.2f\n",
			bar.Time.Format("2006-01-02"), bar.Open, bar.High, bar.Low, bar.Close,
			bar.Volume, bar.Dividends, bar.StockSplits))
	}
	return b.String()
}

// FormatSummary renders the summary statistics with two decimals.
func FormatSummary(p *message.Printer, years int, stats *model.SummaryStats) string {
	var b strings.Builder
	b.WriteString(p.Sprintf(locale.MsgTotalReturn, years, stats.TotalReturnPct))
	b.WriteString("\n")
	b.WriteString(p.Sprintf(locale.MsgAnnualReturn, stats.AnnualizedReturnPct))
	b.WriteString("\n")
	b.WriteString(p.Sprintf(locale.MsgGeoMean, stats.GeometricMeanClose))
	b.WriteString("\n")
	return b.String()
}
