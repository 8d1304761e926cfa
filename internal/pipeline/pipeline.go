package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log"

	"golang.org/x/text/message"

	"FolioLens/internal/calculator"
	"FolioLens/internal/chart"
	"FolioLens/internal/collector"
	"FolioLens/internal/locale"
	"FolioLens/internal/menu"
	"FolioLens/internal/model"
	"FolioLens/internal/report"
)

// ErrEmptyData is returned when the provider had nothing for a ticker.
var ErrEmptyData = errors.New("no data retrieved")

// ErrNoExporter is reported by Refresh when no exporter is configured.
var ErrNoExporter = errors.New("no exporter configured")

// Exporter writes a derived series and returns the file path.
type Exporter interface {
	Export(series *model.DerivedSeries) (string, error)
}

// Renderer draws a derived series as an image.
type Renderer interface {
	Render(series *model.DerivedSeries, w io.Writer) error
}

// RunConfig carries everything one process invocation needs.
// A nil Viewer or Renderer disables the chart step.
type RunConfig struct {
	Collector *collector.Collector
	Exporter  Exporter
	Renderer  Renderer
	Viewer    chart.Viewer
	Menu      *menu.Menu
	Locale    locale.Locale
	// InvalidSelection overrides the locale's default policy when set.
	InvalidSelection locale.SelectionPolicy
	Out              io.Writer
}

// Pipeline runs fetch, analyze, export and chart for one ticker at a time.
type Pipeline struct {
	cfg RunConfig
	p   *message.Printer
}

// New creates a Pipeline.
func New(cfg RunConfig) *Pipeline {
	if cfg.InvalidSelection == "" {
		cfg.InvalidSelection = cfg.Locale.InvalidSelection
	}
	return &Pipeline{cfg: cfg, p: cfg.Locale.Printer()}
}

func (pl *Pipeline) println(key string, args ...interface{}) {
	pl.p.Fprintf(pl.cfg.Out, key, args...)
	fmt.Fprintln(pl.cfg.Out)
}

// Analyze processes one ticker. Only ErrEmptyData aborts the run; export and
// chart failures are reported to the user and the remaining steps still run.
func (pl *Pipeline) Analyze(ticker string) (*model.SummaryStats, error) {
	out := pl.cfg.Out
	fmt.Fprintln(out)
	pl.println(locale.MsgProcessing, ticker)

	series := pl.cfg.Collector.Collect(ticker)
	if series.Empty() {
		pl.println(locale.MsgNoData, ticker)
		return nil, fmt.Errorf("%w for %s", ErrEmptyData, ticker)
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, report.FormatPreview(pl.p, series))

	derived, err := calculator.DailyReturns(series)
	if err != nil {
		return nil, err
	}
	stats, err := calculator.Summarize(series)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", ticker, err)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, report.FormatSummary(pl.p, pl.cfg.Collector.Years, stats))

	if pl.cfg.Exporter != nil {
		path, err := pl.cfg.Exporter.Export(derived)
		fmt.Fprintln(out)
		if err != nil {
			log.Printf("[ERROR] export %s: %v", ticker, err)
			pl.println(locale.MsgExportError, err)
		} else {
			pl.println(locale.MsgExported, path)
		}
	}

	if pl.cfg.Renderer != nil && pl.cfg.Viewer != nil {
		err := pl.cfg.Viewer.Show(func(w io.Writer) error {
			return pl.cfg.Renderer.Render(derived, w)
		})
		if err != nil {
			log.Printf("[ERROR] chart %s: %v", ticker, err)
			pl.println(locale.MsgChartError, err)
		}
	}
	return stats, nil
}

// Loop runs the interactive menu until the user stops or, under the
// terminate policy, makes an invalid choice.
func (pl *Pipeline) Loop() {
	m := pl.cfg.Menu
	for {
		ticker, err := m.Select()
		switch {
		case err == nil:
			if _, err := pl.Analyze(ticker); err != nil {
				log.Printf("[WARN] %v", err)
			}
		case errors.Is(err, menu.ErrInvalidSelection), errors.Is(err, menu.ErrInvalidTicker):
			log.Printf("[WARN] %v", err)
			if pl.cfg.InvalidSelection == locale.Terminate {
				fmt.Fprintln(pl.cfg.Out)
				pl.println(locale.MsgInvalidExit)
				return
			}
			continue
		default:
			// stdin closed or unreadable
			if err != io.EOF {
				log.Printf("[ERROR] read selection: %v", err)
			}
			fmt.Fprintln(pl.cfg.Out)
			pl.println(locale.MsgTerminated)
			return
		}

		if !m.AskAgain() {
			fmt.Fprintln(pl.cfg.Out)
			pl.println(locale.MsgTerminated)
			return
		}
	}
}

// Refresh exports each ticker once without charts. It returns the tickers
// that produced no data or failed to export.
func (pl *Pipeline) Refresh(tickers []string) []string {
	var failed []string
	for _, t := range tickers {
		series := pl.cfg.Collector.Collect(t)
		if series.Empty() {
			log.Printf("[WARN] refresh %s: %v", t, ErrEmptyData)
			failed = append(failed, t)
			continue
		}
		derived, err := calculator.DailyReturns(series)
		if err == nil {
			if pl.cfg.Exporter == nil {
				err = ErrNoExporter
			} else {
				_, err = pl.cfg.Exporter.Export(derived)
			}
		}
		if err != nil {
			log.Printf("[ERROR] refresh %s: %v", t, err)
			failed = append(failed, t)
		}
	}
	return failed
}
