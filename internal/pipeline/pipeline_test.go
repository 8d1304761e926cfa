package pipeline

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"FolioLens/internal/collector"
	"FolioLens/internal/exporter"
	"FolioLens/internal/locale"
	"FolioLens/internal/menu"
	"FolioLens/internal/model"
)

type fakeRenderer struct{ calls int }

func (r *fakeRenderer) Render(series *model.DerivedSeries, w io.Writer) error {
	r.calls++
	_, err := w.Write([]byte("png"))
	return err
}

type fakeViewer struct{ shown int }

func (v *fakeViewer) Show(png func(w io.Writer) error) error {
	v.shown++
	return png(io.Discard)
}

type failingExporter struct{}

func (failingExporter) Export(*model.DerivedSeries) (string, error) {
	return "", exporter.ErrCSVWrite
}

func testBars() []model.OHLCV {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	closes := []float64{100, 110, 99}
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, 2*i), Open: c, High: c, Low: c, Close: c, Volume: 1000}
	}
	return bars
}

type harness struct {
	dir      string
	out      *bytes.Buffer
	fetcher  *collector.MockFetcher
	renderer *fakeRenderer
	viewer   *fakeViewer
}

func newPipeline(t *testing.T, input string, bars []model.OHLCV, loc locale.Locale) (*Pipeline, *harness) {
	t.Helper()
	h := &harness{
		dir:      filepath.Join(t.TempDir(), exporter.DirName),
		out:      &bytes.Buffer{},
		fetcher:  &collector.MockFetcher{Bars: bars},
		renderer: &fakeRenderer{},
		viewer:   &fakeViewer{},
	}
	in := bufio.NewReader(strings.NewReader(input))
	pl := New(RunConfig{
		Collector: collector.NewCollector(h.fetcher, 5),
		Exporter:  exporter.NewCSVExporter(h.dir, loc),
		Renderer:  h.renderer,
		Viewer:    h.viewer,
		Menu:      menu.New(menu.DefaultOptions, in, h.out, loc),
		Locale:    loc,
		Out:       h.out,
	})
	return pl, h
}

func TestAnalyze_EndToEnd(t *testing.T) {
	pl, h := newPipeline(t, "", testBars(), locale.English)

	stats, err := pl.Analyze("TEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(stats.TotalReturnPct-(-1)) > 1e-9 {
		t.Errorf("expected total return -1.00, got %.6f", stats.TotalReturnPct)
	}
	if math.Abs(stats.GeometricMeanClose-102.88) > 0.01 {
		t.Errorf("expected geometric mean ~102.88, got %.4f", stats.GeometricMeanClose)
	}

	data, err := os.ReadFile(filepath.Join(h.dir, "TEST_5_years.csv"))
	if err != nil {
		t.Fatalf("expected csv file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(lines))
	}
	for i, want := range []string{";", ";10.00%", ";-10.00%"} {
		if !strings.HasSuffix(lines[i+1], want) {
			t.Errorf("row %d: expected suffix %q, got %q", i, want, lines[i+1])
		}
	}

	if h.renderer.calls != 1 || h.viewer.shown != 1 {
		t.Errorf("expected one chart, got render=%d show=%d", h.renderer.calls, h.viewer.shown)
	}
	out := h.out.String()
	for _, want := range []string{"Processing ticker: TEST", "Total return over 5 years: -1.00%", "Data successfully exported to"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyze_EmptyDataTouchesNothing(t *testing.T) {
	pl, h := newPipeline(t, "", nil, locale.English)

	if _, err := pl.Analyze("NOPE"); !errors.Is(err, ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
	if _, err := os.Stat(h.dir); !os.IsNotExist(err) {
		t.Errorf("output directory should not exist, stat err = %v", err)
	}
	if h.renderer.calls != 0 || h.viewer.shown != 0 {
		t.Errorf("no chart expected, got render=%d show=%d", h.renderer.calls, h.viewer.shown)
	}
	if !strings.Contains(h.out.String(), "No data retrieved for NOPE") {
		t.Errorf("expected user-facing message:\n%s", h.out.String())
	}
}

func TestAnalyze_ExportFailureStillCharts(t *testing.T) {
	pl, h := newPipeline(t, "", testBars(), locale.English)
	pl.cfg.Exporter = failingExporter{}

	if _, err := pl.Analyze("TEST"); err != nil {
		t.Fatalf("export failure must not abort the run: %v", err)
	}
	if h.viewer.shown != 1 {
		t.Errorf("expected chart after failed export, got %d", h.viewer.shown)
	}
	if !strings.Contains(h.out.String(), "Error exporting CSV") {
		t.Errorf("expected export error message:\n%s", h.out.String())
	}
}

func TestLoop_AnalyzeTwiceThenStop(t *testing.T) {
	pl, h := newPipeline(t, "1\ny\n6\ntest\nn\n", testBars(), locale.English)
	pl.Loop()

	if h.fetcher.Calls != 2 {
		t.Errorf("expected 2 fetches, got %d", h.fetcher.Calls)
	}
	for _, name := range []string{"VOO_5_years.csv", "TEST_5_years.csv"} {
		if _, err := os.Stat(filepath.Join(h.dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(h.out.String()), "Program terminated.") {
		t.Errorf("expected termination message:\n%s", h.out.String())
	}
}

func TestLoop_InvalidSelectionTerminates(t *testing.T) {
	pl, h := newPipeline(t, "9\n1\nn\n", testBars(), locale.English)
	pl.Loop()

	if h.fetcher.Calls != 0 {
		t.Errorf("expected no fetch after invalid choice, got %d", h.fetcher.Calls)
	}
	if !strings.Contains(h.out.String(), "Exiting program due to invalid selection.") {
		t.Errorf("expected exit message:\n%s", h.out.String())
	}
}

func TestLoop_InvalidSelectionContinues(t *testing.T) {
	pl, h := newPipeline(t, "9\n6\n\n2\nn\n", testBars(), locale.Spanish)
	pl.Loop()

	if h.fetcher.Calls != 1 {
		t.Errorf("expected one fetch after two invalid choices, got %d", h.fetcher.Calls)
	}
	if _, err := os.Stat(filepath.Join(h.dir, "FEZ_5_anos.csv")); err != nil {
		t.Errorf("expected Spanish export: %v", err)
	}
	if !strings.Contains(h.out.String(), "Programa finalizado.") {
		t.Errorf("expected Spanish termination:\n%s", h.out.String())
	}
}

func TestLoop_PolicyOverride(t *testing.T) {
	pl, h := newPipeline(t, "9\n", testBars(), locale.Spanish)
	pl.cfg.InvalidSelection = locale.Terminate
	pl.Loop()

	if !strings.Contains(h.out.String(), "Saliendo del programa") {
		t.Errorf("expected terminate policy to win:\n%s", h.out.String())
	}
}

func TestLoop_EOFEnds(t *testing.T) {
	pl, h := newPipeline(t, "", testBars(), locale.English)
	pl.Loop()
	if h.fetcher.Calls != 0 {
		t.Errorf("expected no fetch, got %d", h.fetcher.Calls)
	}
}

func TestRefresh(t *testing.T) {
	pl, h := newPipeline(t, "", testBars(), locale.English)
	if failed := pl.Refresh([]string{"VOO", "FEZ"}); len(failed) != 0 {
		t.Errorf("unexpected failures %v", failed)
	}
	if h.viewer.shown != 0 {
		t.Errorf("refresh must not chart, got %d", h.viewer.shown)
	}

	h.fetcher.Bars = nil
	if failed := pl.Refresh([]string{"GONE"}); len(failed) != 1 || failed[0] != "GONE" {
		t.Errorf("expected GONE to fail, got %v", failed)
	}
}

func TestRefresh_NoExporterFails(t *testing.T) {
	pl, _ := newPipeline(t, "", testBars(), locale.English)
	pl.cfg.Exporter = nil
	if failed := pl.Refresh([]string{"VOO", "FEZ"}); len(failed) != 2 {
		t.Errorf("expected both tickers to fail without an exporter, got %v", failed)
	}
}
