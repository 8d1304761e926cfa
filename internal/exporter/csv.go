package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/text/message"

	"FolioLens/internal/locale"
	"FolioLens/internal/model"
)

// ErrCSVWrite wraps every failure of the export step.
var ErrCSVWrite = errors.New("csv write failed")

// DirName is the default output subdirectory.
const DirName = "CSV_Files"

// CSVExporter writes one semicolon-delimited file per ticker.
type CSVExporter struct {
	Dir       string
	Formatter *Formatter
	Printer   *message.Printer
}

// NewCSVExporter creates an exporter writing into dir.
func NewCSVExporter(dir string, loc locale.Locale) *CSVExporter {
	return &CSVExporter{
		Dir:       dir,
		Formatter: NewFormatter(loc),
		Printer:   loc.Printer(),
	}
}

// DefaultDir returns CSV_Files next to the running executable.
func DefaultDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), DirName), nil
}

// Path returns the file the series for symbol is written to.
func (e *CSVExporter) Path(symbol string) string {
	return filepath.Join(e.Dir, fmt.Sprintf("%s_%s.csv", symbol, e.Formatter.Locale.FileSuffix))
}

// Header returns the localized column names, date first.
func (e *CSVExporter) Header() []string {
	p := e.Printer
	return []string{
		p.Sprintf(locale.MsgHeaderDate),
		p.Sprintf(locale.MsgHeaderOpen),
		p.Sprintf(locale.MsgHeaderHigh),
		p.Sprintf(locale.MsgHeaderLow),
		p.Sprintf(locale.MsgHeaderClose),
		p.Sprintf(locale.MsgHeaderVolume),
		p.Sprintf(locale.MsgHeaderDividend),
		p.Sprintf(locale.MsgHeaderSplits),
		p.Sprintf(locale.MsgHeaderReturn),
	}
}

// Record renders one derived row. The first row of a series has an empty
// daily return cell.
func (e *CSVExporter) Record(r model.DerivedRow) []string {
	f := e.Formatter
	ret := ""
	if r.HasReturn {
		ret = f.Percent(r.DailyReturn)
	}
	return []string{
		r.Time.Format("2006-01-02"),
		f.Number(r.Open),
		f.Number(r.High),
		f.Number(r.Low),
		f.Number(r.Close),
		f.Number(r.Volume),
		f.Number(r.Dividends),
		f.Number(r.StockSplits),
		ret,
	}
}

// Export ensures the output directory exists and writes the series.
// It returns the written path.
func (e *CSVExporter) Export(series *model.DerivedSeries) (string, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create directory: %v", ErrCSVWrite, err)
	}
	path := e.Path(series.Symbol)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCSVWrite, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	w.Comma = ';'
	if err := w.Write(e.Header()); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCSVWrite, err)
	}
	for _, r := range series.Rows {
		if err := w.Write(e.Record(r)); err != nil {
			return "", fmt.Errorf("%w: %v", ErrCSVWrite, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCSVWrite, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCSVWrite, err)
	}

	log.Printf("[INFO] exported %d rows to %s", len(series.Rows), path)
	return path, nil
}
