package chart

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"FolioLens/internal/locale"
	"FolioLens/internal/model"
)

func derived() *model.DerivedSeries {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return &model.DerivedSeries{
		Symbol: "TEST",
		Rows: []model.DerivedRow{
			{OHLCV: model.OHLCV{Time: day(2), Close: 100}},
			{OHLCV: model.OHLCV{Time: day(4), Close: 110}, DailyReturn: 10, HasReturn: true},
			{OHLCV: model.OHLCV{Time: day(6), Close: 99}, DailyReturn: -10, HasReturn: true},
		},
	}
}

func TestPoints_SkipsFirstReturn(t *testing.T) {
	price, returns := Points(derived())
	if len(price) != 3 {
		t.Fatalf("expected 3 price points, got %d", len(price))
	}
	if len(returns) != 2 {
		t.Fatalf("expected 2 return points, got %d", len(returns))
	}
	if returns[0].Y != 10 || returns[1].Y != -10 {
		t.Errorf("unexpected returns %v", returns)
	}
	if price[2].Y != 99 {
		t.Errorf("expected last close 99, got %v", price[2].Y)
	}
}

func TestRender_WritesPNG(t *testing.T) {
	for _, loc := range []locale.Locale{locale.English, locale.Spanish} {
		var buf bytes.Buffer
		if err := NewRenderer(loc, 5).Render(derived(), &buf); err != nil {
			t.Fatalf("%s: unexpected error: %v", loc.Name, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
			t.Errorf("%s: output is not a PNG", loc.Name)
		}
	}
}

func TestRender_SingleBar(t *testing.T) {
	s := &model.DerivedSeries{Symbol: "ONE", Rows: derived().Rows[:1]}
	var buf bytes.Buffer
	if err := NewRenderer(locale.English, 5).Render(s, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRender_Empty(t *testing.T) {
	if err := NewRenderer(locale.English, 5).Render(&model.DerivedSeries{}, io.Discard); err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestSystemViewer_BlocksAndCleansUp(t *testing.T) {
	var opened string
	var out bytes.Buffer
	v := NewSystemViewer(bufio.NewReader(strings.NewReader("\n")), &out, "close? ")
	v.Open = func(path string) error {
		opened = path
		if _, err := os.Stat(path); err != nil {
			t.Errorf("chart file missing while open: %v", err)
		}
		return nil
	}

	err := v.Show(func(w io.Writer) error {
		_, err := w.Write([]byte("png"))
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened == "" {
		t.Fatal("viewer was never opened")
	}
	if _, err := os.Stat(opened); !os.IsNotExist(err) {
		t.Errorf("expected temp chart removed, stat err = %v", err)
	}
	if out.String() != "close? " {
		t.Errorf("unexpected prompt %q", out.String())
	}
}

func TestSystemViewer_RenderError(t *testing.T) {
	v := NewSystemViewer(bufio.NewReader(strings.NewReader("")), io.Discard, "")
	v.Open = func(string) error {
		t.Error("viewer must not open when rendering fails")
		return nil
	}
	boom := errors.New("boom")
	if err := v.Show(func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}
}
