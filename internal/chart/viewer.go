package chart

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/browser"
)

// Viewer displays a rendered chart and returns once the user has dismissed it.
type Viewer interface {
	Show(png func(w io.Writer) error) error
}

// SystemViewer writes the chart to a temporary PNG, opens it with the
// desktop's default image viewer and blocks until Enter is pressed.
// The temporary file is removed before Show returns.
type SystemViewer struct {
	In     *bufio.Reader
	Out    io.Writer
	Prompt string
	Open   func(path string) error
}

// NewSystemViewer creates a viewer reading the dismiss keystroke from in.
func NewSystemViewer(in *bufio.Reader, out io.Writer, prompt string) *SystemViewer {
	return &SystemViewer{In: in, Out: out, Prompt: prompt, Open: browser.OpenFile}
}

func (v *SystemViewer) Show(png func(w io.Writer) error) error {
	f, err := os.CreateTemp("", "foliolens-*.png")
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := png(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}

	if err := v.Open(path); err != nil {
		return fmt.Errorf("open chart viewer: %w", err)
	}
	fmt.Fprint(v.Out, v.Prompt)
	if _, err := v.In.ReadString('\n'); err != nil && err != io.EOF {
		log.Printf("[WARN] read chart dismiss: %v", err)
	}
	return nil
}
