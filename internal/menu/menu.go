package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"FolioLens/internal/locale"
)

var (
	// ErrInvalidSelection is returned for a choice outside the menu.
	ErrInvalidSelection = errors.New("invalid menu selection")
	// ErrInvalidTicker is returned for an empty custom ticker.
	ErrInvalidTicker = errors.New("empty custom ticker")
)

// Option is one fixed menu entry.
type Option struct {
	Label  string `yaml:"label"`
	Ticker string `yaml:"ticker"`
}

// DefaultOptions is the Permanent Portfolio asset list.
var DefaultOptions = []Option{
	{Label: "Vanguard S&P 500 ETF (VOO)", Ticker: "VOO"},
	{Label: "EURO STOXX SPDR ETF (FEZ)", Ticker: "FEZ"},
	{Label: "Invesco Physical Gold ETC (8PSG.DE)", Ticker: "8PSG.DE"},
	{Label: "iShares EUR Govt. Bond 15-30y (IBCL.DE)", Ticker: "IBCL.DE"},
	{Label: "iShares US Treasury Bond 0-1y (IB01.L)", Ticker: "IB01.L"},
}

// Menu reads ticker selections from a line-oriented input.
type Menu struct {
	Options     []Option
	In          *bufio.Reader
	Out         io.Writer
	Printer     *message.Printer
	Affirmative string
}

// New creates a menu for the given locale.
func New(options []Option, in *bufio.Reader, out io.Writer, loc locale.Locale) *Menu {
	return &Menu{
		Options:     options,
		In:          in,
		Out:         out,
		Printer:     loc.Printer(),
		Affirmative: loc.Affirmative,
	}
}

func (m *Menu) readLine() (string, error) {
	line, err := m.In.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) printf(key string, args ...interface{}) {
	m.Printer.Fprintf(m.Out, key, args...)
}

// Select shows the options and reads one choice. The custom entry is always
// numbered len(Options)+1. An io.EOF on input is returned as is.
func (m *Menu) Select() (string, error) {
	fmt.Fprintln(m.Out)
	m.printf(locale.MsgWelcome)
	fmt.Fprintln(m.Out)
	m.printf(locale.MsgSelectAsset)
	fmt.Fprintln(m.Out)
	for i, o := range m.Options {
		fmt.Fprintf(m.Out, "%d. %s\n", i+1, o.Label)
	}
	custom := len(m.Options) + 1
	fmt.Fprintf(m.Out, "%d. %s\n", custom, m.Printer.Sprintf(locale.MsgCustomOption))
	m.printf(locale.MsgChoicePrompt)

	choice, err := m.readLine()
	if err != nil {
		return "", err
	}

	n, convErr := strconv.Atoi(choice)
	switch {
	case convErr == nil && n >= 1 && n <= len(m.Options):
		return m.Options[n-1].Ticker, nil
	case convErr == nil && n == custom:
		m.printf(locale.MsgTickerPrompt)
		ticker, err := m.readLine()
		if err != nil {
			return "", err
		}
		ticker = strings.ToUpper(ticker)
		if ticker == "" {
			return "", ErrInvalidTicker
		}
		return ticker, nil
	default:
		m.printf(locale.MsgInvalidOption)
		fmt.Fprintln(m.Out)
		return "", fmt.Errorf("%w: %q", ErrInvalidSelection, choice)
	}
}

// AskAgain asks whether to analyze another asset. Only the locale's
// affirmative answer returns true.
func (m *Menu) AskAgain() bool {
	fmt.Fprintln(m.Out)
	m.printf(locale.MsgAgainPrompt)
	answer, err := m.readLine()
	if err != nil {
		return false
	}
	return strings.ToLower(answer) == m.Affirmative
}
