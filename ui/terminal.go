package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 60
	defaultWidth = 100
	clearScreen  = "\x1b[H\x1b[2J"
)

// TerminalUI writes coloured output to a file, normally os.Stdout. Colours,
// spinners and the terminal width are only used when the file is a TTY.
type TerminalUI struct {
	indentLevel int
	out         *os.File
	isTerminal  bool
	au          aurora.Aurora
}

func NewTerminalUI() *TerminalUI {
	return NewTerminalUIWithFile(os.Stdout, true)
}

// NewTerminalUIWithFile writes to f. colors only takes effect when f is a
// terminal.
func NewTerminalUIWithFile(f *os.File, colors bool) *TerminalUI {
	isTerminal := term.IsTerminal(int(f.Fd()))
	return &TerminalUI{
		out:        f,
		isTerminal: isTerminal,
		au:         aurora.NewAurora(colors && isTerminal),
	}
}

// IsTerminal reports whether the output is an interactive terminal.
func (u *TerminalUI) IsTerminal() bool {
	return u.isTerminal
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	default:
		return t.Text
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.writeLine(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.writeLine(u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.writeLine(u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.writeLine(u.au.Red(fmt.Sprintf(format, args...)).String())
}

// Section prints a title centred in a line of "=".
//
//	===================== Base Mainnet =====================
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := sectionWidth - runewidth.StringWidth(titled)
	if bars < 6 {
		bars = 6
	}
	left := bars / 2
	line := strings.Repeat("=", left) + titled + strings.Repeat("=", bars-left)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), u.au.Bold(line).String())
}

// KeyValue pads labels to the widest one so values line up.
func (u *TerminalUI) KeyValue(rows [][2]string) {
	maxLabel := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > maxLabel {
			maxLabel = w
		}
	}
	for _, r := range rows {
		pad := strings.Repeat(" ", maxLabel-runewidth.StringWidth(r[0]))
		u.writeLine(r[0] + pad + "  " + r[1])
	}
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	for _, line := range strings.Split(RenderTable(headers, rows), "\n") {
		if line != "" {
			u.writeLine(line)
		}
	}
}

// RenderTable draws a bordered table. Cell widths ignore ANSI escapes so
// styled cells stay aligned. When headers is empty no header row is drawn.
func RenderTable(headers []string, rows [][]string) string {
	ncols := len(headers)
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}
	if ncols == 0 {
		return ""
	}

	cellWidth := func(s string) int {
		return runewidth.StringWidth(ansi.Strip(s))
	}
	widths := make([]int, ncols)
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			if w := cellWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	border := func(s string) string { return borderStyle.Render(s) }
	dashes := make([]string, ncols)
	for i, w := range widths {
		dashes[i] = strings.Repeat("─", w+2)
	}
	renderRow := func(cells []string) string {
		parts := make([]string, ncols)
		for i := 0; i < ncols; i++ {
			val := ""
			if i < len(cells) {
				val = cells[i]
			}
			parts[i] = " " + val + strings.Repeat(" ", widths[i]-cellWidth(val)) + " "
		}
		return border("│") + strings.Join(parts, border("│")) + border("│")
	}

	var b strings.Builder
	b.WriteString(border("┌"+strings.Join(dashes, "┬")+"┐") + "\n")
	if len(headers) > 0 {
		b.WriteString(renderRow(headers) + "\n")
		b.WriteString(border("├"+strings.Join(dashes, "┼")+"┤") + "\n")
	}
	for _, row := range rows {
		b.WriteString(renderRow(row) + "\n")
	}
	b.WriteString(border("└"+strings.Join(dashes, "┴")+"┘") + "\n")
	return b.String()
}

func (u *TerminalUI) Spinner(msg string) func() {
	if !u.isTerminal {
		u.writeLine(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[SpinnerCharSet], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		// the spinner clears its line with \r only
		fmt.Fprintf(u.out, "\n")
	}
}

func (u *TerminalUI) Frame(content string) {
	if !u.isTerminal {
		fmt.Fprint(u.out, content)
		return
	}
	// raw mode turns off output post processing, so lines need \r\n
	content = strings.ReplaceAll(content, "\n", "\r\n")
	fmt.Fprint(u.out, clearScreen+content)
}

func (u *TerminalUI) Width() int {
	if !u.isTerminal {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(u.out.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func (u *TerminalUI) Indent() UI {
	return &TerminalUI{
		indentLevel: u.indentLevel + 1,
		out:         u.out,
		isTerminal:  u.isTerminal,
		au:          u.au,
	}
}

func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
