package ui

import (
	"fmt"
	"strings"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/tranvictor/basewatch/common"
	"github.com/tranvictor/basewatch/dashboard"
	"github.com/tranvictor/basewatch/tracker"
)

// SpinnerCharSet is the briandowns/spinner character set used everywhere.
const SpinnerCharSet = 14

const (
	chartRows   = 6
	sliderWidth = 24
	cardWidth   = 22
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 1)
	cardValueStyles = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	}
	statusStyles = map[string]lipgloss.Style{
		"Live":         lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"Paused":       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"Disconnected": lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// ViewOptions controls the layout of a dashboard frame.
type ViewOptions struct {
	Width int
	// Tick advances the waiting animation, one frame per redraw.
	Tick int
}

// RenderDashboard draws one full frame of the dashboard from s.
func RenderDashboard(s dashboard.Snapshot, opts ViewOptions) string {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	sections := []string{renderHeader(s)}
	if s.Error != "" {
		sections = append(sections, errorStyle.Render(s.Error))
	}

	if len(s.Window) == 0 {
		frames := spinner.CharSets[SpinnerCharSet]
		frame := frames[opts.Tick%len(frames)]
		sections = append(sections, "", accentStyle.Render(frame)+" "+mutedStyle.Render("Waiting for new blocks..."), "")
		sections = append(sections, renderHelp())
		return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
	}

	sections = append(sections,
		renderWindowControl(s),
		renderCards(s, opts.Width),
		renderChart(s.Window),
		renderBlocks(s.Window),
		renderLatestTxs(s),
		renderHelp(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func renderHeader(s dashboard.Snapshot) string {
	label := s.StatusLabel()
	status := statusStyles[label].Render("● " + label)
	title := titleStyle.Render("Base Transaction Visualizer")
	subtitle := mutedStyle.Render("Real-time blockchain data from " + s.Network.GetDisplayName())
	return lipgloss.JoinVertical(lipgloss.Left, title+"   "+status, subtitle, "")
}

// WindowSlider renders the window size as a bar between the min and max
// sizes.
func WindowSlider(size int) string {
	span := dashboard.MaxWindowSize - dashboard.MinWindowSize
	filled := (size - dashboard.MinWindowSize) * sliderWidth / span
	if filled < 0 {
		filled = 0
	}
	if filled > sliderWidth {
		filled = sliderWidth
	}
	return fmt.Sprintf("%d %s%s %d",
		dashboard.MinWindowSize,
		accentStyle.Render(strings.Repeat("━", filled)),
		mutedStyle.Render(strings.Repeat("─", sliderWidth-filled)),
		dashboard.MaxWindowSize,
	)
}

func renderWindowControl(s dashboard.Snapshot) string {
	left := fmt.Sprintf("Blocks to Display: %d   %s", s.WindowSize, WindowSlider(s.WindowSize))
	right := fmt.Sprintf("Currently showing %s of %s tracked",
		accentStyle.Render(fmt.Sprintf("%d", len(s.Window))),
		common.FormatNumber(s.TotalTracked),
	)
	return boxStyle.Render(left + "      " + right)
}

func card(label, value, note string, valueStyle lipgloss.Style) string {
	lines := []string{mutedStyle.Render(label), valueStyle.Render(value)}
	if note != "" {
		lines = append(lines, mutedStyle.Render(note))
	}
	return boxStyle.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func renderCards(s dashboard.Snapshot, width int) string {
	m := s.Metrics
	cards := []string{
		card("Latest Block", "#"+common.FormatNumber(m.LatestBlock), "", cardValueStyles[0]),
		card("Network Utilization", common.OrDash(m.NetworkUtilization, "%.1f%%"), "Gas Used / Limit", cardValueStyles[1]),
		card("Total Transactions", common.FormatNumber(m.VisibleTotalTransactions),
			fmt.Sprintf("across %d blocks", m.Count), cardValueStyles[2]),
		card("Avg Block Time", common.OrDash(m.AvgBlockTime, "%.2fs"), "", cardValueStyles[3]),
		card("TPS", common.OrDash(m.TPS, "%.1f"), "", cardValueStyles[4]),
	}
	if width < len(cards)*(cardWidth+2) {
		top := lipgloss.JoinHorizontal(lipgloss.Top, cards[:3]...)
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...)
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// gasSeries returns gas used of window oldest first, 0 where it is unknown.
func gasSeries(window []tracker.BlockRecord) []float64 {
	values := make([]float64, len(window))
	for i, r := range window {
		values[len(window)-1-i] = r.GasUsed
	}
	return values
}

func renderChart(window []tracker.BlockRecord) string {
	chart := RenderGasChart(gasSeries(window), chartRows, 2)
	chartWidth := len(window)*3 - 1
	if chartWidth < 14 {
		chartWidth = 14
	}
	axis := "Older" + strings.Repeat(" ", chartWidth-len("Older")-len("Latest")) + "Latest"
	heading := "Gas Usage Trend  " + mutedStyle.Render(fmt.Sprintf("Last %d blocks", len(window)))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, chart, mutedStyle.Render(axis)))
}

// BlockRows renders window as table rows, newest first.
func BlockRows(window []tracker.BlockRecord) [][]string {
	rows := make([][]string, 0, len(window))
	for _, r := range window {
		gasUsed, gasPct := "—", "—"
		if r.HasGasUsed {
			gasUsed = r.GasUsedDisplay()
		}
		if u, ok := r.Utilization(); ok {
			gasPct = fmt.Sprintf("%.1f%%", u)
		}
		blockTime := "—"
		if r.BlockTime > 0 {
			blockTime = fmt.Sprintf("%ds", r.BlockTime)
		}
		rows = append(rows, []string{
			"#" + common.FormatNumber(r.Number),
			r.Timestamp,
			common.FormatNumber(r.TransactionCount),
			gasUsed,
			gasPct,
			blockTime,
		})
	}
	return rows
}

func renderBlocks(window []tracker.BlockRecord) string {
	headers := []string{"Block", "Time", "Txs", "Gas Used", "Gas %", "Block Time"}
	return strings.TrimRight(RenderTable(headers, BlockRows(window)), "\n")
}

func renderLatestTxs(s dashboard.Snapshot) string {
	if len(s.LatestTxs) == 0 {
		return mutedStyle.Render("No transactions in the latest block")
	}
	lines := []string{fmt.Sprintf("Transactions of block #%s", common.FormatNumber(s.Window[0].Number))}
	for _, tx := range s.LatestTxs {
		lines = append(lines, "  "+common.ShortHash(tx.Hash)+"  "+mutedStyle.Render(tx.URL))
	}
	return strings.Join(lines, "\n")
}

func renderHelp() string {
	return mutedStyle.Render("[m] mainnet  [t] testnet  [p] pause/resume  [+/-] blocks  [q] quit")
}
