package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// reservedLines is the space taken by the viewer header and footer.
const reservedLines = 4

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	fileStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// DisplayRuns prints the runs table; it never needs scrolling.
func (t *TUI) DisplayRuns(ctx context.Context, runs []m.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(t.output, renderRunsTable(runs))

	return err
}

// DisplayStepComparison prints a coloured status line.
func (t *TUI) DisplayStepComparison(ctx context.Context, leftStepID, rightStepID int64, result m.StepComparison) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := renderStepComparison(leftStepID, rightStepID, result)
	if result.ContainsChanges {
		line = removedStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
	} else {
		line = addedStyle.Render(strings.TrimSuffix(line, "\n")) + "\n"
	}

	_, err := fmt.Fprint(t.output, line)

	return err
}

// DisplayRunDiff shows the coloured diff, in a scrollable viewer when it does
// not fit the terminal.
func (t *TUI) DisplayRunDiff(ctx context.Context, diff m.RunDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newDiffViewerModel(diff.Diff)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run diff viewer: %w", err)
	}

	return nil
}

// diffViewerModel is the Bubble Tea model of the scrollable diff viewer.
type diffViewerModel struct {
	content  string
	lines    int
	stats    DiffStats
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	quitting bool
}

func newDiffViewerModel(diff string) diffViewerModel {
	return diffViewerModel{
		content: colorizeDiff(diff),
		lines:   strings.Count(diff, "\n"),
		stats:   CountDiff(diff),
	}
}

func (dm diffViewerModel) Init() tea.Cmd {
	return nil
}

func (dm diffViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		dm.width = msg.Width
		dm.height = msg.Height

		if !dm.ready {
			dm.viewport = viewport.New(msg.Width, dm.bodyHeight())
			dm.viewport.SetContent(dm.content)
			dm.ready = true
		} else {
			dm.viewport.Width = msg.Width
			dm.viewport.Height = dm.bodyHeight()
		}

		return dm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			dm.quitting = true
			return dm, tea.Quit
		case "g", "home":
			dm.viewport.GotoTop()
			return dm, nil
		case "G", "end":
			dm.viewport.GotoBottom()
			return dm, nil
		}
	}

	if !dm.ready {
		return dm, nil
	}

	var cmd tea.Cmd
	dm.viewport, cmd = dm.viewport.Update(msg)

	return dm, cmd
}

func (dm diffViewerModel) View() string {
	if dm.quitting {
		return ""
	}

	if !dm.ready {
		return "Loading diff...\n"
	}

	var b strings.Builder

	b.WriteString(dm.header())
	b.WriteString("\n\n")
	b.WriteString(dm.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • pgup/pgdn page • g/G top/bottom • q quit",
		dm.viewport.ScrollPercent()*100)))

	return b.String()
}

func (dm diffViewerModel) staticView() string {
	if dm.lines == 0 {
		return "No test cases to compare\n"
	}

	return dm.header() + "\n\n" + dm.content
}

func (dm diffViewerModel) header() string {
	return titleStyle.Render(fmt.Sprintf("%d test case(s)", dm.stats.Hunks)) + "  " +
		addedStyle.Render(fmt.Sprintf("+%d", dm.stats.Added)) + " " +
		removedStyle.Render(fmt.Sprintf("-%d", dm.stats.Removed))
}

func (dm diffViewerModel) bodyHeight() int {
	body := dm.height - reservedLines
	if body < 1 {
		return 1
	}

	return body
}

// needsPagination returns true if the diff is too long to fit on screen.
func (dm diffViewerModel) needsPagination() bool {
	return dm.height > 0 && dm.lines > dm.bodyHeight()
}

// colorizeDiff styles unified diff lines by their marker.
func colorizeDiff(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")

	var b strings.Builder

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "--- "), strings.HasPrefix(line, "+++ "):
			b.WriteString(fileStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			b.WriteString(markerStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedStyle.Render(line))
		default:
			b.WriteString(line)
		}

		b.WriteByte('\n')
	}

	return b.String()
}
