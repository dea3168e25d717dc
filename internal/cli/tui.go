package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sgtmarmite/wtfcesko/pkg/registry"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listDetailStyle = lipgloss.NewStyle().Foreground(colorGray).PaddingLeft(2)
)

// defaultListHeight is the number of visible rows before the first resize.
const defaultListHeight = 15

// =============================================================================
// chartListModel - Interactive chart selection
// =============================================================================

// chartListModel is the bubbletea model behind "charts browse".
type chartListModel struct {
	Entries  []registry.Entry
	Acts     map[string]int
	Cursor   int
	Offset   int
	Height   int
	Device   style.Device
	Selected *registry.Entry
}

func newChartListModel(reg *registry.Registry) chartListModel {
	return chartListModel{
		Entries: reg.Entries(),
		Acts:    actNumbers(reg),
		Height:  defaultListHeight,
		Device:  style.Desktop,
	}
}

func (m chartListModel) Init() tea.Cmd {
	return nil
}

func (m chartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "m":
			if m.Device == style.Desktop {
				m.Device = style.Mobile
			} else {
				m.Device = style.Desktop
			}
		case "enter":
			if len(m.Entries) == 0 {
				return m, nil
			}
			e := m.Entries[m.Cursor]
			m.Selected = &e
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Title, help, detail lines and table borders.
		m.Height = max(msg.Height-10, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m chartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Charts"))
	b.WriteString("  ")
	b.WriteString(StyleValue.Render(m.Device.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  m mobile/desktop  ⏎ print config  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, e.Key, fmt.Sprintf("%d", m.Acts[e.Key]), string(e.Shape)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Chart", "Act", "Shape").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if len(m.Entries) > 0 {
		e := m.Entries[m.Cursor]
		b.WriteString(listDetailStyle.Render(e.Title))
		b.WriteString("\n")
		b.WriteString(listDetailStyle.Render(fmt.Sprintf("%s · %s.json", e.Source, e.Dataset)))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
