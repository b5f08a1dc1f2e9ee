package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/leommxj/LawComparator/internal/matcher"
	"github.com/leommxj/LawComparator/internal/models"
)

// Theme holds the color scheme for the interactive matcher.
type Theme struct {
	Pinned  lipgloss.Color
	Deleted lipgloss.Color
	Added   lipgloss.Color
	Cursor  lipgloss.Color
	Hint    lipgloss.Color
	Border  lipgloss.Color
}

var defaultTheme = Theme{
	Pinned:  lipgloss.Color("#00D787"), // green
	Deleted: lipgloss.Color("#FF005F"), // red
	Added:   lipgloss.Color("#5FAFD7"), // light blue
	Cursor:  lipgloss.Color("#FFD700"), // gold
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
	Border:  lipgloss.Color("#3A3A3A"), // dark gray
}

func (t Theme) pinnedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Pinned)
}

func (t Theme) deletedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Deleted)
}

func (t Theme) cursorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Cursor).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

func (t Theme) paneStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(width).
		Padding(0, 1)
}

// assignment is the user's decision for one old-side clause.
type assignment struct {
	kind models.Status // matched or deleted
	new  int           // valid when kind == matched
}

// matchModel is the bubbletea model for the interactive matcher.
type matchModel struct {
	oldDoc *models.StatuteDoc
	newDoc *models.StatuteDoc

	cursor      int                // position in the old-side list
	pick        map[int]int        // proposed new index per old index
	assignments map[int]assignment // pinned decisions per old index
	added       map[int]bool       // explicit added markers, by new index

	input    textinput.Model
	entering bool

	outPath    string
	width      int
	theme      Theme
	saved      bool
	savedCount int
	quitting   bool
	err        error
}

// newMatchModel seeds the session: records from a previous compare run
// become the initial proposals, otherwise each old unit starts pointed at
// the same position on the new side.
func newMatchModel(oldDoc, newDoc *models.StatuteDoc, seed []models.MatchRecord, outPath string) matchModel {
	pick := make(map[int]int, len(oldDoc.Clauses))
	for _, c := range oldDoc.Clauses {
		if len(newDoc.Clauses) == 0 {
			break
		}
		j := c.Index
		if j >= len(newDoc.Clauses) {
			j = len(newDoc.Clauses) - 1
		}
		pick[c.Index] = j
	}
	for _, rec := range seed {
		if rec.Status == models.StatusMatched {
			pick[*rec.OldIndex] = *rec.NewIndex
		}
	}

	input := textinput.New()
	input.Placeholder = "new index"
	input.CharLimit = 6

	return matchModel{
		oldDoc:      oldDoc,
		newDoc:      newDoc,
		pick:        pick,
		assignments: make(map[int]assignment),
		added:       make(map[int]bool),
		input:       input,
		outPath:     outPath,
		width:       100,
		theme:       defaultTheme,
	}
}

func (m matchModel) Init() tea.Cmd {
	return nil
}

func (m matchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		if m.entering {
			return m.updateInput(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.oldDoc.Clauses)-1 {
				m.cursor++
			}

		case "left", "h":
			m.movePick(-1)

		case "right", "l":
			m.movePick(1)

		case "g":
			m.entering = true
			m.input.SetValue("")
			return m, m.input.Focus()

		case "enter":
			if j, ok := m.pick[m.cursor]; ok {
				m.assignments[m.cursor] = assignment{kind: models.StatusMatched, new: j}
			}

		case "d":
			m.assignments[m.cursor] = assignment{kind: models.StatusDeleted}

		case "a":
			if j, ok := m.pick[m.cursor]; ok {
				m.added[j] = !m.added[j]
			}

		case "u":
			delete(m.assignments, m.cursor)

		case "s":
			m.err = m.save()
			m.saved = m.err == nil
			return m, tea.Quit
		}
	}

	return m, nil
}

// updateInput handles the jump-to-index prompt.
func (m matchModel) updateInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if j, err := strconv.Atoi(strings.TrimSpace(m.input.Value())); err == nil &&
			j >= 0 && j < len(m.newDoc.Clauses) {
			m.pick[m.cursor] = j
		}
		m.entering = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.entering = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// movePick cycles the proposed new index, skipping units already pinned to
// another old clause.
func (m *matchModel) movePick(delta int) {
	j, ok := m.pick[m.cursor]
	if !ok {
		return
	}

	taken := make(map[int]bool, len(m.assignments))
	for oldIdx, a := range m.assignments {
		if a.kind == models.StatusMatched && oldIdx != m.cursor {
			taken[a.new] = true
		}
	}

	for range m.newDoc.Clauses {
		j += delta
		if j < 0 {
			j = len(m.newDoc.Clauses) - 1
		}
		if j >= len(m.newDoc.Clauses) {
			j = 0
		}
		if !taken[j] {
			m.pick[m.cursor] = j
			return
		}
	}
}

// save writes the pinned decisions as an override file.
func (m *matchModel) save() error {
	var overrides []models.ManualOverride

	oldIdxs := make([]int, 0, len(m.assignments))
	for i := range m.assignments {
		oldIdxs = append(oldIdxs, i)
	}
	sort.Ints(oldIdxs)

	for _, i := range oldIdxs {
		a := m.assignments[i]
		switch a.kind {
		case models.StatusMatched:
			overrides = append(overrides, models.ManualOverride{
				OldIndex: models.Int(i),
				NewIndex: models.Int(a.new),
			})
		case models.StatusDeleted:
			overrides = append(overrides, models.ManualOverride{
				OldIndex: models.Int(i),
				Status:   models.StatusDeleted,
			})
		}
	}

	newIdxs := make([]int, 0, len(m.added))
	for j, on := range m.added {
		if on {
			newIdxs = append(newIdxs, j)
		}
	}
	sort.Ints(newIdxs)
	for _, j := range newIdxs {
		overrides = append(overrides, models.ManualOverride{
			NewIndex: models.Int(j),
			Status:   models.StatusAdded,
		})
	}

	if err := matcher.ValidateOverrides(overrides, len(m.oldDoc.Clauses), len(m.newDoc.Clauses)); err != nil {
		return err
	}

	m.savedCount = len(overrides)
	return matcher.WriteOverrides(m.outPath, overrides)
}

func (m matchModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

const listWindow = 9

func (m matchModel) renderContent() string {
	if m.quitting || m.saved {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Manual matcher  %s ↔ %s\n\n", m.oldDoc.Path, m.newDoc.Path))

	// Old-side list, windowed around the cursor
	start := m.cursor - listWindow/2
	if start < 0 {
		start = 0
	}
	end := start + listWindow
	if end > len(m.oldDoc.Clauses) {
		end = len(m.oldDoc.Clauses)
	}

	for i := start; i < end; i++ {
		c := m.oldDoc.Clauses[i]
		line := fmt.Sprintf("%s %s", m.statusGlyph(i), clauseTitle(c))
		if i == m.cursor {
			line = m.theme.cursorStyle().Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	// Side-by-side panes for the unit under the cursor and its proposal
	paneWidth := (m.width - 8) / 2
	if paneWidth < 20 {
		paneWidth = 20
	}
	pane := m.theme.paneStyle(paneWidth)

	oldPane := pane.Render(m.renderOldPane())
	newPane := pane.Render(m.renderNewPane())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, oldPane, " ", newPane))
	b.WriteString("\n")

	if m.entering {
		b.WriteString("Jump to new index: " + m.input.View() + "\n")
	}

	b.WriteString(m.theme.hintStyle().Render(
		"↑/↓ select  ←/→ cycle proposal  g jump  enter pin  d deleted  a toggle added  u undo  s save  q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m matchModel) statusGlyph(oldIdx int) string {
	a, ok := m.assignments[oldIdx]
	if !ok {
		return " "
	}
	switch a.kind {
	case models.StatusDeleted:
		return m.theme.deletedStyle().Render("✗")
	default:
		return m.theme.pinnedStyle().Render("✓")
	}
}

func (m matchModel) renderOldPane() string {
	c := m.oldDoc.Clauses[m.cursor]
	header := fmt.Sprintf("原版 %s", clauseTitle(c))
	if a, ok := m.assignments[m.cursor]; ok && a.kind == models.StatusDeleted {
		header += m.theme.deletedStyle().Render("  [已删除]")
	}
	return header + "\n\n" + truncate(c.Body, 400)
}

func (m matchModel) renderNewPane() string {
	j, ok := m.pick[m.cursor]
	if !ok {
		return "新版\n\n(无候选条文)"
	}
	c := m.newDoc.Clauses[j]
	header := fmt.Sprintf("新版 %s (%d/%d)", clauseTitle(c), j+1, len(m.newDoc.Clauses))
	if a, pinned := m.assignments[m.cursor]; pinned && a.kind == models.StatusMatched && a.new == j {
		header += m.theme.pinnedStyle().Render("  [已固定]")
	}
	if m.added[j] {
		header += m.theme.pinnedStyle().Render("  [标记新增]")
	}
	return header + "\n\n" + truncate(c.Body, 400)
}

func clauseTitle(c models.ClauseUnit) string {
	if c.LabelText != "" {
		return c.LabelText
	}
	return fmt.Sprintf("#%d", c.Index)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
