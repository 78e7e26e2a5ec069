package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flipclock/internal/face"
)

var colonRows = []string{" ", " ", "█", " ", "█", " ", " "}

// renderMain renders header, face and footer.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	body := m.renderFace()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if m.width > 0 && bodyHeight > 0 {
		body = lipgloss.Place(
			m.width,
			bodyHeight,
			lipgloss.Center,
			lipgloss.Center,
			body,
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderFace lays out the four cards, the colon, the period and the date.
func (m Model) renderFace() string {
	styles := m.theme.Styles()
	gap := styles.Background.Render("  ")

	hours := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCard(face.HoursTens), styles.Background.Render(" "), m.renderCard(face.HoursOnes))
	minutes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCard(face.MinutesTens), styles.Background.Render(" "), m.renderCard(face.MinutesOnes))
	colon := styles.Label.Render(strings.Join(colonRows, "\n"))
	period := styles.Label.Render(m.board.LabelText(face.PeriodID))

	row := lipgloss.JoinHorizontal(lipgloss.Center, hours, gap, colon, gap, minutes, gap, period)
	date := styles.Date.Render(m.board.LabelText(face.DateID))

	return lipgloss.JoinVertical(lipgloss.Center, row, "", date)
}

// renderCard draws one card: the top leaf, the hinge and the bottom leaf.
// A flipping card shows the incoming digit on top in the accent colour.
func (m Model) renderCard(slot face.Slot) string {
	styles := m.theme.Styles()
	state := m.board.CardState(slot.ElementID())
	topText, bottomText := state.Shown()

	rows := make([]string, 0, glyphHeight+1)
	for _, row := range topHalf(topText) {
		if state.Flipping {
			row = styles.CardFlipping.Render(row)
		}
		rows = append(rows, row)
	}
	rows = append(rows, styles.Hinge.Render(strings.Repeat("─", glyphWidth)))
	bottom := bottomHalf(bottomText)
	rows = append(rows, bottom[:]...)

	return styles.Card.Render(strings.Join(rows, "\n"))
}

// renderFooter renders the key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	footer := styles.Footer
	if m.width > 0 {
		footer = footer.Width(m.width)
	}
	return footer.Render(m.help.View(m.keys))
}
