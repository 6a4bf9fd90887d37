package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/blockfall/internal/entity"
)

var (
	colorMuted      = lipgloss.Color("#636363")
	colorMutedLight = lipgloss.Color("#8C8C8C")
	colorWhite      = lipgloss.Color("#EEEEEE")
	colorAccent     = lipgloss.Color("#FFD700")
	colorDanger     = lipgloss.Color("#FF5252")
)

// pieceColors maps each piece to its well colour.
var pieceColors = map[entity.PieceType]lipgloss.Color{
	entity.I: lipgloss.Color("#00BFFF"),
	entity.J: lipgloss.Color("#FF9F1C"),
	entity.L: lipgloss.Color("#5B8DEF"),
	entity.O: lipgloss.Color("#FFD700"),
	entity.S: lipgloss.Color("#00E676"),
	entity.T: lipgloss.Color("#B388FF"),
	entity.Z: lipgloss.Color("#FF5252"),
}

const (
	glyphEmpty = ". "
	glyphGhost = "@ "
	glyphBlock = "[]"
)

var (
	styleEmpty = lipgloss.NewStyle().Foreground(colorMuted)
	styleGhost = lipgloss.NewStyle().Foreground(colorMutedLight)

	styleWell = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted)

	stylePanel = lipgloss.NewStyle().
			Padding(0, 2)

	stylePanelTitle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	stylePaused = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleStopped = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleFooterKey  = lipgloss.NewStyle().Foreground(colorWhite)
	styleFooterDesc = lipgloss.NewStyle().Foreground(colorMuted)
)

// pieceStyle returns the block style for a piece type.
func pieceStyle(piece entity.PieceType) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pieceColors[piece])
}
