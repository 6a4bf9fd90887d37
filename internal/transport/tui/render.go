package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/blockfall/internal/entity"
	"github.com/rocketscienceinc/blockfall/internal/rotation"
	"github.com/rocketscienceinc/blockfall/internal/usecase"
)

// renderCell draws one playfield cell as two terminal columns.
func renderCell(cell entity.Cell) string {
	switch {
	case cell.IsEmpty():
		return styleEmpty.Render(glyphEmpty)
	case cell.IsGhost():
		return styleGhost.Render(glyphGhost)
	default:
		return pieceStyle(cell.Piece()).Render(glyphBlock)
	}
}

func renderWell(rows [][]entity.Cell) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(renderCell(cell))
		}
		lines[i] = sb.String()
	}
	return styleWell.Render(strings.Join(lines, "\n"))
}

// renderPreview draws a piece in its spawn orientation inside a 2x4 box.
func renderPreview(piece entity.PieceType) string {
	var grid [2][4]string
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = "  "
		}
	}

	if piece.IsValid() {
		for _, cell := range rotation.Shape(piece, 0) {
			if cell.Row < len(grid) && cell.Col < len(grid[0]) {
				grid[cell.Row][cell.Col] = pieceStyle(piece).Render(glyphBlock)
			}
		}
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.Join(row[:], "")
	}
	return strings.Join(lines, "\n")
}

func renderPanel(snapshot usecase.Snapshot) string {
	sections := []string{stylePanelTitle.Render("Hold")}
	hold := renderPreview(snapshot.Hold)
	if snapshot.HoldLocked {
		hold = styleEmpty.Render(hold)
	}
	sections = append(sections, hold, "", stylePanelTitle.Render("Next"))

	for _, piece := range snapshot.Next {
		sections = append(sections, renderPreview(piece))
	}

	switch {
	case snapshot.Status.IsIdle():
		sections = append(sections, "", stylePaused.Render("PAUSED"))
	case snapshot.Status.IsStopped():
		sections = append(sections, "", styleStopped.Render("GAME OVER"))
	}

	return stylePanel.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderFooter(km KeyMap) string {
	parts := make([]string, 0, len(km.Bindings()))
	for _, binding := range km.Bindings() {
		help := binding.Help()
		parts = append(parts, styleFooterKey.Render(help.Key)+styleFooterDesc.Render(":"+help.Desc))
	}
	return strings.Join(parts, styleFooterDesc.Render("  "))
}

// Render draws the whole game screen for a snapshot.
func Render(snapshot usecase.Snapshot, km KeyMap) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, renderWell(snapshot.Rows), renderPanel(snapshot))
	return lipgloss.JoinVertical(lipgloss.Left, body, renderFooter(km))
}
