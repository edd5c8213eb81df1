package draw

import "github.com/charmbracelet/lipgloss"

// Surface is the target a frame is drawn onto: a canvas for shapes plus
// text overlays placed in terminal cells on top of it.
type Surface struct {
	Canvas *Canvas
	texts  []textItem
}

type textItem struct {
	col, row int
	text     string
}

// NewSurface creates a surface drawing in the given logical size.
func NewSurface(logicalW, logicalH float64) *Surface {
	return &Surface{Canvas: NewCanvas(logicalW, logicalH)}
}

// Text places text at a 1-based cell inside the drawing area.
// The text may carry ANSI styling.
func (s *Surface) Text(col, row int, text string) {
	if text == "" {
		return
	}
	s.texts = append(s.texts, textItem{col: max(col, 1), row: max(row, 1), text: text})
}

// TextCentered places text horizontally centered on the given row.
func (s *Surface) TextCentered(row int, text string) {
	s.Text((s.Canvas.Cols()-lipgloss.Width(text))/2+1, row, text)
}

// TextRight places text flush with the right edge, leaving margin cells.
func (s *Surface) TextRight(row, margin int, text string) {
	s.Text(s.Canvas.Cols()-lipgloss.Width(text)-margin+1, row, text)
}

// Texts returns the plain overlay strings in placement order.
func (s *Surface) Texts() []string {
	out := make([]string, len(s.texts))
	for i, t := range s.texts {
		out[i] = t.text
	}
	return out
}

func (s *Surface) reset() {
	s.Canvas.Clear()
	s.texts = s.texts[:0]
}

func (s *Surface) render(w *ChunkWriter) {
	s.Canvas.Render(w)
	s.Canvas.RenderBorder(w)
	offCol, offRow := s.Canvas.Offset()
	for _, t := range s.texts {
		w.MoveCursor(offCol+t.col, offRow+t.row)
		w.WriteString(t.text)
	}
}
