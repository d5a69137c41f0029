//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	pte "github.com/tiagoavila/pte/types"
)

// The Screen draws the state of an Editor. It owns the terminal: NewScreen
// puts it into raw mode and Close restores it, so callers defer Close on
// every exit path.
type Screen struct {
	size pte.Size
}

func NewScreen() *Screen {
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e pte.Editor, c pte.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	lines := e.TextLines()
	for i, line := range lines {
		if i >= s.size.Rows-2 {
			break
		}
		x := 0
		for _, ch := range line {
			if x >= s.size.Cols {
				break
			}
			termbox.SetCell(x, i, ch, termbox.ColorWhite, termbox.ColorBlack)
			x += runewidth.RuneWidth(ch)
		}
	}
	for i := len(lines); i < s.size.Rows-2; i++ {
		termbox.SetCell(0, i, '~', termbox.ColorWhite, termbox.ColorBlack)
	}

	s.RenderInfoBar(e, c)
	s.RenderMessageBar(e, c)

	cursor := e.Cursor()
	termbox.SetCursor(displayColumn(lines, cursor), cursor.Row)
	termbox.Flush()
}

// displayColumn converts the cursor's byte column into a terminal cell
// column, accounting for double-width runes.
func displayColumn(lines []string, cursor pte.Point) int {
	if cursor.Row >= len(lines) {
		return 0
	}
	line := lines[cursor.Row]
	col := cursor.Col
	if col > len(line) {
		col = len(line)
	}
	return runewidth.StringWidth(line[:col])
}

func (s *Screen) RenderInfoBar(e pte.Editor, c pte.Commander) {
	cursor := e.Cursor()
	finalText := fmt.Sprintf(" %d,%d  %d bytes ", cursor.Row+1, cursor.Col, e.TextLength())
	text := " the pte editor "
	for len(text) < s.size.Cols-len(finalText)-1 {
		text = text + " "
	}
	text += finalText
	for x, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
}

func (s *Screen) RenderMessageBar(e pte.Editor, c pte.Commander) {
	var line string
	switch c.GetMode() {
	case pte.ModeLisp:
		line = c.GetLispText()
	default:
		line = c.GetMessage()
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

func (s *Screen) GetNextEvent() *pte.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
		return &pte.Event{Type: pte.EventResize}
	}
	return &pte.Event{
		Type: pte.EventKey,
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) pte.Key {
	switch k {
	case termbox.KeyArrowDown:
		return pte.KeyArrowDown
	case termbox.KeyArrowLeft:
		return pte.KeyArrowLeft
	case termbox.KeyArrowRight:
		return pte.KeyArrowRight
	case termbox.KeyArrowUp:
		return pte.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return pte.KeyBackspace2
	case termbox.KeyDelete:
		return pte.KeyDelete
	case termbox.KeyEnter:
		return pte.KeyEnter
	case termbox.KeyEsc:
		return pte.KeyEsc
	case termbox.KeySpace:
		return pte.KeySpace
	case termbox.KeyTab:
		return pte.KeyTab
	case termbox.KeyCtrlD:
		return pte.KeyCtrlD
	case termbox.KeyCtrlE:
		return pte.KeyCtrlE
	case termbox.KeyCtrlQ:
		return pte.KeyCtrlQ
	case termbox.KeyCtrlW:
		return pte.KeyCtrlW
	case termbox.KeyCtrlZ:
		return pte.KeyCtrlZ
	default:
		return pte.KeyUnsupported
	}
}
