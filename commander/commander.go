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
package commander

import (
	"fmt"

	pte "github.com/tiagoavila/pte/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor   pte.Editor
	mode     int    // editor mode
	debug    bool   // debug mode displays information about events (key codes, etc)
	lispText string // lisp command as it is being typed
	message  string // status message
}

func NewCommander(e pte.Editor) *Commander {
	RegisterEditor(e)
	return &Commander{editor: e, mode: pte.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) ProcessEvent(event *pte.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case pte.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *pte.Event) error {
	switch c.mode {
	case pte.ModeEdit:
		return c.ProcessKeyEditMode(event)
	case pte.ModeLisp:
		return c.ProcessKeyLispMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *pte.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	if key != 0 {
		switch key {
		case pte.KeyEsc, pte.KeyCtrlQ:
			c.mode = pte.ModeQuit
		case pte.KeyCtrlE:
			c.mode = pte.ModeLisp
			c.lispText = "("
		case pte.KeyBackspace2:
			e.DeleteChar(pte.KeyBackspace2)
		case pte.KeyDelete:
			e.DeleteChar(pte.KeyDelete)
		case pte.KeyCtrlW:
			e.DeleteWord(pte.KeyBackspace2)
		case pte.KeyCtrlD:
			e.DeleteWord(pte.KeyDelete)
		case pte.KeyCtrlZ:
			e.Undo()
		case pte.KeyEnter:
			e.AddNewLine()
		case pte.KeySpace:
			e.AddChar(' ')
		case pte.KeyTab:
			e.AddChar(' ')
			for e.Cursor().Col%8 != 0 {
				e.AddChar(' ')
			}
		case pte.KeyArrowUp:
			e.MoveCursor(pte.MoveUp)
		case pte.KeyArrowDown:
			e.MoveCursor(pte.MoveDown)
		case pte.KeyArrowLeft:
			e.MoveCursor(pte.MoveLeft)
		case pte.KeyArrowRight:
			e.MoveCursor(pte.MoveRight)
		}
	}
	if ch != 0 {
		e.AddChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *pte.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case pte.KeyEsc:
			c.lispText = ""
			c.mode = pte.ModeEdit
		case pte.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.lispText = ""
			c.mode = pte.ModeEdit
		case pte.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case pte.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetMessage() string {
	return c.message
}
