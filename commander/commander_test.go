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
	"testing"

	"github.com/tiagoavila/pte/editor"
	pte "github.com/tiagoavila/pte/types"
)

func setup(text string) (*editor.Editor, *Commander) {
	e := editor.NewEditor(text, 16)
	return e, NewCommander(e)
}

func typeKeys(c *Commander, text string) {
	for _, ch := range text {
		c.ProcessEvent(&pte.Event{Type: pte.EventKey, Ch: ch})
	}
}

func pressKey(c *Commander, key pte.Key) {
	c.ProcessEvent(&pte.Event{Type: pte.EventKey, Key: key})
}

func TestTypingReachesEditor(t *testing.T) {
	e, c := setup("Hello")
	typeKeys(c, ",")
	pressKey(c, pte.KeySpace)
	typeKeys(c, "world")
	if text := e.Text(); text != "Hello, world" {
		t.Errorf("Unexpected text: '%s'", text)
	}
}

func TestEditingKeys(t *testing.T) {
	e, c := setup("Hello")
	pressKey(c, pte.KeyBackspace2)
	pressKey(c, pte.KeyBackspace2)
	if text := e.Text(); text != "Hel" {
		t.Errorf("Unexpected text after backspace: '%s'", text)
	}
	pressKey(c, pte.KeyEnter)
	typeKeys(c, "lo")
	if text := e.Text(); text != "Hel\nlo" {
		t.Errorf("Unexpected text after enter: '%s'", text)
	}
	pressKey(c, pte.KeyArrowLeft)
	pressKey(c, pte.KeyArrowLeft)
	typeKeys(c, "x")
	if text := e.Text(); text != "Hel\nxlo" {
		t.Errorf("Unexpected text after arrows: '%s'", text)
	}
}

func TestDeleteWordKeys(t *testing.T) {
	e, c := setup("alpha beta")
	pressKey(c, pte.KeyCtrlW)
	if text := e.Text(); text != "alpha " {
		t.Errorf("Unexpected text after ctrl-w: '%s'", text)
	}
}

func TestQuitKeys(t *testing.T) {
	_, c := setup("")
	pressKey(c, pte.KeyCtrlQ)
	if c.GetMode() != pte.ModeQuit {
		t.Errorf("Expected quit mode, got %d", c.GetMode())
	}

	_, c = setup("")
	pressKey(c, pte.KeyEsc)
	if c.GetMode() != pte.ModeQuit {
		t.Errorf("Expected quit mode, got %d", c.GetMode())
	}
}

func TestLispMode(t *testing.T) {
	_, c := setup("")
	pressKey(c, pte.KeyCtrlE)
	if c.GetMode() != pte.ModeLisp {
		t.Errorf("Expected lisp mode, got %d", c.GetMode())
	}
	typeKeys(c, "+ 1 2)")
	if c.GetLispText() != "(+ 1 2)" {
		t.Errorf("Unexpected lisp text: '%s'", c.GetLispText())
	}
	pressKey(c, pte.KeyEnter)
	if c.GetMode() != pte.ModeEdit {
		t.Errorf("Expected edit mode after eval, got %d", c.GetMode())
	}
	if c.GetMessage() != "3" {
		t.Errorf("Unexpected eval result: '%s'", c.GetMessage())
	}
}

func TestLispEditorPrimitives(t *testing.T) {
	e, c := setup("Hello")
	if result := c.ParseEval("(buffer-length)"); result != "5" {
		t.Errorf("Unexpected buffer-length: '%s'", result)
	}
	if result := c.ParseEval(`(insert-text ", world" 5)`); result != `"Hello, world"` && result != "Hello, world" {
		t.Errorf("Unexpected insert-text result: '%s'", result)
	}
	if text := e.Text(); text != "Hello, world" {
		t.Errorf("Unexpected text after insert-text: '%s'", text)
	}
	c.ParseEval("(delete-range 5 12)")
	if text := e.Text(); text != "Hello" {
		t.Errorf("Unexpected text after delete-range: '%s'", text)
	}
	if result := c.ParseEval("(delete-range 5 100)"); len(result) < 3 || result[:3] != "ERR" {
		t.Errorf("Expected an error message, got '%s'", result)
	}
}
