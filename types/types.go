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
package types

// Editor modes
const (
	ModeEdit = 0
	ModeLisp = 1
	ModeQuit = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

type Key int

// Keys that the screen reports to the commander.
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace2
	KeyDelete
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyCtrlD
	KeyCtrlE
	KeyCtrlQ
	KeyCtrlW
	KeyCtrlZ
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// The Editor is the buffer engine: it owns the document text and the
// logical cursor, and exposes the mutations that the commander decodes
// from key events. Row/Col and the lines map are derived views; the
// byte offset returned by TextPosition is the source of truth.
type Editor interface {
	AddChar(c rune)
	DeleteChar(key Key)
	DeleteWord(key Key)
	AddNewLine()
	MoveCursor(direction int)
	Undo()

	Text() string
	TextLines() []string
	TextLength() int
	Cursor() Point
	TextPosition() int

	InsertText(text string, position int) error
	DeleteRange(start, end int) error
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetLispText() string
	GetMessage() string
}
