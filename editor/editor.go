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

// Package editor implements the text buffer engine: a piece table for
// document storage, two temporary buffers that batch keystrokes before
// they become piece-table mutations, and the Editor that coordinates
// them and maps the logical cursor offset to a row and column.
package editor

import (
	"log"
	"strings"
	"unicode/utf8"

	pte "github.com/tiagoavila/pte/types"
)

// The Editor manages the editing of text in a PieceTable.
//
// textPosition, a byte offset into the effective document, is the single
// source of truth for the cursor; the (row, col) point and the lines map
// are derived from it. At most one of the two temporary buffers is
// non-empty at any time: deletions flush pending insertions and
// insertions flush pending deletions.
type Editor struct {
	content      *PieceTable
	addBuffer    *AddBuffer
	deleteBuffer *DeleteBuffer

	textPosition    int
	cursor          pte.Point
	rightMostColumn int
	linesMap        []int
}

// NewEditor creates an editor over the given initial text. The cursor
// starts at the end of the text. bufferCapacity bounds how many bytes
// either temporary buffer may hold before it must be persisted.
func NewEditor(text string, bufferCapacity int) *Editor {
	e := &Editor{
		content:      NewPieceTable(text),
		addBuffer:    NewAddBuffer(bufferCapacity, len(text)),
		deleteBuffer: NewDeleteBuffer(bufferCapacity),
		textPosition: len(text),
	}
	e.updateLinesMap()
	e.syncCursor()
	e.rightMostColumn = e.cursor.Col
	return e
}

// AddChar absorbs one typed character into the add buffer, persisting
// pending deletions first so the insertion lands at a settled position.
func (e *Editor) AddChar(c rune) {
	if !e.deleteBuffer.IsEmpty() {
		e.persistDeleteBuffer()
	}
	if e.addBuffer.IsEmpty() {
		e.addBuffer.UpdatePosition(e.textPosition)
	}

	result, err := e.addBuffer.AddChar(c)
	if err != nil {
		// The flush discipline keeps the buffer from filling between
		// persists; a full buffer here means the keystroke is dropped.
		log.Printf("add buffer: %v", err)
		return
	}

	n := utf8.RuneLen(c)
	e.textPosition += n
	e.cursor.Col += n
	e.rightMostColumn = e.cursor.Col

	if result == MustPersist {
		e.PersistAddBuffer(true)
	}
	e.updateLinesMap()
}

// DeleteChar deletes one character: the one before the cursor for
// backspace, the one under it for the delete key. Both keys are no-ops
// at the start of the document. A backspace that undoes
// the most recent pending keystroke edits the add buffer in place and
// never touches the piece table.
func (e *Editor) DeleteChar(key pte.Key) {
	if e.textPosition == 0 {
		return
	}
	switch key {
	case pte.KeyBackspace2:
		if !e.addBuffer.IsEmpty() && e.addBuffer.IsCursorOnBuffer(e.textPosition-1) {
			e.addBuffer.DeleteChar()
			e.textPosition--
			e.cursor.Col--
			e.rightMostColumn = e.cursor.Col
			e.updateLinesMap()
			return
		}
	case pte.KeyDelete:
		if e.textPosition >= e.TextLength() {
			return
		}
	default:
		return
	}

	// The deletion is routed to the delete buffer, which may only be
	// non-empty while the add buffer is empty.
	e.PersistAddBuffer(true)

	result, err := e.deleteBuffer.AddChar(e.textPosition, key)
	if err != nil {
		log.Printf("delete buffer: %v", err)
		return
	}
	if result == NoChange && !e.deleteBuffer.IsEmpty() {
		// The range could not be extended; flush it and start over.
		e.persistDeleteBuffer()
		result, _ = e.deleteBuffer.AddChar(e.textPosition, key)
	}
	if result == NoChange {
		return
	}
	if result == MustPersist {
		e.persistDeleteBuffer()
	}
	if key == pte.KeyBackspace2 {
		e.textPosition--
	}
	e.updateLinesMap()
	e.syncCursor()
	e.rightMostColumn = e.cursor.Col
}

// DeleteWord deletes from the cursor to the nearest word boundary:
// leftward for backspace, rightward for the delete key. Word scanning
// needs a settled view of the document, so both buffers are flushed
// before the range is computed.
func (e *Editor) DeleteWord(key pte.Key) {
	e.PersistAddBuffer(true)
	if !e.deleteBuffer.IsEmpty() {
		e.persistDeleteBuffer()
		e.updateLinesMap()
	}

	result, err := e.deleteBuffer.DeleteWord(e.Text(), e.textPosition, key)
	if err != nil {
		log.Printf("delete buffer: %v", err)
		return
	}
	if result == NoChange {
		return
	}

	if key == pte.KeyBackspace2 {
		if start, _, ok := e.deleteBuffer.Range(); ok {
			e.textPosition = start
			e.addBuffer.UpdatePosition(start)
		}
	}
	if result == MustPersist {
		e.persistDeleteBuffer()
	}
	e.updateLinesMap()
	e.syncCursor()
	e.rightMostColumn = e.cursor.Col
}

// MoveCursor dispatches a move direction to the bounded move methods.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case pte.MoveLeft:
		e.MoveCursorLeft()
	case pte.MoveRight:
		e.MoveCursorRight()
	case pte.MoveUp:
		e.MoveCursorUp()
	case pte.MoveDown:
		e.MoveCursorDown()
	}
}

func (e *Editor) MoveCursorLeft() {
	if e.textPosition == 0 {
		return
	}
	e.textPosition--
	e.afterMoveCursor()
	e.rightMostColumn = e.cursor.Col
}

func (e *Editor) MoveCursorRight() {
	if e.textPosition >= e.TextLength() {
		return
	}
	e.textPosition++
	e.afterMoveCursor()
	e.rightMostColumn = e.cursor.Col
}

// MoveCursorUp moves the cursor one line up, keeping the remembered
// right-most column when the target line is long enough.
func (e *Editor) MoveCursorUp() {
	if e.cursor.Row == 0 {
		return
	}
	e.moveCursorToRow(e.cursor.Row - 1)
}

func (e *Editor) MoveCursorDown() {
	if e.cursor.Row >= len(e.linesMap)-1 {
		return
	}
	e.moveCursorToRow(e.cursor.Row + 1)
}

func (e *Editor) moveCursorToRow(row int) {
	col := e.rightMostColumn
	if lineLength := e.linesMap[row]; col > lineLength {
		col = lineLength
	}
	e.cursor = pte.Point{Row: row, Col: col}

	// Recompute the logical offset from the line map: every line above
	// the cursor contributes its length plus a newline.
	position := 0
	for _, lineLength := range e.linesMap[:row] {
		position += lineLength + 1
	}
	e.textPosition = position + col

	e.persistChanges()
	e.addBuffer.UpdatePosition(e.textPosition)
	e.updateLinesMap()
}

// AddNewLine inserts a line break at the cursor. Newlines bypass the add
// buffer and go straight to the piece table, after both buffers flush.
func (e *Editor) AddNewLine() {
	e.persistChanges()
	if err := e.content.Insert("\n", e.textPosition); err != nil {
		log.Printf("piece table: %v", err)
		return
	}
	e.textPosition++
	e.cursor.Row++
	e.cursor.Col = 0
	e.rightMostColumn = 0
	e.addBuffer.UpdatePosition(e.textPosition)
	e.updateLinesMap()
}

// Undo is a placeholder; the piece table keeps every byte ever inserted,
// but no change journal is recorded yet.
// TODO: record (position, length, source) journal entries during
// persists so Undo can replay them.
func (e *Editor) Undo() {
}

// Text returns the effective document: the piece-table text with the one
// pending temporary edit applied. The flush discipline guarantees the
// two buffers are never both non-empty.
func (e *Editor) Text() string {
	content := e.content.Text()
	if !e.addBuffer.IsEmpty() {
		position := e.addBuffer.Position()
		if position > len(content) {
			position = len(content)
		}
		return content[:position] + e.addBuffer.Text() + content[position:]
	}
	if start, end, ok := e.deleteBuffer.Range(); ok {
		if end > len(content) {
			end = len(content)
		}
		if start <= end {
			return content[:start] + content[end:]
		}
	}
	return content
}

// TextLines splits the effective document on newlines.
func (e *Editor) TextLines() []string {
	return strings.Split(e.Text(), "\n")
}

// TextLength is the effective document length in bytes, pending edits
// included.
func (e *Editor) TextLength() int {
	length := e.content.TotalLength() + e.addBuffer.Len()
	if start, end, ok := e.deleteBuffer.Range(); ok {
		length -= end - start
	}
	return length
}

func (e *Editor) Cursor() pte.Point {
	return e.cursor
}

func (e *Editor) TextPosition() int {
	return e.textPosition
}

// InsertText splices text at an arbitrary position, bypassing the add
// buffer. Used by the lisp command line.
func (e *Editor) InsertText(text string, position int) error {
	e.persistChanges()
	if err := e.content.Insert(text, position); err != nil {
		return err
	}
	if position <= e.textPosition {
		e.textPosition += len(text)
	}
	e.addBuffer.UpdatePosition(e.textPosition)
	e.updateLinesMap()
	e.syncCursor()
	e.rightMostColumn = e.cursor.Col
	return nil
}

// DeleteRange removes [start, end) directly, bypassing the delete
// buffer. Used by the lisp command line.
func (e *Editor) DeleteRange(start, end int) error {
	e.persistChanges()
	if err := e.content.Delete(start, end); err != nil {
		return err
	}
	if e.textPosition >= end {
		e.textPosition -= end - start
	} else if e.textPosition > start {
		e.textPosition = start
	}
	e.addBuffer.UpdatePosition(e.textPosition)
	e.updateLinesMap()
	e.syncCursor()
	e.rightMostColumn = e.cursor.Col
	return nil
}

// PersistAddBuffer flushes pending insertions into the piece table.
// A forced flush always writes; an unforced one only writes once the
// buffer is past half capacity, so small bursts of typing stay batched.
func (e *Editor) PersistAddBuffer(force bool) {
	if e.addBuffer.IsEmpty() {
		return
	}
	if !force && e.addBuffer.Len() <= e.addBuffer.maxLength/2 {
		return
	}
	if err := e.content.Insert(e.addBuffer.Text(), e.addBuffer.Position()); err != nil {
		log.Printf("piece table: %v", err)
	}
	e.addBuffer.Clear(e.textPosition)
}

func (e *Editor) persistDeleteBuffer() {
	if start, end, ok := e.deleteBuffer.Range(); ok {
		if err := e.content.Delete(start, end); err != nil {
			log.Printf("piece table: %v", err)
		}
		e.deleteBuffer.Clear()
	}
}

func (e *Editor) persistChanges() {
	e.PersistAddBuffer(true)
	e.persistDeleteBuffer()
}

// afterMoveCursor runs after every horizontal cursor move: a position
// change cannot be represented by either temporary buffer, so both are
// committed and the add buffer is re-anchored at the new position.
func (e *Editor) afterMoveCursor() {
	e.persistChanges()
	e.addBuffer.UpdatePosition(e.textPosition)
	e.updateLinesMap()
	e.syncCursor()
}

// updateLinesMap rebuilds the per-line length table from the effective
// document.
func (e *Editor) updateLinesMap() {
	lines := e.TextLines()
	if cap(e.linesMap) < len(lines) {
		e.linesMap = make([]int, len(lines))
	}
	e.linesMap = e.linesMap[:0]
	for _, line := range lines {
		e.linesMap = append(e.linesMap, len(line))
	}
}

// syncCursor derives (row, col) from the logical offset and the lines
// map.
func (e *Editor) syncCursor() {
	position := e.textPosition
	for row, lineLength := range e.linesMap {
		if position <= lineLength {
			e.cursor = pte.Point{Row: row, Col: position}
			return
		}
		position -= lineLength + 1
	}
	lastRow := len(e.linesMap) - 1
	if lastRow < 0 {
		e.cursor = pte.Point{}
		return
	}
	e.cursor = pte.Point{Row: lastRow, Col: e.linesMap[lastRow]}
}
