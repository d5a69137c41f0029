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
package editor

import (
	"fmt"
	"strings"
)

// Source identifies which backing buffer a piece refers to.
type Source int

const (
	SourceOriginal Source = iota
	SourceAdded
)

// A Piece describes a contiguous byte range of one of the two backing
// buffers. The pieces, concatenated in order, are the document.
type Piece struct {
	source Source
	start  int
	length int
}

// A PieceTable stores a document as an immutable original buffer, an
// append-only add buffer, and an ordered list of pieces. Edits only ever
// append text and rewrite the piece list; text already stored is never
// moved, so a piece stays valid for the life of the table.
type PieceTable struct {
	original string
	added    string
	pieces   []Piece
}

func NewPieceTable(text string) *PieceTable {
	t := &PieceTable{original: text}
	if len(text) > 0 {
		t.pieces = []Piece{{source: SourceOriginal, start: 0, length: len(text)}}
	}
	return t
}

// Insert splices text into the document at the given byte position.
// The text lands at the end of the add buffer and the piece containing
// the position is split around it; an insertion at a piece boundary or
// at the end of the document adds a piece without splitting anything.
func (t *PieceTable) Insert(text string, position int) error {
	if text == "" {
		return nil
	}
	totalLength := t.TotalLength()
	if position > totalLength {
		return fmt.Errorf("%w: %d > %d", ErrPositionOutOfRange, position, totalLength)
	}

	// The new piece's range in the add buffer is fixed before appending.
	added := Piece{source: SourceAdded, start: len(t.added), length: len(text)}
	t.added += text

	// Find the piece the position falls in. A position equal to a
	// running total lands between pieces and needs no split.
	currentPos := 0
	insertIdx := len(t.pieces)
	splitOffset := 0
	for i, piece := range t.pieces {
		if position <= currentPos+piece.length {
			insertIdx = i
			splitOffset = position - currentPos
			break
		}
		currentPos += piece.length
	}

	if insertIdx == len(t.pieces) {
		t.pieces = append(t.pieces, added)
		return nil
	}

	target := t.pieces[insertIdx]
	replacement := make([]Piece, 0, 3)
	if splitOffset > 0 {
		replacement = append(replacement, Piece{
			source: target.source,
			start:  target.start,
			length: splitOffset,
		})
	}
	replacement = append(replacement, added)
	if splitOffset < target.length {
		replacement = append(replacement, Piece{
			source: target.source,
			start:  target.start + splitOffset,
			length: target.length - splitOffset,
		})
	}

	pieces := make([]Piece, 0, len(t.pieces)+2)
	pieces = append(pieces, t.pieces[:insertIdx]...)
	pieces = append(pieces, replacement...)
	pieces = append(pieces, t.pieces[insertIdx+1:]...)
	t.pieces = pieces
	return nil
}

// Delete removes the byte range [start, end) from the document. The
// piece list is rebuilt: pieces before the range survive unchanged, the
// piece containing start keeps its prefix, the piece containing end
// keeps its suffix, and zero-length remnants are dropped.
func (t *PieceTable) Delete(start, end int) error {
	totalLength := t.TotalLength()
	if start > totalLength {
		return fmt.Errorf("%w: start %d > %d", ErrPositionOutOfRange, start, totalLength)
	}
	if end > totalLength {
		return fmt.Errorf("%w: end %d > %d", ErrPositionOutOfRange, end, totalLength)
	}
	if start > end {
		return fmt.Errorf("%w: %d > %d", ErrInvertedRange, start, end)
	}
	if start == end {
		return nil
	}

	// Walk the list once, locating the piece holding start and the piece
	// holding end. An end landing exactly on a piece boundary belongs to
	// the earlier piece.
	currentPos := 0
	startIdx, endIdx := -1, len(t.pieces)-1
	startOffset, endOffset := 0, 0
	for i, piece := range t.pieces {
		pieceEnd := currentPos + piece.length
		if startIdx < 0 && start >= currentPos && start < pieceEnd {
			startIdx = i
			startOffset = start - currentPos
		}
		if end > currentPos && end <= pieceEnd {
			endIdx = i
			endOffset = end - currentPos
			break
		}
		currentPos = pieceEnd
	}
	if startIdx < 0 {
		return fmt.Errorf("%w: start %d", ErrPositionOutOfRange, start)
	}

	pieces := make([]Piece, 0, len(t.pieces))
	pieces = append(pieces, t.pieces[:startIdx]...)
	if startOffset > 0 {
		startPiece := t.pieces[startIdx]
		pieces = append(pieces, Piece{
			source: startPiece.source,
			start:  startPiece.start,
			length: startOffset,
		})
	}
	endPiece := t.pieces[endIdx]
	if endOffset < endPiece.length {
		pieces = append(pieces, Piece{
			source: endPiece.source,
			start:  endPiece.start + endOffset,
			length: endPiece.length - endOffset,
		})
	}
	pieces = append(pieces, t.pieces[endIdx+1:]...)
	t.pieces = pieces
	return nil
}

// Text reconstructs the document by concatenating the pieces in order.
func (t *PieceTable) Text() string {
	var b strings.Builder
	b.Grow(t.TotalLength())
	for _, piece := range t.pieces {
		switch piece.source {
		case SourceOriginal:
			b.WriteString(t.original[piece.start : piece.start+piece.length])
		case SourceAdded:
			b.WriteString(t.added[piece.start : piece.start+piece.length])
		}
	}
	return b.String()
}

// TotalLength is the document length in bytes.
func (t *PieceTable) TotalLength() int {
	total := 0
	for _, piece := range t.pieces {
		total += piece.length
	}
	return total
}
