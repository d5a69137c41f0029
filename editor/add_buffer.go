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

import "unicode/utf8"

// AddResult reports what a temporary buffer did with a keystroke.
type AddResult int

const (
	// Added means the edit was absorbed and nothing needs to happen.
	Added AddResult = iota
	// MustPersist means the buffer reached capacity; the editor has to
	// flush it into the piece table. The buffer never flushes itself.
	MustPersist
	// NoChange means the edit could not be absorbed and was ignored.
	NoChange
)

// An AddBuffer batches consecutive characters typed at one document
// position so that a burst of typing costs a single piece-table insert
// instead of one per keystroke. While the buffer is non-empty its anchor
// position is fixed; the editor flushes it before the cursor moves.
type AddBuffer struct {
	text      []byte
	maxLength int
	position  int
}

func NewAddBuffer(maxLength, position int) *AddBuffer {
	return &AddBuffer{maxLength: maxLength, position: position}
}

// AddChar appends one character to the buffer. It reports MustPersist
// when the buffer has reached capacity, and ErrBufferFull when it was
// already full before the call.
func (b *AddBuffer) AddChar(c rune) (AddResult, error) {
	if len(b.text) >= b.maxLength {
		return NoChange, ErrBufferFull
	}
	b.text = utf8.AppendRune(b.text, c)
	if len(b.text) >= b.maxLength {
		return MustPersist, nil
	}
	return Added, nil
}

// IsCursorOnBuffer reports whether a document position falls inside the
// span the buffered text will occupy once flushed.
func (b *AddBuffer) IsCursorOnBuffer(position int) bool {
	return position >= b.position && position < b.position+len(b.text)
}

// DeleteChar removes the last buffered byte. Only valid while the cursor
// sits at the end of the pending span; the editor checks that.
func (b *AddBuffer) DeleteChar() {
	if len(b.text) > 0 {
		b.text = b.text[:len(b.text)-1]
	}
}

// UpdatePosition re-anchors the buffer. The buffer cannot represent two
// disjoint spans, so the editor must flush before moving a non-empty one.
func (b *AddBuffer) UpdatePosition(position int) {
	b.position = position
}

// Clear empties the buffer and anchors it at the given position.
func (b *AddBuffer) Clear(position int) {
	b.text = b.text[:0]
	b.position = position
}

func (b *AddBuffer) IsEmpty() bool {
	return len(b.text) == 0
}

func (b *AddBuffer) Len() int {
	return len(b.text)
}

func (b *AddBuffer) Text() string {
	return string(b.text)
}

// Position is the document offset the pending text will be spliced at.
func (b *AddBuffer) Position() int {
	return b.position
}
