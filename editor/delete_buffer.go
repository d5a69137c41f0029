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
	pte "github.com/tiagoavila/pte/types"
)

// A DeleteBuffer batches consecutive deletions into one contiguous
// [start, end) range so that holding backspace costs a single
// piece-table delete. Once open, the range only ever grows by one at an
// edge: backspace extends start downward, the delete key extends end
// upward. A request that does not touch the current edge is answered
// with NoChange and the editor flushes and starts over, so the range can
// never invert or jump.
type DeleteBuffer struct {
	maxLength int
	start     int
	end       int
	active    bool
}

func NewDeleteBuffer(maxLength int) *DeleteBuffer {
	return &DeleteBuffer{maxLength: maxLength}
}

// AddChar records a single-character deletion at the given document
// position. position is where the cursor sits: backspace removes the
// byte before it, the delete key removes the byte under it.
func (b *DeleteBuffer) AddChar(position int, key pte.Key) (AddResult, error) {
	if !b.active {
		switch key {
		case pte.KeyBackspace2:
			if position == 0 {
				return NoChange, nil
			}
			b.open(position-1, position)
		case pte.KeyDelete:
			b.open(position, position+1)
		default:
			return NoChange, nil
		}
		return b.sizeResult(), nil
	}

	// While deletions are pending the cursor rests at the range start,
	// so that is the only position an extension can come from.
	if position != b.start {
		return NoChange, nil
	}
	switch key {
	case pte.KeyBackspace2:
		if b.start == 0 {
			return NoChange, nil
		}
		b.start--
	case pte.KeyDelete:
		b.end++
	default:
		return NoChange, nil
	}
	return b.sizeResult(), nil
}

// DeleteWord opens a word-sized range against the supplied text.
// Backspace scans left from position over whitespace and then the word;
// the delete key scans right the same way. Extending an already-open
// range is not supported; the editor flushes before each word deletion.
func (b *DeleteBuffer) DeleteWord(text string, position int, key pte.Key) (AddResult, error) {
	if b.active {
		return NoChange, nil
	}
	switch key {
	case pte.KeyBackspace2:
		if position == 0 {
			return NoChange, nil
		}
		start := position
		for start > 0 && isWhitespace(text[start-1]) {
			start--
		}
		for start > 0 && !isWhitespace(text[start-1]) {
			start--
		}
		b.open(start, position)
	case pte.KeyDelete:
		if position >= len(text) {
			return NoChange, nil
		}
		end := position
		for end < len(text) && isWhitespace(text[end]) {
			end++
		}
		for end < len(text) && !isWhitespace(text[end]) {
			end++
		}
		b.open(position, end)
	default:
		return NoChange, nil
	}
	return b.sizeResult(), nil
}

// Range returns the pending deletion range, if any.
func (b *DeleteBuffer) Range() (start, end int, ok bool) {
	if !b.active {
		return 0, 0, false
	}
	return b.start, b.end, true
}

func (b *DeleteBuffer) IsEmpty() bool {
	return !b.active
}

func (b *DeleteBuffer) Clear() {
	b.start = 0
	b.end = 0
	b.active = false
}

func (b *DeleteBuffer) open(start, end int) {
	b.start = start
	b.end = end
	b.active = true
}

func (b *DeleteBuffer) sizeResult() AddResult {
	if b.end-b.start >= b.maxLength {
		return MustPersist
	}
	return Added
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
