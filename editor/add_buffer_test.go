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
	"errors"
	"testing"
)

func TestAddBufferReportsMustPersistAtCapacity(t *testing.T) {
	b := NewAddBuffer(5, 0)
	for i, c := range "abcd" {
		result, err := b.AddChar(c)
		if err != nil {
			t.Fatalf("AddChar %d failed: %+v", i, err)
		}
		if result != Added {
			t.Errorf("AddChar %d: expected Added, got %v", i, result)
		}
	}
	result, err := b.AddChar('e')
	if err != nil {
		t.Fatalf("AddChar failed: %+v", err)
	}
	if result != MustPersist {
		t.Errorf("Expected MustPersist at capacity, got %v", result)
	}
	if b.Text() != "abcde" {
		t.Errorf("Unexpected buffer text: '%s'", b.Text())
	}
}

func TestAddBufferRejectsWhenFull(t *testing.T) {
	b := NewAddBuffer(2, 0)
	b.AddChar('a')
	b.AddChar('b')
	if _, err := b.AddChar('c'); !errors.Is(err, ErrBufferFull) {
		t.Errorf("Expected ErrBufferFull, got %+v", err)
	}
	if b.Text() != "ab" {
		t.Errorf("Rejected character changed the buffer: '%s'", b.Text())
	}
}

func TestAddBufferCountsBytes(t *testing.T) {
	b := NewAddBuffer(3, 0)
	result, err := b.AddChar('é') // two bytes
	if err != nil {
		t.Fatalf("AddChar failed: %+v", err)
	}
	if result != Added {
		t.Errorf("Expected Added, got %v", result)
	}
	if b.Len() != 2 {
		t.Errorf("Expected 2 buffered bytes, got %d", b.Len())
	}
	if result, _ = b.AddChar('x'); result != MustPersist {
		t.Errorf("Expected MustPersist after third byte, got %v", result)
	}
}

func TestIsCursorOnBuffer(t *testing.T) {
	b := NewAddBuffer(10, 5)
	b.AddChar('a')
	b.AddChar('b')
	b.AddChar('c')
	for position, expected := range map[int]bool{
		4: false,
		5: true,
		7: true,
		8: false, // one past the pending span
	} {
		if got := b.IsCursorOnBuffer(position); got != expected {
			t.Errorf("IsCursorOnBuffer(%d): expected %v, got %v", position, expected, got)
		}
	}
}

func TestAddBufferDeleteChar(t *testing.T) {
	b := NewAddBuffer(10, 0)
	b.AddChar('a')
	b.AddChar('b')
	b.DeleteChar()
	if b.Text() != "a" {
		t.Errorf("Unexpected buffer text after DeleteChar: '%s'", b.Text())
	}
	b.DeleteChar()
	b.DeleteChar() // empty buffer, no effect
	if !b.IsEmpty() {
		t.Errorf("Buffer should be empty, holds '%s'", b.Text())
	}
}

func TestAddBufferClearReanchors(t *testing.T) {
	b := NewAddBuffer(10, 3)
	b.AddChar('a')
	b.Clear(7)
	if !b.IsEmpty() {
		t.Errorf("Buffer should be empty after Clear, holds '%s'", b.Text())
	}
	if b.Position() != 7 {
		t.Errorf("Expected anchor 7, got %d", b.Position())
	}
}
