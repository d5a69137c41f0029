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
	"errors"
	"fmt"

	"github.com/steelseries/golisp"

	pte "github.com/tiagoavila/pte/types"
)

// The lisp primitives operate on whichever editor was registered last;
// golisp keeps one global environment, and so do we.
var lispEditor pte.Editor

func RegisterEditor(e pte.Editor) {
	lispEditor = e
}

func init() {
	golisp.MakePrimitiveFunction("buffer-text", "0", BufferTextImpl)
	golisp.MakePrimitiveFunction("buffer-length", "0", BufferLengthImpl)
	golisp.MakePrimitiveFunction("cursor-row", "0", CursorRowImpl)
	golisp.MakePrimitiveFunction("cursor-col", "0", CursorColImpl)
	golisp.MakePrimitiveFunction("insert-text", "2", InsertTextImpl)
	golisp.MakePrimitiveFunction("delete-range", "2", DeleteRangeImpl)
}

func BufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor registered")
	}
	return golisp.StringWithValue(lispEditor.Text()), nil
}

func BufferLengthImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor registered")
	}
	return golisp.IntegerWithValue(int64(lispEditor.TextLength())), nil
}

func CursorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor registered")
	}
	return golisp.IntegerWithValue(int64(lispEditor.Cursor().Row)), nil
}

func CursorColImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor registered")
	}
	return golisp.IntegerWithValue(int64(lispEditor.Cursor().Col)), nil
}

func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor registered")
	}
	text := golisp.Car(args)
	position := golisp.Cadr(args)
	if !golisp.StringP(text) {
		return nil, errors.New("insert-text requires a string argument")
	}
	if !golisp.IntegerP(position) {
		return nil, errors.New("insert-text requires an integer position")
	}
	err := lispEditor.InsertText(golisp.StringValue(text), int(golisp.IntegerValue(position)))
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(lispEditor.Text()), nil
}

func DeleteRangeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if lispEditor == nil {
		return nil, errors.New("no editor registered")
	}
	start := golisp.Car(args)
	end := golisp.Cadr(args)
	if !golisp.IntegerP(start) || !golisp.IntegerP(end) {
		return nil, errors.New("delete-range requires integer arguments")
	}
	err := lispEditor.DeleteRange(int(golisp.IntegerValue(start)), int(golisp.IntegerValue(end)))
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(lispEditor.Text()), nil
}

// ParseEval evaluates a lisp expression and renders its result, or the
// error, for the message bar.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		return fmt.Sprintf("ERR %+v", err)
	}
	return golisp.String(value)
}
