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

import "errors"

// All failures in this package are recoverable values. The editor absorbs
// them; the worst outcome of an unexpected one is a dropped keystroke.
var (
	// ErrPositionOutOfRange reports an insert or delete offset beyond the
	// current document length.
	ErrPositionOutOfRange = errors.New("position is beyond text length")

	// ErrInvertedRange reports a deletion range whose start is greater
	// than its end.
	ErrInvertedRange = errors.New("start index cannot be greater than end index")

	// ErrBufferFull reports an append to a temporary buffer that is
	// already at capacity and must be persisted first.
	ErrBufferFull = errors.New("temporary buffer is full")
)
