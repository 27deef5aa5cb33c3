// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern

// CharLike is implemented by every element type a Reader can walk: both the
// plain source runes the Lexer consumes and the escape-annotated Chars the
// filter sub-parsers consume.
type CharLike interface {
	Rune() rune
	Width() int
}

// Reader is a cursor over a sequence of CharLike elements. Positions are
// reported as UTF-8 byte offsets into the original source, computed from
// the width of every consumed element - for an escaped Char that is the
// width of its escape sequence, never the width of the decoded value.
type Reader[T CharLike] struct {
	items []T
	index int
}

// NewReader builds a Reader over items, starting at the first element.
func NewReader[T CharLike](items []T) *Reader[T] {
	return &Reader[T]{items: items}
}

// Position returns the byte offset of the cursor from the start of items.
func (r *Reader[T]) Position() int {
	return widthOf(r.items[:r.index])
}

// End returns the total byte length of items.
func (r *Reader[T]) End() int {
	return widthOf(r.items)
}

func widthOf[T CharLike](items []T) int {
	total := 0
	for _, it := range items {
		total += it.Width()
	}
	return total
}

// Seek advances the cursor by one element.
func (r *Reader[T]) Seek() {
	r.seekTo(r.index + 1)
}

// SeekToEnd advances the cursor past the last element.
func (r *Reader[T]) SeekToEnd() {
	r.seekTo(len(r.items))
}

func (r *Reader[T]) seekTo(index int) {
	if index > len(r.items) {
		index = len(r.items)
	}
	r.index = index
}

// Peek returns the current element without advancing.
func (r *Reader[T]) Peek() (T, bool) {
	return r.peekAt(r.index)
}

func (r *Reader[T]) peekAt(index int) (T, bool) {
	var zero T
	if index < len(r.items) {
		return r.items[index], true
	}
	return zero, false
}

// PeekRune returns the decoded rune of the current element without advancing.
func (r *Reader[T]) PeekRune() (rune, bool) {
	c, ok := r.Peek()
	if !ok {
		var zero rune
		return zero, false
	}
	return c.Rune(), true
}

// PeekToEnd returns every remaining element without advancing.
func (r *Reader[T]) PeekToEnd() []T {
	return r.items[r.index:]
}

// Read returns the current element and advances past it.
func (r *Reader[T]) Read() (T, bool) {
	index := r.index
	r.Seek()
	return r.peekAt(index)
}

// ReadRune returns the decoded rune of the current element and advances.
func (r *Reader[T]) ReadRune() (rune, bool) {
	c, ok := r.Read()
	if !ok {
		var zero rune
		return zero, false
	}
	return c.Rune(), true
}

// ReadToEnd returns every remaining element and advances the cursor past the
// end.
func (r *Reader[T]) ReadToEnd() []T {
	index := r.index
	r.SeekToEnd()
	return r.items[index:]
}

// ReadUntil consumes up to and including the first element whose rune equals
// delimiter, returning the elements before it. If delimiter never occurs, it
// behaves like ReadToEnd.
func (r *Reader[T]) ReadUntil(delimiter rune) []T {
	for i := r.index; i < len(r.items); i++ {
		if r.items[i].Rune() == delimiter {
			index := r.index
			r.seekTo(i + 1)
			return r.items[index:i]
		}
	}
	return r.ReadToEnd()
}

// AtEnd reports whether the cursor has no more elements to read.
func (r *Reader[T]) AtEnd() bool {
	return r.index >= len(r.items)
}
