// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder is a [transform.Transformer] that drops leading and
// trailing whitespace and collapses every internal whitespace run (including
// newlines from multi-line CSV cells) into a single ASCII space.
type WhitespaceFolder struct {
	// seenText is set once the first non-space rune has been written.
	seenText bool

	// pendingSpace is set while skipping an internal whitespace run.
	pendingSpace bool
}

// Transform implements [transform.Transformer.Transform].
func (f *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			f.pendingSpace = f.seenText
			nSrc += size
			continue
		}

		// The rune is written re-encoded so that invalid input becomes
		// utf8.RuneError, which is wider than the single byte consumed.
		need := utf8.RuneLen(r)
		if f.pendingSpace {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pendingSpace {
			dst[nDst] = ' '
			nDst++
			f.pendingSpace = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		f.seenText = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *WhitespaceFolder) Reset() {
	*f = WhitespaceFolder{}
}
