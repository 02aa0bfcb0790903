// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package vector

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// String renders the elements as "[e0, e1, ...]", or "[]" when empty.
func (v *Vector[T]) String() string {
	return redact.StringWithoutMarkers(v)
}

// SafeFormat implements redact.SafeFormatter. The brackets and separators are
// safe; the elements are not.
func (v *Vector[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeRune('[')
	for i, x := range v.buf[:v.n] {
		if i > 0 {
			w.SafeString(", ")
		}
		w.Print(x)
	}
	w.SafeRune(']')
}

// WriteTo implements io.WriterTo.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), errors.Wrap(err, "writing vector")
}
