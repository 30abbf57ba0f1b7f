package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/lifesim"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// Unit formats sample values: grams of gold when Currency is empty, money
// otherwise.
type Unit struct {
	Currency string
}

// Format formats v in the unit.
func (u Unit) Format(v float64) string {
	if u.Currency == "" {
		return lifesim.Grams(v)
	}
	return lifesim.M(v, u.Currency).String()
}

// String returns the unit name, as used in titles.
func (u Unit) String() string {
	if u.Currency == "" {
		return "grams of gold"
	}
	return u.Currency
}
