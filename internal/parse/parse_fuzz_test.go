package parse

import (
	"strconv"
	"strings"
	"testing"
)

// FuzzVector checks that the vector parser never panics and that successful
// parses survive a format/reparse round trip.
func FuzzVector(f *testing.F) {
	f.Add("[1,2,3]")
	f.Add("[]")
	f.Add("[ -9223372036854775808 , 9223372036854775807 ]")
	f.Add("[[1,2],[3,4]]")
	f.Add("[1,2,")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := Vector(input)
		if err != nil {
			return
		}

		var b strings.Builder
		b.WriteByte('[')
		for i, x := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(x, 10))
		}
		b.WriteByte(']')

		again, err := Vector(b.String())
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", b.String(), err)
		}
		if len(again) != len(v) {
			t.Fatalf("round trip changed length: %d != %d", len(again), len(v))
		}
		for i := range v {
			if again[i] != v[i] {
				t.Fatalf("round trip changed element %d: %d != %d", i, again[i], v[i])
			}
		}
	})
}
