package locator

import (
	"strconv"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v3/scale"
)

// Location addresses an asset's reserve relative to the current system.
// Parents is the number of levels to ascend in the addressing tree before
// the Interior path is interpreted.
type Location struct {
	Parents  uint8
	Interior []Junction
}

func NewLocation(parents uint8, interior ...Junction) Location {
	return Location{Parents: parents, Interior: interior}
}

// Here is the location of the current system itself.
func Here() Location {
	return Location{}
}

func (l Location) Equal(other Location) bool {
	if l.Parents != other.Parents || len(l.Interior) != len(other.Interior) {
		return false
	}
	for i, j := range l.Interior {
		if !j.Equal(other.Interior[i]) {
			return false
		}
	}
	return true
}

// Simplify rewrites the location relative to the given universal context,
// the interior location of the current system viewed from the root of the
// addressing tree. While the location ascends into a level whose re-descent
// junction matches the context, the ascent and the junction cancel out.
// The result is equivalent to the input and the operation is idempotent.
func (l Location) Simplify(context []Junction) Location {
	if len(context) < int(l.Parents) {
		return l
	}

	out := Location{
		Parents:  l.Parents,
		Interior: append([]Junction(nil), l.Interior...),
	}
	for out.Parents > 0 && len(out.Interior) > 0 {
		reentry := context[len(context)-int(out.Parents)]
		if !out.Interior[0].Equal(reentry) {
			break
		}
		out.Interior = out.Interior[1:]
		out.Parents--
	}

	return out
}

// IsLocal reports whether the location addresses this system's own namespace.
func (l Location) IsLocal() bool {
	return l.Parents == 0
}

func (l Location) String() string {
	var b strings.Builder
	b.WriteString("[parents:")
	b.WriteString(strconv.Itoa(int(l.Parents)))
	for _, j := range l.Interior {
		b.WriteString(", ")
		b.WriteString(j.String())
	}
	b.WriteString("]")
	return b.String()
}

func (l Location) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(l.Parents); err != nil {
		return err
	}
	if err := encoder.Encode(uint32(len(l.Interior))); err != nil {
		return err
	}
	for _, j := range l.Interior {
		if err := encoder.Encode(j); err != nil {
			return err
		}
	}
	return nil
}

func (l *Location) Decode(decoder scale.Decoder) error {
	parents, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	l.Parents = parents

	var n uint32
	if err := decoder.Decode(&n); err != nil {
		return err
	}
	l.Interior = make([]Junction, n)
	for i := range l.Interior {
		if err := decoder.Decode(&l.Interior[i]); err != nil {
			return err
		}
	}
	return nil
}
