package cellgo

import (
	"fmt"

	"github.com/hupe1980/cellgo/query"
)

// Range is the closed interval spanned by the values of one column.
type Range struct {
	Min query.Literal
	Max query.Literal
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.Min, r.Max)
}

// FieldDomain pairs a field name with the range of its column. Range is nil
// for an empty column, which spans no values.
type FieldDomain struct {
	Field string
	Range *Range
}

func (d FieldDomain) String() string {
	if d.Range == nil {
		return d.Field + ": empty"
	}
	return d.Field + ": " + d.Range.String()
}
