package cellgo

import (
	"fmt"

	"github.com/hupe1980/cellgo/bitmap"
	"github.com/hupe1980/cellgo/physical"
	"github.com/hupe1980/cellgo/query"
)

// QueryConditionBitmap evaluates cond against every record and returns a
// selection with bit i set exactly when record i passes.
//
// Predicates on enumerated fields operate on the index column: an equality
// literal is first located in the variants table (no variant means no row
// can be equal, so every bit clears, or sets for a not-equal test), and
// membership tests run over the resolved variant values with rows holding
// an unresolvable index excluded from In and included in NotIn.
//
// Panics if a predicate names an unknown field or a literal kind does not
// match its column.
func (c *Cells) QueryConditionBitmap(cond *query.Condition) *bitmap.Bitmap {
	if p, ok := cond.Equality(); ok {
		return c.equalityBitmap(p)
	}
	if p, ok := cond.SetMembership(); ok {
		return c.membershipBitmap(p)
	}
	if p, ok := cond.Nullness(); ok {
		// There is no notion of null cells, so nothing is null and
		// everything is not null.
		if p.Op == query.IsNull {
			return bitmap.New(c.Len())
		}
		return bitmap.Full(c.Len())
	}
	if comb, ok := cond.Combination(); ok {
		lhs := c.QueryConditionBitmap(comb.LHS)
		rhs := c.QueryConditionBitmap(comb.RHS)
		if comb.Op == query.And {
			lhs.And(rhs)
		} else {
			lhs.Or(rhs)
		}
		return lhs
	}
	if inner, ok := cond.Negation(); ok {
		// Evaluate the negated expression tree instead of complementing the
		// inner result, mirroring engines that never materialize a NOT node.
		// The two agree under two-valued logic; they stop agreeing the day
		// null cells arrive.
		return c.QueryConditionBitmap(inner.Negate())
	}
	panic("cellgo: cannot evaluate an empty condition")
}

// QueryCondition returns the records passing cond. The result carries no
// enumerations.
func (c *Cells) QueryCondition(cond *query.Condition) *Cells {
	return c.Filter(c.QueryConditionBitmap(cond))
}

func (c *Cells) equalityBitmap(p query.EqualityPredicate) *bitmap.Bitmap {
	data := c.mustField(p.Field)

	// With an enumeration the operation applies to the index column.
	if variants, ok := c.enums[p.Field]; ok {
		k, found := variants.variantIndex(p.Value)
		if !found {
			if p.Op == query.Ne {
				return bitmap.Full(c.Len())
			}
			return bitmap.New(c.Len())
		}
		return data.matchEquality(p.Op, indexLiteral(p.Field, data.Kind(), k))
	}

	if p.Value.Kind() != data.Kind() {
		panic(fmt.Sprintf("cellgo: %s literal applied to field %q of kind %s",
			p.Value.Kind(), p.Field, data.Kind()))
	}
	return data.matchEquality(p.Op, p.Value)
}

func (c *Cells) membershipBitmap(p query.SetMembershipPredicate) *bitmap.Bitmap {
	data, validity, ok := c.ResolveEnumeration(p.Field)
	if !ok {
		data = c.mustField(p.Field)
		validity = bitmap.Full(c.Len())
	}

	if p.Members.Kind() != data.Kind() {
		panic(fmt.Sprintf("cellgo: %s members applied to field %q of kind %s",
			p.Members.Kind(), p.Field, data.Kind()))
	}
	pred := data.matchMembership(p.Op, p.Members)

	if p.Op == query.In {
		validity.And(pred)
		return validity
	}
	validity.Negate()
	validity.Or(pred)
	return validity
}

// indexLiteral casts a variant index to the enumerated field's index column
// kind.
func indexLiteral(field string, kind physical.Kind, index int) query.Literal {
	switch kind {
	case physical.KindUint8:
		return query.Uint8(uint8(index))
	case physical.KindUint16:
		return query.Uint16(uint16(index))
	case physical.KindUint32:
		return query.Uint32(uint32(index))
	case physical.KindUint64:
		return query.Uint64(uint64(index))
	default:
		panic(fmt.Sprintf("cellgo: enumerated field %q must hold unsigned indices, not %s", field, kind))
	}
}
