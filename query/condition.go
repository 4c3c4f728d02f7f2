package query

import "fmt"

// EqualityOp is a comparison operator for equality predicates.
type EqualityOp uint8

const (
	Lt EqualityOp = iota
	Le
	Eq
	Ne
	Ge
	Gt
)

// Negate returns the operator selecting exactly the complementary rows.
func (op EqualityOp) Negate() EqualityOp {
	switch op {
	case Lt:
		return Ge
	case Le:
		return Gt
	case Eq:
		return Ne
	case Ne:
		return Eq
	case Ge:
		return Lt
	case Gt:
		return Le
	default:
		panic(fmt.Sprintf("query: unknown equality op %d", uint8(op)))
	}
}

func (op EqualityOp) String() string {
	switch op {
	case Lt:
		return "<"
	case Le:
		return "<="
	case Eq:
		return "="
	case Ne:
		return "<>"
	case Ge:
		return ">="
	case Gt:
		return ">"
	default:
		return fmt.Sprintf("EqualityOp(%d)", uint8(op))
	}
}

// SetMembershipOp selects between membership and non-membership.
type SetMembershipOp uint8

const (
	In SetMembershipOp = iota
	NotIn
)

// Negate returns the complementary membership operator.
func (op SetMembershipOp) Negate() SetMembershipOp {
	if op == In {
		return NotIn
	}
	return In
}

func (op SetMembershipOp) String() string {
	if op == In {
		return "IN"
	}
	return "NOT IN"
}

// NullnessOp selects between null and non-null checks.
type NullnessOp uint8

const (
	IsNull NullnessOp = iota
	NotNull
)

// Negate returns the complementary nullness operator.
func (op NullnessOp) Negate() NullnessOp {
	if op == IsNull {
		return NotNull
	}
	return IsNull
}

func (op NullnessOp) String() string {
	if op == IsNull {
		return "IS NULL"
	}
	return "IS NOT NULL"
}

// CombinationOp joins two conditions.
type CombinationOp uint8

const (
	And CombinationOp = iota
	Or
)

func (op CombinationOp) String() string {
	if op == And {
		return "AND"
	}
	return "OR"
}

// EqualityPredicate compares one field against a literal.
type EqualityPredicate struct {
	Field string
	Op    EqualityOp
	Value Literal
}

// Negate returns the predicate selecting the complementary rows.
func (p EqualityPredicate) Negate() EqualityPredicate {
	return EqualityPredicate{Field: p.Field, Op: p.Op.Negate(), Value: p.Value}
}

func (p EqualityPredicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Field, p.Op, p.Value)
}

// SetMembershipPredicate tests one field against a set of literals.
type SetMembershipPredicate struct {
	Field   string
	Op      SetMembershipOp
	Members Members
}

// Negate returns the predicate selecting the complementary rows.
func (p SetMembershipPredicate) Negate() SetMembershipPredicate {
	return SetMembershipPredicate{Field: p.Field, Op: p.Op.Negate(), Members: p.Members}
}

func (p SetMembershipPredicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Field, p.Op, p.Members)
}

// NullnessPredicate tests one field for null values.
type NullnessPredicate struct {
	Field string
	Op    NullnessOp
}

// Negate returns the predicate selecting the complementary rows.
func (p NullnessPredicate) Negate() NullnessPredicate {
	return NullnessPredicate{Field: p.Field, Op: p.Op.Negate()}
}

func (p NullnessPredicate) String() string {
	return fmt.Sprintf("%s %s", p.Field, p.Op)
}

// Combination joins two conditions with AND or OR.
type Combination struct {
	LHS *Condition
	RHS *Condition
	Op  CombinationOp
}

// Condition is one node of a query-condition tree: a leaf predicate, a
// combination, or a negation marker. Exactly one branch is populated.
type Condition struct {
	eq   *EqualityPredicate
	set  *SetMembershipPredicate
	null *NullnessPredicate
	comb *Combination
	not  *Condition
}

// Equality returns the equality predicate if this node is one.
func (c *Condition) Equality() (EqualityPredicate, bool) {
	if c.eq == nil {
		return EqualityPredicate{}, false
	}
	return *c.eq, true
}

// SetMembership returns the membership predicate if this node is one.
func (c *Condition) SetMembership() (SetMembershipPredicate, bool) {
	if c.set == nil {
		return SetMembershipPredicate{}, false
	}
	return *c.set, true
}

// Nullness returns the nullness predicate if this node is one.
func (c *Condition) Nullness() (NullnessPredicate, bool) {
	if c.null == nil {
		return NullnessPredicate{}, false
	}
	return *c.null, true
}

// Combination returns the combination if this node is one.
func (c *Condition) Combination() (Combination, bool) {
	if c.comb == nil {
		return Combination{}, false
	}
	return *c.comb, true
}

// Negation returns the wrapped condition if this node is a NOT marker.
func (c *Condition) Negation() (*Condition, bool) {
	return c.not, c.not != nil
}

// And combines two conditions conjunctively.
func (c *Condition) And(rhs *Condition) *Condition {
	return &Condition{comb: &Combination{LHS: c, RHS: rhs, Op: And}}
}

// Or combines two conditions disjunctively.
func (c *Condition) Or(rhs *Condition) *Condition {
	return &Condition{comb: &Combination{LHS: c, RHS: rhs, Op: Or}}
}

// Not wraps the condition in a negation marker. Evaluation of the marker is
// expected to go through Negate rather than complementing result sets.
func (c *Condition) Not() *Condition {
	return &Condition{not: c}
}

// Negate returns the semantically negated tree: leaf operators flip, AND/OR
// distribute by De Morgan's laws, and double negation cancels.
func (c *Condition) Negate() *Condition {
	switch {
	case c.eq != nil:
		p := c.eq.Negate()
		return &Condition{eq: &p}
	case c.set != nil:
		p := c.set.Negate()
		return &Condition{set: &p}
	case c.null != nil:
		p := c.null.Negate()
		return &Condition{null: &p}
	case c.comb != nil:
		op := And
		if c.comb.Op == And {
			op = Or
		}
		return &Condition{comb: &Combination{
			LHS: c.comb.LHS.Negate(),
			RHS: c.comb.RHS.Negate(),
			Op:  op,
		}}
	case c.not != nil:
		return c.not
	default:
		panic("query: empty condition node")
	}
}

func (c *Condition) String() string {
	switch {
	case c.eq != nil:
		return c.eq.String()
	case c.set != nil:
		return c.set.String()
	case c.null != nil:
		return c.null.String()
	case c.comb != nil:
		return fmt.Sprintf("(%s %s %s)", c.comb.LHS, c.comb.Op, c.comb.RHS)
	case c.not != nil:
		return fmt.Sprintf("NOT (%s)", c.not)
	default:
		return "<empty>"
	}
}

// FieldBuilder builds predicates for one named field.
type FieldBuilder struct {
	name string
}

// Field starts building a predicate against the named field.
func Field(name string) FieldBuilder {
	return FieldBuilder{name: name}
}

func (f FieldBuilder) equality(op EqualityOp, v Literal) *Condition {
	return &Condition{eq: &EqualityPredicate{Field: f.name, Op: op, Value: v}}
}

// Lt selects rows where the field is less than v.
func (f FieldBuilder) Lt(v Literal) *Condition { return f.equality(Lt, v) }

// Le selects rows where the field is at most v.
func (f FieldBuilder) Le(v Literal) *Condition { return f.equality(Le, v) }

// Eq selects rows where the field equals v.
func (f FieldBuilder) Eq(v Literal) *Condition { return f.equality(Eq, v) }

// Ne selects rows where the field differs from v.
func (f FieldBuilder) Ne(v Literal) *Condition { return f.equality(Ne, v) }

// Ge selects rows where the field is at least v.
func (f FieldBuilder) Ge(v Literal) *Condition { return f.equality(Ge, v) }

// Gt selects rows where the field is greater than v.
func (f FieldBuilder) Gt(v Literal) *Condition { return f.equality(Gt, v) }

// In selects rows where the field is one of the members.
func (f FieldBuilder) In(members ...Literal) *Condition {
	return &Condition{set: &SetMembershipPredicate{
		Field:   f.name,
		Op:      In,
		Members: SetOf(members...),
	}}
}

// NotIn selects rows where the field is none of the members.
func (f FieldBuilder) NotIn(members ...Literal) *Condition {
	return &Condition{set: &SetMembershipPredicate{
		Field:   f.name,
		Op:      NotIn,
		Members: SetOf(members...),
	}}
}

// IsNull selects rows where the field is null.
func (f FieldBuilder) IsNull() *Condition {
	return &Condition{null: &NullnessPredicate{Field: f.name, Op: IsNull}}
}

// NotNull selects rows where the field is not null.
func (f FieldBuilder) NotNull() *Condition {
	return &Condition{null: &NullnessPredicate{Field: f.name, Op: NotNull}}
}
