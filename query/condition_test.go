package query

import "testing"

func TestEqualityOpNegate(t *testing.T) {
	tests := []struct {
		op   EqualityOp
		want EqualityOp
	}{
		{op: Lt, want: Ge},
		{op: Le, want: Gt},
		{op: Eq, want: Ne},
		{op: Ne, want: Eq},
		{op: Ge, want: Lt},
		{op: Gt, want: Le},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.Negate(); got != tt.want {
				t.Errorf("Negate(%s) = %s, want %s", tt.op, got, tt.want)
			}
			if got := tt.op.Negate().Negate(); got != tt.op {
				t.Errorf("double negation of %s = %s", tt.op, got)
			}
		})
	}
}

func TestConditionString(t *testing.T) {
	tests := []struct {
		name string
		cond *Condition
		want string
	}{
		{
			name: "equality",
			cond: Field("a").Eq(Uint8(2)),
			want: "a = 2",
		},
		{
			name: "less than negative",
			cond: Field("x").Lt(Int32(-7)),
			want: "x < -7",
		},
		{
			name: "membership",
			cond: Field("s").In(String("one"), String("two")),
			want: "s IN ('one', 'two')",
		},
		{
			name: "not in numbers",
			cond: Field("n").NotIn(Uint64(1), Uint64(2)),
			want: "n NOT IN (1, 2)",
		},
		{
			name: "nullness",
			cond: Field("v").IsNull(),
			want: "v IS NULL",
		},
		{
			name: "combination",
			cond: Field("a").Eq(Uint8(2)).And(Field("b").Gt(Uint8(25))),
			want: "(a = 2 AND b > 25)",
		},
		{
			name: "negation marker",
			cond: Field("a").Le(Float64(1.5)).Not(),
			want: "NOT (a <= 1.5)",
		},
		{
			name: "nested",
			cond: Field("a").Ne(Uint8(0)).Or(Field("b").Ge(Uint8(9))).Not(),
			want: "NOT ((a <> 0 OR b >= 9))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConditionNegate(t *testing.T) {
	tests := []struct {
		name string
		cond *Condition
		want string
	}{
		{
			name: "equality flips operator",
			cond: Field("a").Eq(Uint8(2)),
			want: "a <> 2",
		},
		{
			name: "membership flips operator",
			cond: Field("a").In(Uint8(1)),
			want: "a NOT IN (1)",
		},
		{
			name: "nullness flips operator",
			cond: Field("a").NotNull(),
			want: "a IS NULL",
		},
		{
			name: "de morgan over and",
			cond: Field("a").Lt(Uint8(5)).And(Field("b").Eq(Uint8(1))),
			want: "(a >= 5 OR b <> 1)",
		},
		{
			name: "de morgan over or",
			cond: Field("a").Ge(Uint8(5)).Or(Field("b").IsNull()),
			want: "(a < 5 AND b IS NOT NULL)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.Negate().String(); got != tt.want {
				t.Errorf("Negate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDoubleNegation(t *testing.T) {
	inner := Field("a").Eq(Uint8(2))
	if got := inner.Not().Negate(); got != inner {
		t.Errorf("negating a NOT marker must unwrap the inner condition")
	}
	if got := inner.Negate().Negate().String(); got != inner.String() {
		t.Errorf("double Negate changed the condition: %q", got)
	}
}

func TestConditionAccessors(t *testing.T) {
	eq := Field("a").Eq(Uint8(1))
	if p, ok := eq.Equality(); !ok || p.Field != "a" || p.Op != Eq {
		t.Errorf("Equality() = %+v, %t", p, ok)
	}
	if _, ok := eq.Combination(); ok {
		t.Error("equality node must not report a combination")
	}

	set := Field("a").In(Uint8(1), Uint8(2))
	if p, ok := set.SetMembership(); !ok || p.Members.Len() != 2 {
		t.Errorf("SetMembership() = %+v, %t", p, ok)
	}

	null := Field("a").IsNull()
	if p, ok := null.Nullness(); !ok || p.Op != IsNull {
		t.Errorf("Nullness() = %+v, %t", p, ok)
	}

	comb := eq.And(set)
	if c, ok := comb.Combination(); !ok || c.Op != And || c.LHS != eq || c.RHS != set {
		t.Errorf("Combination() = %+v, %t", c, ok)
	}

	not := eq.Not()
	if inner, ok := not.Negation(); !ok || inner != eq {
		t.Errorf("Negation() = %v, %t", inner, ok)
	}
}
