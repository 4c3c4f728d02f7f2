// Package query models boolean query conditions over named fields.
//
// A condition is a tree of predicates combined with AND, OR, and NOT:
//
//   - equality/comparison of a field against a typed literal,
//   - set membership of a field in a list of literals,
//   - nullness checks.
//
// Conditions are built fluently and render as SQL-ish text:
//
//	cond := query.Field("a").Eq(query.Uint8(2)).
//	    And(query.Field("b").Gt(query.Uint8(25)))
//	fmt.Println(cond) // (a = 2 AND b > 25)
//
// Every node knows its own semantic negation: Negate rewrites the tree
// (operators flip, AND/OR distribute by De Morgan, double negation cancels)
// instead of complementing evaluation results. Engines that later grow
// null-aware semantics keep correct behavior that a bitwise complement would
// not provide.
//
// The package is purely syntactic. Evaluation against column data lives with
// the data.
package query
