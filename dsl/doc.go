// Package dsl parses the compact rule notation into rule-tree values.
//
// What: a single clause reads
//
//	[origin:][symmetry;]find>replace
//
// where find and replace are row-strings separated by "/", letters X, Y,
// Z (case-insensitive) select a symmetry axis set, and origin is a single
// symbol stamped at the grid center before the rule's first match. Commas
// bundle several clauses into one node, grouped as a One by default or an
// All when the bundle is wrapped "{...}".
//
// Why: this is pure surface over the core value constructors (rule.New,
// pattern.New, symmetry.FromAxes, ruletree.NewOne/NewAll) — a correct core
// implementation needs none of this package; it exists only so rule sets
// can be authored as text instead of Go literals.
//
// Errors: clauses that cannot be split into find/replace rows return
// ErrMalformedRule; ragged or mismatched shapes return the pattern
// package's errors; unrecognized symmetry letters return
// ErrUnknownSymmetryLetter. Parsing happens once,
// at load time — a successfully parsed node never fails at Step time for
// syntactic reasons.
package dsl
