// Package ruletree composes Rule leaves into higher-order control nodes —
// One, All, Markov, Sequence, Steps — under a single Node.Step protocol.
//
// Step returns true when a node made progress and wishes to be called
// again, false when it is exhausted. Composite nodes carry their resumable
// state (cursors, accumulated counts) as explicit struct fields rather
// than as a coroutine's program counter, so the interpreter itself stays
// stackless: RunToExhaustion is nothing more than "call Step until it
// returns false".
//
// No Step call ever fails: an empty match set is the ordinary signal of
// node termination and propagates upward through enclosing Sequence and
// Steps nodes exactly as spec.md describes.
package ruletree
