// Package analysis implements the deterministic argument-scoring pipeline:
// rule-based fallacy detection, structural analysis of claim/evidence/
// reasoning signals, and composition of the overall score and feedback.
//
// All evaluation is a pure function of the argument text and an immutable
// Params value. Params are built once at startup (or substituted in tests)
// and passed by reference; nothing in this package performs I/O.
package analysis
