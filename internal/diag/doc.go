// Package diag defines the diagnostic model shared by the lexer, the parser
// and the refactoring passes.
//
// Producers emit through a Reporter so they never depend on storage. The
// common sinks are BagReporter (collects into a Bag) and DedupReporter, which
// drops repeats produced by parser recovery.
//
// Refactorings never report errors here: a placeholder that cannot be expanded
// simply yields no edits. Diagnostics describe problems in the source text
// itself (unknown characters, unterminated comments, unexpected tokens).
//
// Keep the data model deterministic: Bag.Sort gives a stable order so CLI
// output and tests do not depend on scan order.
package diag
