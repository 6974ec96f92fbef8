// Package en1992 contains sample formula implementations from
// EN 1992-1-1 (Eurocode 2: design of concrete structures). The full
// catalogue lives outside this module; these formulas exist to exercise
// the computed-value framework end to end and to serve as the reference
// shape for new formula implementations.
package en1992

// SourceDocument is the governing specification for this package
const SourceDocument = "EN 1992-1-1"
