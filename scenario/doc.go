// Package scenario loads scripted tree sessions from YAML and replays them
// against an avl.Tree.
//
// A scenario names the duplicate policy, the seed values and an ordered
// list of steps. Each step performs exactly one kind of operation:
//
//	rewrite: false
//	values: [40, 30, 20, 0]
//	steps:
//	  - insert: [10, 5]
//	  - delete: [30, 99]
//	  - contains: [20, 30]
//	  - validate: true
//
// Run applies the steps in order. Delete misses and membership answers are
// collected in the Report; an invariant failure during a validate step
// aborts the run.
//
// Errors:
//
//   - ErrNilScenario    Run was given a nil scenario
//   - ErrParse          the document is not valid scenario YAML (empty input included)
//   - ErrEmptyStep      a step names no operation
//   - ErrAmbiguousStep  a step names more than one operation
package scenario
