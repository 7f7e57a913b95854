package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/avltree/avl"
)

// Report is the outcome of Run.
type Report struct {
	// Tree is the tree after the last step.
	Tree *avl.Tree[int]

	// Ascending is the final in-order snapshot.
	Ascending []int

	// Len and Height describe the final tree.
	Len    int
	Height int

	// Missing lists every delete that hit an absent value, in step order.
	Missing []int

	// Found records the answer of every contains probe; a value probed
	// twice keeps the later answer.
	Found map[int]bool

	// Steps counts the steps executed.
	Steps int
}

// Run builds a tree from s and replays its steps. opts are applied after
// the scenario's own policy and seed values, so callers can attach hooks.
// Run stops at the first validate step that fails and returns the partial
// report together with the error.
func Run(s *Scenario, opts ...avl.Option[int]) (*Report, error) {
	if s == nil {
		return nil, ErrNilScenario
	}

	// 1. Build the tree: policy first, caller options next, seeds last
	all := make([]avl.Option[int], 0, len(opts)+2)
	all = append(all, avl.WithRewrite[int](s.Rewrite))
	all = append(all, opts...)
	all = append(all, avl.WithValues(s.Values...))
	tr := avl.New(all...)

	rep := &Report{Tree: tr, Found: make(map[int]bool)}

	// 2. Replay steps in order
	var (
		i   int
		st  Step
		op  Op
		err error
	)
	for i, st = range s.Steps {
		if op, err = st.Op(); err != nil {
			return rep.finish(), fmt.Errorf("scenario: step %d: %w", i+1, err)
		}

		switch op {
		case OpInsert:
			tr.InsertMany(st.Insert...)
		case OpDelete:
			for _, v := range st.Delete {
				if err = tr.Delete(v); errors.Is(err, avl.ErrNotFound) {
					rep.Missing = append(rep.Missing, v)
				}
			}
		case OpContains:
			for _, v := range st.Contains {
				rep.Found[v] = tr.Contains(v)
			}
		case OpValidate:
			if err = tr.Validate(); err != nil {
				return rep.finish(), fmt.Errorf("scenario: step %d: %w", i+1, err)
			}
		}
		rep.Steps++
	}

	return rep.finish(), nil
}

// finish fills the snapshot fields from the current tree.
func (r *Report) finish() *Report {
	r.Ascending = r.Tree.Values()
	r.Len = r.Tree.Len()
	r.Height = r.Tree.Height()

	return r
}
