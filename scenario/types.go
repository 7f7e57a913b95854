package scenario

import "errors"

var (
	// ErrNilScenario is returned by Run when the scenario is nil.
	ErrNilScenario = errors.New("scenario: scenario is nil")

	// ErrParse wraps YAML decoding failures.
	ErrParse = errors.New("scenario: parse")

	// ErrEmptyStep indicates a step without any operation.
	ErrEmptyStep = errors.New("scenario: step has no operation")

	// ErrAmbiguousStep indicates a step naming more than one operation.
	ErrAmbiguousStep = errors.New("scenario: step has more than one operation")
)

// Scenario is one scripted session.
type Scenario struct {
	// Rewrite selects the duplicate policy of the tree.
	Rewrite bool `yaml:"rewrite"`

	// Values seed the tree before the first step.
	Values []int `yaml:"values,omitempty"`

	// Steps run in order after seeding.
	Steps []Step `yaml:"steps,omitempty"`
}

// Step performs exactly one operation.
type Step struct {
	Insert   []int `yaml:"insert,omitempty"`
	Delete   []int `yaml:"delete,omitempty"`
	Contains []int `yaml:"contains,omitempty"`
	Validate bool  `yaml:"validate,omitempty"`
}

// Op names the operation a step performs.
type Op string

const (
	OpInsert   Op = "insert"
	OpDelete   Op = "delete"
	OpContains Op = "contains"
	OpValidate Op = "validate"
)

// Op returns the single operation of s, or an error when s names none or
// several.
func (s Step) Op() (Op, error) {
	var ops []Op
	if len(s.Insert) > 0 {
		ops = append(ops, OpInsert)
	}
	if len(s.Delete) > 0 {
		ops = append(ops, OpDelete)
	}
	if len(s.Contains) > 0 {
		ops = append(ops, OpContains)
	}
	if s.Validate {
		ops = append(ops, OpValidate)
	}

	switch len(ops) {
	case 0:
		return "", ErrEmptyStep
	case 1:
		return ops[0], nil
	default:
		return "", ErrAmbiguousStep
	}
}

// Default returns the scenario written by "avltree init": the insert order
// that forces a double rotation, a two-child delete and a membership probe.
func Default() *Scenario {
	return &Scenario{
		Rewrite: false,
		Values:  []int{10, 20, 3, 7, 8, 9, 1, 6},
		Steps: []Step{
			{Delete: []int{8}},
			{Contains: []int{8, 9}},
			{Insert: []int{40, 30, 20, 0}},
			{Validate: true},
		},
	}
}
