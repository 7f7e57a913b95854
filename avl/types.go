// Package avl defines the sentinel errors, rotation kinds, hooks and
// functional options shared by every Tree operation.
package avl

import (
	"cmp"
	"errors"
)

var (
	// ErrNotFound is returned by Delete and Find when the value is absent.
	ErrNotFound = errors.New("avl: value not found")

	// ErrEmptyTree is returned by Min and Max when the tree holds no values.
	ErrEmptyTree = errors.New("avl: tree is empty")

	// ErrInvariantViolated is returned by Validate when the BST, height,
	// balance or size invariant does not hold.
	ErrInvariantViolated = errors.New("avl: invariant violated")
)

// Rotation identifies the direction of a single rotation.
type Rotation int

const (
	// RotateLeft promotes the right child into the parent position.
	RotateLeft Rotation = iota
	// RotateRight promotes the left child into the parent position.
	RotateRight
)

// String returns "left" or "right".
func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "unknown"
	}
}

// Hooks are optional instrumentation callbacks invoked at structural
// decision points. They must not mutate the tree. A nil field is skipped.
type Hooks[T cmp.Ordered] struct {
	// OnCreate fires when Insert allocates a new leaf for value.
	OnCreate func(value T)

	// OnRemove fires once per successful Delete with the deleted value.
	OnRemove func(value T)

	// OnRotate fires for every single rotation; pivot is the value of the
	// subtree root before the rotation. A double rotation fires twice.
	OnRotate func(dir Rotation, pivot T)

	// OnRewrite fires when Insert overwrites a present value under the
	// rewrite policy.
	OnRewrite func(value T)
}

// Option configures a Tree at construction time.
// Use with New(opts...).
type Option[T cmp.Ordered] func(*Options[T])

// Options holds the construction parameters of a Tree.
type Options[T cmp.Ordered] struct {
	// Rewrite selects the duplicate policy: true overwrites the stored
	// value in place, false ignores the insert. Default is false.
	Rewrite bool

	// Values are inserted in order right after the tree is built.
	// Duplicates follow the Rewrite policy.
	Values []T

	// Hooks receives structural events. Zero value disables all hooks.
	Hooks Hooks[T]
}

// DefaultOptions returns an Options struct with:
//   - Rewrite disabled (duplicates are ignored)
//   - No initial values
//   - No hooks
func DefaultOptions[T cmp.Ordered]() Options[T] {
	return Options[T]{
		Rewrite: false,
		Values:  nil,
		Hooks:   Hooks[T]{},
	}
}

// WithRewrite returns an Option that sets the duplicate insertion policy.
func WithRewrite[T cmp.Ordered](rewrite bool) Option[T] {
	return func(o *Options[T]) {
		o.Rewrite = rewrite
	}
}

// WithValues returns an Option that seeds the tree with values, inserted
// in iteration order. Repeated calls append.
func WithValues[T cmp.Ordered](values ...T) Option[T] {
	return func(o *Options[T]) {
		o.Values = append(o.Values, values...)
	}
}

// WithHooks returns an Option that installs a full hook set, replacing
// any hooks configured by earlier options.
func WithHooks[T cmp.Ordered](h Hooks[T]) Option[T] {
	return func(o *Options[T]) {
		o.Hooks = h
	}
}

// WithOnCreate returns an Option that installs fn as the OnCreate hook.
func WithOnCreate[T cmp.Ordered](fn func(value T)) Option[T] {
	return func(o *Options[T]) {
		o.Hooks.OnCreate = fn
	}
}

// WithOnRemove returns an Option that installs fn as the OnRemove hook.
func WithOnRemove[T cmp.Ordered](fn func(value T)) Option[T] {
	return func(o *Options[T]) {
		o.Hooks.OnRemove = fn
	}
}

// WithOnRotate returns an Option that installs fn as the OnRotate hook.
func WithOnRotate[T cmp.Ordered](fn func(dir Rotation, pivot T)) Option[T] {
	return func(o *Options[T]) {
		o.Hooks.OnRotate = fn
	}
}

// WithOnRewrite returns an Option that installs fn as the OnRewrite hook.
func WithOnRewrite[T cmp.Ordered](fn func(value T)) Option[T] {
	return func(o *Options[T]) {
		o.Hooks.OnRewrite = fn
	}
}
