package hooks

import (
	"cmp"

	"github.com/katalvlaran/avltree/avl"
)

// Chain returns hooks that invoke every non-nil callback of hs in order.
// A field stays nil when no input set defines it, so the tree skips it.
func Chain[T cmp.Ordered](hs ...avl.Hooks[T]) avl.Hooks[T] {
	var (
		onCreate, onRemove, onRewrite []func(T)
		onRotate                      []func(avl.Rotation, T)
	)
	for _, h := range hs {
		if h.OnCreate != nil {
			onCreate = append(onCreate, h.OnCreate)
		}
		if h.OnRemove != nil {
			onRemove = append(onRemove, h.OnRemove)
		}
		if h.OnRewrite != nil {
			onRewrite = append(onRewrite, h.OnRewrite)
		}
		if h.OnRotate != nil {
			onRotate = append(onRotate, h.OnRotate)
		}
	}

	var out avl.Hooks[T]
	out.OnCreate = fanOut(onCreate)
	out.OnRemove = fanOut(onRemove)
	out.OnRewrite = fanOut(onRewrite)
	if len(onRotate) > 0 {
		out.OnRotate = func(dir avl.Rotation, pivot T) {
			for _, fn := range onRotate {
				fn(dir, pivot)
			}
		}
	}

	return out
}

func fanOut[T any](fns []func(T)) func(T) {
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}

	return func(v T) {
		for _, fn := range fns {
			fn(v)
		}
	}
}
