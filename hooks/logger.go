package hooks

import (
	"cmp"
	"context"
	"log/slog"

	"github.com/katalvlaran/avltree/avl"
)

// Logger returns hooks that write one record per structural event to l at
// the given level. Records carry an "event" attribute (create, remove,
// rotate, rewrite) and the value; rotations add "direction".
// A nil logger falls back to slog.Default().
func Logger[T cmp.Ordered](l *slog.Logger, level slog.Level) avl.Hooks[T] {
	if l == nil {
		l = slog.Default()
	}
	l = l.With("component", "avl")
	ctx := context.Background()

	return avl.Hooks[T]{
		OnCreate: func(v T) {
			l.Log(ctx, level, "node created", "event", "create", "value", v)
		},
		OnRemove: func(v T) {
			l.Log(ctx, level, "node removed", "event", "remove", "value", v)
		},
		OnRotate: func(dir avl.Rotation, pivot T) {
			l.Log(ctx, level, "subtree rotated", "event", "rotate", "direction", dir.String(), "pivot", pivot)
		},
		OnRewrite: func(v T) {
			l.Log(ctx, level, "value rewritten", "event", "rewrite", "value", v)
		},
	}
}
