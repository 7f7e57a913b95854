// Package render draws an avl tree as indented text for debugging.
//
// The tree is printed sideways: the right subtree above its parent and the
// left subtree below, so reading top to bottom lists values in descending
// order and tilting the head left shows the usual picture.
//
//	│   ┌── 20
//	│ ┌── 10
//	│ │ └── 9
//	└── 8
//	  │ ┌── 7
//	  └── 3
//	    └── 1
//
// Render only reads Value, Height, Left and Right; it never mutates the tree.
package render

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/avltree/avl"
)

// ErrNilWriter is returned by Render when w is nil.
var ErrNilWriter = errors.New("render: writer is nil")

// Empty is printed for an absent root.
const Empty = "<empty>"

// Option configures the output of Render.
type Option func(*options)

type options struct {
	heights bool
	indent  int
}

// WithHeights annotates every value with its subtree height: "8 (h=3)".
func WithHeights() Option {
	return func(o *options) { o.heights = true }
}

// WithIndent sets the width of one nesting level (minimum 2, default 2).
func WithIndent(width int) Option {
	return func(o *options) {
		if width >= 2 {
			o.indent = width
		}
	}
}

// Render writes the subtree rooted at root to w, one node per line.
func Render[T cmp.Ordered](w io.Writer, root *avl.Node[T], opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	o := options{indent: 2}
	for _, fn := range opts {
		fn(&o)
	}

	bw := bufio.NewWriter(w)
	if root == nil {
		if _, err := fmt.Fprintln(bw, Empty); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		return flush(bw)
	}

	p := &printer[T]{w: bw, opts: o}
	p.walk(root, "", true)
	if p.err != nil {
		return fmt.Errorf("render: %w", p.err)
	}

	return flush(bw)
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// String renders root into a string, ignoring write errors that cannot occur
// on a strings.Builder.
func String[T cmp.Ordered](root *avl.Node[T], opts ...Option) string {
	var sb strings.Builder
	_ = Render(&sb, root, opts...)

	return sb.String()
}

type printer[T cmp.Ordered] struct {
	w    io.Writer
	opts options
	err  error // first write error; later writes are skipped
}

// walk prints n with its right subtree above and its left subtree below.
// prefix carries the vertical rails of the ancestors; tail marks n as the
// lower child of its parent (or the root).
func (p *printer[T]) walk(n *avl.Node[T], prefix string, tail bool) {
	if n == nil || p.err != nil {
		return
	}
	pad := strings.Repeat(" ", p.opts.indent-1)

	upper, lower := prefix+"│"+pad, prefix+" "+pad
	if !tail {
		upper, lower = prefix+" "+pad, prefix+"│"+pad
	}

	p.walk(n.Right(), upper, false)

	connector := "└── "
	if !tail {
		connector = "┌── "
	}
	label := fmt.Sprint(n.Value())
	if p.opts.heights {
		label = fmt.Sprintf("%v (h=%d)", n.Value(), n.Height())
	}
	if _, err := fmt.Fprintf(p.w, "%s%s%s\n", prefix, connector, label); err != nil {
		p.err = err
		return
	}

	p.walk(n.Left(), lower, true)
}
