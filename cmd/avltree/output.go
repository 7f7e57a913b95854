package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/avltree/avl"
	"github.com/katalvlaran/avltree/avl/render"
)

// printer writes command results with terminal styling. Styles degrade to
// plain text when w is not a terminal.
type printer struct {
	w     io.Writer
	title lipgloss.Style
	key   lipgloss.Style
	warn  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)

	return &printer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		key:   r.NewStyle().Foreground(lipgloss.Color("8")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (p *printer) heading(s string) {
	fmt.Fprintln(p.w, p.title.Render(s))
}

func (p *printer) field(name string, value any) {
	fmt.Fprintf(p.w, "%s %v\n", p.key.Render(name+":"), value)
}

func (p *printer) warning(format string, args ...any) {
	fmt.Fprintln(p.w, p.warn.Render(fmt.Sprintf(format, args...)))
}

// view selects what summary prints.
type view struct {
	order   string // asc or desc
	dump    bool
	heights bool
}

// summary prints order, size, height and optionally the tree shape.
func (p *printer) summary(tr *avl.Tree[int], v view) error {
	values := tr.Values()
	if v.order == "desc" {
		values = tr.ReverseValues()
	}

	p.field("values", joinInts(values))
	p.field("len", tr.Len())
	p.field("height", tr.Height())
	if lo, err := tr.Min(); err == nil {
		hi, _ := tr.Max()
		p.field("range", fmt.Sprintf("%d..%d", lo, hi))
	}

	if !v.dump {
		return nil
	}
	p.heading("tree")
	var opts []render.Option
	if v.heights {
		opts = append(opts, render.WithHeights())
	}

	return render.Render(p.w, tr.Root(), opts...)
}

// found prints membership answers sorted by value.
func (p *printer) found(answers map[int]bool) {
	keys := make([]int, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		p.field(fmt.Sprintf("contains %d", k), answers[k])
	}
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
