package display

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/lvmine/fptree"
)

// Option configures Tree rendering.
type Option func(*options)

type options struct {
	color  bool
	indent string
}

// WithColor forces ANSI colouring on or off, regardless of the terminal.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

// WithIndent sets the per-level indentation (default two spaces).
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// palette holds the colour functions used by Tree.
type palette struct {
	item  *color.Color
	count *color.Color
	title *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		item:  color.New(color.FgCyan),
		count: color.New(color.FgYellow),
		title: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.item, p.count, p.title} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Tree writes the tree structure (children in ascending item order)
// followed by the header table (items in ascending order), e.g.
//
//	Root
//	  a:5
//	    b:2
//	Header table:
//	  a support=5 chain: a:5
func Tree[T fptree.Item](w io.Writer, t *fptree.Tree[T], opts ...Option) error {
	o := options{indent: "  "}
	for _, fn := range opts {
		fn(&o)
	}
	p := newPalette(o.color)

	var b strings.Builder
	b.WriteString(p.title.Sprint("Root"))
	b.WriteByte('\n')
	writeChildren(&b, t, fptree.RootID, 1, o.indent, p)

	b.WriteString(p.title.Sprint("Header table:"))
	b.WriteByte('\n')
	items := t.Items()
	slices.Sort(items)
	for _, it := range items {
		e, _ := t.Header(it)
		fmt.Fprintf(&b, "%s%s support=%s chain:", o.indent, p.item.Sprint(it), p.count.Sprint(e.Support))
		sep := " "
		for id := range t.Chain(it) {
			n := t.Node(id)
			fmt.Fprintf(&b, "%s%s:%s", sep, p.item.Sprint(n.Item), p.count.Sprint(n.Count))
			sep = " -> "
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeChildren[T fptree.Item](b *strings.Builder, t *fptree.Tree[T], id fptree.NodeID, depth int, indent string, p palette) {
	for _, c := range t.Children(id) {
		n := t.Node(c)
		fmt.Fprintf(b, "%s%s:%s\n", strings.Repeat(indent, depth), p.item.Sprint(n.Item), p.count.Sprint(n.Count))
		writeChildren(b, t, c, depth+1, indent, p)
	}
}
