// Package tree renders view trees for the terminal.
package tree

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/ui/output"
	"go.trai.ch/desk/internal/ui/style"
)

// Renderer writes views as indented trees.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: output.New(w)}
}

// Render writes a header line for view followed by its element tree.
func (r *Renderer) Render(view *domain.View) error {
	var b strings.Builder

	title := view.Title
	if title == "" {
		title = view.ID.String()
	}
	b.WriteString(r.out.String(title).Foreground(r.out.Color(string(style.Iris))).Bold().String())

	meta := view.ID.String()
	if view.Controller != "" {
		meta += ", controller " + string(view.Controller)
	}
	b.WriteString(" " + r.out.String("("+meta+")").Foreground(r.out.Color(string(style.Mist))).String())
	b.WriteString("\n")

	if view.Root != nil {
		b.WriteString(r.label(view.Root) + "\n")
		r.children(&b, view.Root, "")
	}

	_, err := r.out.WriteString(b.String())
	return err
}

func (r *Renderer) children(b *strings.Builder, node *domain.Node, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1

		branch, next := style.Branch, style.Pipe
		if last {
			branch, next = style.Last, style.Indent
		}

		connector := r.out.String(prefix + branch + " ").Foreground(r.out.Color(string(style.Slate))).String()
		b.WriteString(connector + r.label(child) + "\n")
		r.children(b, child, prefix+next+" ")
	}
}

// label formats a node as kind#id "text" key=value...
func (r *Renderer) label(node *domain.Node) string {
	s := node.Kind
	if node.ID != "" {
		s += "#" + node.ID
	}
	if node.Text != "" {
		s += " " + r.out.String(fmt.Sprintf("%q", node.Text)).Foreground(r.out.Color(string(style.Green))).String()
	}

	for _, key := range slices.Sorted(maps.Keys(node.Props)) {
		s += " " + r.out.String(key+"="+node.Props[key]).Foreground(r.out.Color(string(style.Mist))).String()
	}
	return s
}
