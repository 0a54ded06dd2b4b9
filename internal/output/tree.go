package output

import (
	"fmt"
	"io"
	"iter"

	"github.com/wiptools/wip/internal/tree"
)

// NameFunc returns the display text of a node, usually a styled name.
type NameFunc func(n *tree.Node) string

// PlainName renders the bare node name.
func PlainName(n *tree.Node) string {
	return n.Name
}

// StyledName renders directories in the directory style and files in the
// file style.
func StyledName(n *tree.Node) string {
	if n.IsDir {
		return StyleDir.Render(n.Name)
	}
	return StyleFile.Render(n.Name)
}

// RenderTree writes one line per node of seq: the root as its bare name,
// every other node preceded by its dimmed branch prefix. The first
// enumeration error stops rendering and is returned.
func RenderTree(w io.Writer, seq iter.Seq2[*tree.Node, error], name NameFunc) error {
	return RenderTreeIndent(w, seq, name, "")
}

// RenderTreeIndent is RenderTree with every line preceded by indent.
func RenderTreeIndent(w io.Writer, seq iter.Seq2[*tree.Node, error], name NameFunc, indent string) error {
	if name == nil {
		name = PlainName
	}
	for n, err := range seq {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, indent+StyleDim.Render(tree.Prefix(n))+name(n)); err != nil {
			return err
		}
	}
	return nil
}
