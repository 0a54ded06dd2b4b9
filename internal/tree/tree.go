// Package tree enumerates a directory tree depth-first in a deterministic
// order and reconstructs the branch-drawing prefix of each entry.
package tree

import (
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Branch glyphs.
const (
	ConnectorMiddle = "├──"
	ConnectorLast   = "└──"
	ContinueBar     = "│   "
	ContinueBlank   = "    "
)

// Filter decides whether an entry is part of the tree. A rejected directory
// is pruned together with its descendants; a rejected file is omitted.
type Filter func(path string, info os.FileInfo) bool

// AcceptAll accepts every entry.
func AcceptAll(string, os.FileInfo) bool { return true }

// Node is one filesystem entry produced by Walk.
type Node struct {
	// Path is the entry's path, rooted at the path given to Walk.
	Path string

	// Name is the final path element.
	Name string

	// IsDir reports whether the entry is a directory.
	IsDir bool

	// IsLast reports whether the entry is the final element of its sorted
	// sibling list. The root is never last.
	IsLast bool

	// Depth is 0 for the root and increases by one per level.
	Depth int

	// Parent is nil for the root.
	Parent *Node
}

// IsRoot reports whether n is the root of its walk.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Walk returns a depth-first sequence of the nodes below root, starting with
// root itself. Children of each directory are sorted case-insensitively by
// their full path. The sequence is lazy and restartable: every range over it
// re-reads the filesystem. Enumeration errors are yielded as (nil, err) and
// end the sequence.
func Walk(root string, accept Filter) iter.Seq2[*Node, error] {
	if accept == nil {
		accept = AcceptAll
	}

	return func(yield func(*Node, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			yield(nil, err)
			return
		}

		node := &Node{
			Path:  root,
			Name:  filepath.Base(root),
			IsDir: info.IsDir(),
		}
		if !yield(node, nil) {
			return
		}
		if node.IsDir {
			walkChildren(node, accept, yield)
		}
	}
}

// walkChildren yields the accepted descendants of parent. It returns false
// when the consumer stopped or an error was yielded.
func walkChildren(parent *Node, accept Filter, yield func(*Node, error) bool) bool {
	entries, err := os.ReadDir(parent.Path)
	if err != nil {
		yield(nil, err)
		return false
	}

	type child struct {
		path string
		info os.FileInfo
	}

	children := make([]child, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(parent.Path, e.Name())
		info, err := e.Info()
		if err != nil {
			yield(nil, err)
			return false
		}
		if accept(path, info) {
			children = append(children, child{path: path, info: info})
		}
	}

	sort.SliceStable(children, func(i, j int) bool {
		return strings.ToLower(children[i].path) < strings.ToLower(children[j].path)
	})

	for i, c := range children {
		node := &Node{
			Path:   c.path,
			Name:   c.info.Name(),
			IsDir:  c.info.IsDir(),
			IsLast: i == len(children)-1,
			Depth:  parent.Depth + 1,
			Parent: parent,
		}
		if !yield(node, nil) {
			return false
		}
		if node.IsDir && !walkChildren(node, accept, yield) {
			return false
		}
	}

	return true
}

// Prefix returns the branch drawing that precedes the node's name. The root
// has no prefix. For every other node the prefix holds one continuation run
// per ancestor strictly between the root and the node, in root-to-node
// order, followed by the node's connector and a space.
func Prefix(n *Node) string {
	if n.IsRoot() {
		return ""
	}

	connector := ConnectorMiddle
	if n.IsLast {
		connector = ConnectorLast
	}

	runs := make([]string, 0, n.Depth)
	for a := n.Parent; a != nil && !a.IsRoot(); a = a.Parent {
		if a.IsLast {
			runs = append(runs, ContinueBlank)
		} else {
			runs = append(runs, ContinueBar)
		}
	}

	var b strings.Builder
	for i := len(runs) - 1; i >= 0; i-- {
		b.WriteString(runs[i])
	}
	b.WriteString(connector)
	b.WriteString(" ")
	return b.String()
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[*Node, error]) ([]*Node, error) {
	var nodes []*Node
	for n, err := range seq {
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
