package leftist

import (
	"fmt"
	"io"
)

// PrintTree writes a structural dump of the heap to w, one node per line,
// depth first with parents before children. Indentation encodes depth, the
// L/R marker the branch side, and each line shows the node's key and null
// path length. The exact format is a debugging aid, not a stable surface.
func (h *Heap) PrintTree(w io.Writer) error {
	if h.root == nil {
		if _, err := fmt.Fprintln(w, "Tree is empty."); err != nil {
			return fmt.Errorf("failed to write tree dump: %w", err)
		}
		return nil
	}

	// The root hangs off the handle's single slot, rendered as an R branch.
	return printNode(w, h.root, "", false)
}

// printNode renders n and its subtree.
func printNode(w io.Writer, n *node, prefix string, isLeft bool) error {
	if n == nil {
		return nil
	}

	branch := "└──R:"
	childPrefix := prefix + "    "
	if isLeft {
		branch = "├──L:"
		childPrefix = prefix + "│   "
	}

	if _, err := fmt.Fprintf(w, "%s%s%d (npl:%d)\n", prefix, branch, n.key, n.npl); err != nil {
		return fmt.Errorf("failed to write tree dump: %w", err)
	}

	if err := printNode(w, n.left, childPrefix, true); err != nil {
		return err
	}
	return printNode(w, n.right, childPrefix, false)
}
