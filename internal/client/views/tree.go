// Package views contains pure derived computations over store state:
// the category tree, client-side transaction filtering and aggregate
// totals. Functions here never touch the network and never mutate their
// inputs; stores call them on read.
package views

import "github.com/ledgerline/ledgerline/internal/client/models"

// CategoryNode is one node of the derived category forest.
type CategoryNode struct {
	models.Category
	Children []*CategoryNode
}

// BuildCategoryTree turns the flat category collection into a forest.
//
// Two passes: create every node keyed by id, then attach each to its
// parent's children (or to the roots when it has no parent, or when the
// parent id does not resolve to a loaded category — orphans are promoted
// rather than dropped). Input order is preserved within each level.
//
// Parent cycles cannot be attached to any root; such nodes are promoted
// to roots as well, so no category ever disappears from display.
func BuildCategoryTree(categories []models.Category) []*CategoryNode {
	nodes := make(map[string]*CategoryNode, len(categories))
	for _, cat := range categories {
		nodes[cat.ID] = &CategoryNode{Category: cat}
	}

	var roots []*CategoryNode
	parentOf := make(map[string]*CategoryNode, len(categories))
	for _, cat := range categories {
		node := nodes[cat.ID]
		if cat.ParentCategoryID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[cat.ParentCategoryID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
		parentOf[cat.ID] = parent
	}

	reached := make(map[string]bool, len(categories))
	for _, root := range roots {
		markReached(root, reached)
	}

	// nodes not reachable from any root sit on a parent cycle; break the
	// cycle by detaching the first such node and promoting it
	for _, cat := range categories {
		if reached[cat.ID] {
			continue
		}
		node := nodes[cat.ID]
		if parent := parentOf[cat.ID]; parent != nil {
			parent.Children = removeChild(parent.Children, node)
		}
		roots = append(roots, node)
		markReached(node, reached)
	}

	return roots
}

func markReached(node *CategoryNode, reached map[string]bool) {
	if reached[node.ID] {
		return
	}
	reached[node.ID] = true
	for _, child := range node.Children {
		markReached(child, reached)
	}
}

func removeChild(children []*CategoryNode, node *CategoryNode) []*CategoryNode {
	for i, c := range children {
		if c == node {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}
