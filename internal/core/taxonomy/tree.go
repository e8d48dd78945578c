// Package taxonomy builds and walks a tenant's category forest.
//
// All walks are iterative and track visited ids, so corrupt parent links
// (self references or longer cycles written around the guard) can never hang a request.
package taxonomy

import (
	"slices"
	"strings"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// PathSeparator joins category names in a breadcrumb path.
const PathSeparator = " > "

// TreeNode is a category with its children attached.
type TreeNode struct {
	domain.Category
	Children []*TreeNode `json:"children"`
}

// Index is an adjacency view over a flat list of categories.
type Index struct {
	byID     map[int64]domain.Category
	children map[int64][]int64
	order    []int64
}

// NewIndex indexes the given categories. Children keep their input order.
// When an id appears twice the last occurrence wins.
func NewIndex(categories []domain.Category) *Index {
	idx := &Index{
		byID:     make(map[int64]domain.Category, len(categories)),
		children: make(map[int64][]int64),
		order:    make([]int64, 0, len(categories)),
	}
	for _, c := range categories {
		if _, dup := idx.byID[c.ID]; !dup {
			idx.order = append(idx.order, c.ID)
		}
		idx.byID[c.ID] = c
	}
	for _, id := range idx.order {
		c := idx.byID[id]
		if c.SuperCategoryID != nil {
			idx.children[*c.SuperCategoryID] = append(idx.children[*c.SuperCategoryID], id)
		}
	}
	return idx
}

// Len returns the number of indexed categories.
func (idx *Index) Len() int {
	return len(idx.byID)
}

// Get returns the category with the given id.
func (idx *Index) Get(id int64) (domain.Category, bool) {
	c, ok := idx.byID[id]
	return c, ok
}

// Children returns the ids of the direct children of id, in input order.
func (idx *Index) Children(id int64) []int64 {
	return slices.Clone(idx.children[id])
}

// Orphans returns categories whose parent id is not part of the index.
func (idx *Index) Orphans() []int64 {
	var out []int64
	for _, id := range idx.order {
		c := idx.byID[id]
		if c.SuperCategoryID == nil {
			continue
		}
		if _, ok := idx.byID[*c.SuperCategoryID]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Path returns the breadcrumb of id from its root, e.g. "Food > Dairy > Cheese".
// A root yields its own name and an unknown id yields "".
func (idx *Index) Path(id int64) string {
	var names []string
	seen := make(map[int64]struct{})
	cur := &id
	for cur != nil {
		if _, loop := seen[*cur]; loop {
			break
		}
		seen[*cur] = struct{}{}
		c, ok := idx.byID[*cur]
		if !ok {
			break
		}
		names = append(names, c.Name)
		cur = c.SuperCategoryID
	}
	slices.Reverse(names)
	return strings.Join(names, PathSeparator)
}

// IsDescendant reports whether nodeID lies strictly below ancestorID.
// The walk starts at nodeID's parent, so IsDescendant(x, x) is false unless x sits on a cycle.
// A chain that loops back on itself is reported as a descendant.
func (idx *Index) IsDescendant(ancestorID, nodeID int64) bool {
	node, ok := idx.byID[nodeID]
	if !ok {
		return false
	}
	seen := map[int64]struct{}{nodeID: {}}
	cur := node.SuperCategoryID
	for cur != nil {
		if *cur == ancestorID {
			return true
		}
		if _, loop := seen[*cur]; loop {
			return true
		}
		seen[*cur] = struct{}{}
		parent, ok := idx.byID[*cur]
		if !ok {
			return false
		}
		cur = parent.SuperCategoryID
	}
	return false
}

// Subtree returns id followed by all of its descendants in depth-first pre-order.
// An unknown id yields nil.
func (idx *Index) Subtree(id int64) []int64 {
	if _, ok := idx.byID[id]; !ok {
		return nil
	}
	var out []int64
	seen := make(map[int64]struct{})
	stack := []int64{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, loop := seen[cur]; loop {
			continue
		}
		seen[cur] = struct{}{}
		out = append(out, cur)
		kids := idx.children[cur]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return out
}

// DeletionOrder returns the subtree of id ordered so that every category precedes its ancestors.
func (idx *Index) DeletionOrder(id int64) []int64 {
	out := idx.Subtree(id)
	slices.Reverse(out)
	return out
}

// BuildTree arranges a flat category list into a forest.
// Roots are ordered by ascending id and children keep their input order.
// Categories whose parent is missing from the input are promoted to roots, as are
// members of a parent cycle that no root can reach.
func BuildTree(categories []domain.Category) []*TreeNode {
	idx := NewIndex(categories)

	nodes := make(map[int64]*TreeNode, idx.Len())
	for _, id := range idx.order {
		nodes[id] = &TreeNode{Category: idx.byID[id], Children: []*TreeNode{}}
	}

	var rootIDs []int64
	for _, id := range idx.order {
		c := idx.byID[id]
		if c.SuperCategoryID == nil {
			rootIDs = append(rootIDs, id)
			continue
		}
		if _, ok := idx.byID[*c.SuperCategoryID]; !ok {
			rootIDs = append(rootIDs, id)
		}
	}

	attached := make(map[int64]struct{}, idx.Len())
	attach := func(rootID int64) {
		stack := []int64{rootID}
		attached[rootID] = struct{}{}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, kid := range idx.children[cur] {
				if _, done := attached[kid]; done {
					continue
				}
				attached[kid] = struct{}{}
				nodes[cur].Children = append(nodes[cur].Children, nodes[kid])
				stack = append(stack, kid)
			}
		}
	}

	slices.Sort(rootIDs)
	for _, id := range rootIDs {
		attach(id)
	}

	// Anything still detached sits on a cycle; break it at the lowest id.
	var stranded []int64
	for _, id := range idx.order {
		if _, ok := attached[id]; !ok {
			stranded = append(stranded, id)
		}
	}
	slices.Sort(stranded)
	for _, id := range stranded {
		if _, ok := attached[id]; ok {
			continue
		}
		rootIDs = append(rootIDs, id)
		attach(id)
	}

	slices.Sort(rootIDs)
	roots := make([]*TreeNode, 0, len(rootIDs))
	for _, id := range rootIDs {
		roots = append(roots, nodes[id])
	}
	return roots
}
