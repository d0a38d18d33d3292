// Package tree loads the component hierarchy of a report into memory.
package tree

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"github.com/Sumatoshi-tech/scanreport/pkg/report"
)

// Sentinel errors.
var (
	// ErrNoRoot is returned when the metadata names no root component.
	ErrNoRoot = errors.New("report has no root component")

	// ErrNotATree is returned when a component is reachable more than once.
	ErrNotATree = errors.New("component hierarchy is not a tree")
)

// Source provides the component descriptors of one report.
type Source interface {
	Metadata() (report.Metadata, error)
	Component(ref int32) (report.Component, error)
}

// Component is a node of the loaded hierarchy.
type Component struct {
	Parent   *Component
	Children []*Component
	report.Component
	Depth int
}

// IsFile reports whether the component is a leaf FILE.
func (c *Component) IsFile() bool {
	return c.Type == report.ComponentTypeFile
}

// Tree is an immutable component hierarchy.
type Tree struct {
	Root  *Component
	byRef map[int32]*Component
	Meta  report.Metadata
}

// Size returns the number of components.
func (t *Tree) Size() int {
	return len(t.byRef)
}

// Get returns the component with the given ref.
func (t *Tree) Get(ref int32) (*Component, bool) {
	c, ok := t.byRef[ref]

	return c, ok
}

// Walk calls fn for every component in breadth-first order.
func (t *Tree) Walk(fn func(*Component) bool) {
	queue := []*Component{t.Root}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if !fn(c) {
			return
		}

		queue = append(queue, c.Children...)
	}
}

// Load reads the metadata of src and then every component reachable from the
// root, breadth-first. Children keep the order of their parent's ChildRefs.
func Load(src Source) (*Tree, error) {
	meta, err := src.Metadata()
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}

	if meta.RootComponentRef <= 0 {
		return nil, ErrNoRoot
	}

	visited := roaring.New()

	root, err := loadComponent(src, meta.RootComponentRef, nil, visited)
	if err != nil {
		return nil, err
	}

	t := &Tree{Root: root, Meta: meta, byRef: map[int32]*Component{root.Ref: root}}
	queue := []*Component{root}

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		parent.Children = make([]*Component, 0, len(parent.ChildRefs))

		for _, ref := range parent.ChildRefs {
			child, childErr := loadComponent(src, ref, parent, visited)
			if childErr != nil {
				return nil, childErr
			}

			parent.Children = append(parent.Children, child)
			t.byRef[ref] = child
			queue = append(queue, child)
		}
	}

	return t, nil
}

func loadComponent(src Source, ref int32, parent *Component, visited *roaring.Bitmap) (*Component, error) {
	if ref <= 0 {
		return nil, fmt.Errorf("load tree: %w: %d", report.ErrInvalidRef, ref)
	}

	if !visited.CheckedAdd(uint32(ref)) {
		return nil, fmt.Errorf("%w: component %d reached twice", ErrNotATree, ref)
	}

	desc, err := src.Component(ref)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}

	c := &Component{Component: desc, Parent: parent}
	if parent != nil {
		c.Depth = parent.Depth + 1
	}

	return c, nil
}
