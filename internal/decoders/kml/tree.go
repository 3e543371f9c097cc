package kml

import "strings"

// node is one element inside a placemark subtree.
type node struct {
	name     string
	attrs    map[string]string
	children []*node
	text     strings.Builder
	start    int64
	end      int64
}

// find returns the first descendant named name in document order.
func (n *node) find(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if found := c.find(name); found != nil {
			return found
		}
	}
	return nil
}

// walk visits every descendant in document order.
func (n *node) walk(fn func(*node)) {
	for _, c := range n.children {
		fn(c)
		c.walk(fn)
	}
}
