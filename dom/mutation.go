package dom

// lastNodeInSubtree returns the deepest-right descendant of n in tree
// order, or n itself if n has no descendants. Unlike the splice primitives
// in this file, it is not O(1); it walks the right spine of n's subtree via
// the following chain.
func lastNodeInSubtree(n Node) Node {
	current := n
	for current.linkFields().following != nil && n.IsAncestorOf(current.linkFields().following) {
		current = current.linkFields().following
	}
	return current
}

// appendChild implements
// https://dom.spec.whatwg.org/#concept-node-append (the C1 primitive:
// splice child onto the end of parent's child list). child must not
// currently have a parent.
func appendChild(parent, child Node) {
	insertChildBefore(parent, child, nil)
}

// insertChildBefore implements the C1 `insert_child_before` primitive:
// splice child (and its subtree) in before before, or at the end of
// parent's child list if before is nil. child must not currently have a
// parent (it panics otherwise); if before is non-nil it must already be a
// child of parent.
func insertChildBefore(parent, child, before Node) {
	p := parent.linkFields()
	c := child.linkFields()
	if c.parent != nil {
		panic("dom: inserting a node that already has a parent")
	}

	var prevSibling Node
	if before == nil {
		prevSibling = p.lastChild
	} else {
		prevSibling = before.PreviousSibling()
	}

	c.parent = parent

	c.previousSibling = prevSibling
	c.nextSibling = before
	if prevSibling != nil {
		prevSibling.linkFields().nextSibling = child
	} else {
		p.firstChild = child
	}
	if before != nil {
		before.linkFields().previousSibling = child
	} else {
		p.lastChild = child
	}

	var predecessor Node
	if prevSibling != nil {
		predecessor = lastNodeInSubtree(prevSibling)
	} else {
		predecessor = parent
	}
	successor := predecessor.linkFields().following

	tail := lastNodeInSubtree(child)

	c.preceding = predecessor
	predecessor.linkFields().following = child
	tail.linkFields().following = successor
	if successor != nil {
		successor.linkFields().preceding = tail
	}
}

// removeFromParent implements the C1 `remove_from_parent` primitive.
// Removing a detached node is a no-op. The removed subtree's own internal
// links (parent/child/sibling/preceding/following among its descendants)
// are left intact so it can be re-inserted elsewhere.
func removeFromParent(child Node) {
	c := child.linkFields()
	parent := c.parent
	if parent == nil {
		return
	}
	p := parent.linkFields()

	prevSibling := c.previousSibling
	nextSibling := c.nextSibling
	if prevSibling != nil {
		prevSibling.linkFields().nextSibling = nextSibling
	} else {
		p.firstChild = nextSibling
	}
	if nextSibling != nil {
		nextSibling.linkFields().previousSibling = prevSibling
	} else {
		p.lastChild = prevSibling
	}

	predecessor := c.preceding
	tail := lastNodeInSubtree(child)
	successor := tail.linkFields().following

	if predecessor != nil {
		predecessor.linkFields().following = successor
	}
	if successor != nil {
		successor.linkFields().preceding = predecessor
	}

	c.parent = nil
	c.previousSibling = nil
	c.nextSibling = nil
	c.preceding = nil
	tail.linkFields().following = nil
}

// childCount returns the number of children of n, via the sibling chain.
func childCount(n Node) int {
	count := 0
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		count++
	}
	return count
}
