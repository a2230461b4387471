package dom

import "github.com/oinseo/ywdom/domerr"

// insertableKinds are the node kinds EnsurePreInsertionValidity permits as
// the node being inserted.
var insertableKinds = map[Kind]bool{
	DocumentFragmentNode:      true,
	DocumentTypeNode:          true,
	ElementNode:               true,
	TextNode:                  true,
	ProcessingInstructionNode: true,
	CommentNode:               true,
}

func canHaveChildren(parent Node) bool {
	switch parent.(type) {
	case *Document, *DocumentFragment, *ShadowRoot, *Element:
		return true
	default:
		return false
	}
}

// anyChildOfKindBefore reports whether parent has a child of kind kind
// before ref in child order. If ref is nil, it checks all of parent's
// children.
func anyChildOfKindBefore(parent, ref Node, kind Kind) bool {
	for c := parent.FirstChild(); c != nil && c != ref; c = c.NextSibling() {
		if c.Kind() == kind {
			return true
		}
	}
	return false
}

// anyChildOfKindAtOrAfter reports whether parent has a child of kind kind
// at or after ref in child order. If ref is nil, there is nothing after
// the append point, so this always reports false.
func anyChildOfKindAtOrAfter(parent, ref Node, kind Kind) bool {
	if ref == nil {
		return false
	}
	for c := ref; c != nil; c = c.NextSibling() {
		if c.Kind() == kind {
			return true
		}
	}
	return false
}

// EnsurePreInsertionValidity implements
// https://dom.spec.whatwg.org/#concept-node-ensure-pre-insertion-validity.
//
// The Element and DocumentType branches below are disjoint. The original
// implementation this package is grounded on has a documented bug here: its
// switch statement falls through from the Element case into the
// DocumentType case, applying DocumentType's rules to Elements too. This is
// not reproduced; each case is implemented independently instead.
func EnsurePreInsertionValidity(node, parent, beforeChild Node) *domerr.DOMException {
	if !canHaveChildren(parent) {
		return domerr.New(domerr.HierarchyRequestError, "parent of kind "+parent.Kind().String()+" cannot have children")
	}

	if node.HostIncludingInclusiveAncestorOf(parent) {
		return domerr.New(domerr.HierarchyRequestError, "node is a host-including inclusive ancestor of parent")
	}

	if beforeChild != nil && beforeChild.Parent() != parent {
		return domerr.New(domerr.NotFoundError, "before_child is not a child of parent")
	}

	if !insertableKinds[node.Kind()] {
		return domerr.New(domerr.HierarchyRequestError, "a node of kind "+node.Kind().String()+" cannot be inserted")
	}

	if node.Kind() == TextNode {
		if _, ok := parent.(*Document); ok {
			return domerr.New(domerr.HierarchyRequestError, "a Document cannot have a Text child")
		}
	}
	if node.Kind() == DocumentTypeNode {
		if _, ok := parent.(*Document); !ok {
			return domerr.New(domerr.HierarchyRequestError, "a DocumentType child is only valid under a Document")
		}
	}

	doc, parentIsDocument := parent.(*Document)
	if !parentIsDocument {
		return nil
	}

	switch node.Kind() {
	case DocumentFragmentNode:
		elementChildren := 0
		hasText := false
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.Kind() {
			case ElementNode:
				elementChildren++
			case TextNode:
				hasText = true
			}
		}
		if elementChildren > 1 || hasText {
			return domerr.New(domerr.HierarchyRequestError, "a DocumentFragment with more than one element child or any text child cannot become a Document's child")
		}
		if elementChildren == 1 && documentRejectsElementAt(doc, beforeChild) {
			return domerr.New(domerr.HierarchyRequestError, "a Document can have at most one element child, after any doctype")
		}
	case ElementNode:
		if documentRejectsElementAt(doc, beforeChild) {
			return domerr.New(domerr.HierarchyRequestError, "a Document can have at most one element child, after any doctype")
		}
	case DocumentTypeNode:
		if doc.Doctype() != nil ||
			anyChildOfKindBefore(doc, beforeChild, ElementNode) {
			return domerr.New(domerr.HierarchyRequestError, "a Document can have at most one doctype child, before any element")
		}
	}

	return nil
}

func documentRejectsElementAt(doc *Document, beforeChild Node) bool {
	if doc.DocumentElement() != nil {
		return true
	}
	if beforeChild != nil && beforeChild.Kind() == DocumentTypeNode {
		return true
	}
	return anyChildOfKindAtOrAfter(doc, beforeChild, DocumentTypeNode)
}

// Insert implements https://dom.spec.whatwg.org/#concept-node-insert. It
// performs no validation of its own; callers that need validation use
// PreInsert, which calls EnsurePreInsertionValidity first.
func Insert(node, parent, beforeChild Node, suppressObservers bool) {
	var nodes []Node
	if node.Kind() == DocumentFragmentNode {
		nodes = node.ChildNodes()
	} else {
		nodes = []Node{node}
	}
	if len(nodes) == 0 {
		return
	}

	if node.Kind() == DocumentFragmentNode {
		for _, child := range nodes {
			removeFromParent(child)
		}
		queueTreeMutationRecord(node, nil, nodes) // hook: mutation records are out of scope
	}

	bumpLiveRangeOffsets(parent, beforeChild, len(nodes)) // hook: Range is an external collaborator

	// A Document has no node document of its own; nodes inserted into it
	// are adopted into the Document itself.
	document := parent.NodeDocument()
	if d, ok := parent.(*Document); ok {
		document = d
	}

	for _, m := range nodes {
		AdoptInto(m, document)
		if beforeChild != nil {
			insertChildBefore(parent, m, beforeChild)
		} else {
			appendChild(parent, m)
		}

		assignSlotIfSlottable(parent, m) // hook: slot assignment is out of scope

		for _, d := range CollectShadowIncludingInclusiveDescendants(m) {
			d.RunInsertionSteps()
			if d.IsConnected() && isCustomElement(d) {
				enqueueConnectedCallback(d) // hook: custom element reactions are out of scope
			} else {
				tryUpgradeElement(d) // hook: custom element upgrade is out of scope
			}
		}
	}

	if !suppressObservers {
		queueTreeMutationRecord(parent, nodes, nil) // hook
	}

	parent.RunChildrenChangedSteps()

	var connectedDescendants []Node
	for _, m := range nodes {
		connectedDescendants = append(connectedDescendants, CollectShadowIncludingInclusiveDescendants(m)...)
	}
	for _, d := range connectedDescendants {
		if d.IsConnected() {
			d.RunPostConnectionSteps()
		}
	}
}

// PreInsert implements https://dom.spec.whatwg.org/#concept-node-pre-insert.
func PreInsert(node, parent, beforeChild Node) (Node, *domerr.DOMException) {
	if exc := EnsurePreInsertionValidity(node, parent, beforeChild); exc != nil {
		return nil, exc
	}
	reference := beforeChild
	if reference == node {
		reference = node.NextSibling()
	}
	Insert(node, parent, reference, false)
	return node, nil
}

// Append implements https://dom.spec.whatwg.org/#concept-node-append.
func Append(node, parent Node) (Node, *domerr.DOMException) {
	return PreInsert(node, parent, nil)
}

// AdoptInto implements https://dom.spec.whatwg.org/#concept-node-adopt.
func AdoptInto(node Node, document *Document) {
	if node.Parent() != nil {
		removeFromParent(node)
	}
	oldDocument := node.NodeDocument()
	if oldDocument == document {
		return
	}

	descendants := CollectShadowIncludingInclusiveDescendants(node)
	for _, d := range descendants {
		d.linkFields().document = document
		if _, ok := d.(*Element); ok {
			updateAttributeNodeDocuments(d, document) // hook: attribute storage is out of scope
		}
		if isCustomElement(d) {
			enqueueAdoptedCallback(d, oldDocument, document) // hook: custom element reactions are out of scope
		}
	}
	for _, d := range descendants {
		d.RunAdoptingSteps(oldDocument)
	}
}

// The hooks below name steps that fall to an external collaborator this
// package does not implement (Range, slot assignment, the custom element
// registry, mutation observers). Each is a no-op with a name a future
// implementation of that collaborator can hang behavior off of.

func bumpLiveRangeOffsets(parent, beforeChild Node, count int) {}

func queueTreeMutationRecord(target Node, added, removed []Node) {}

func assignSlotIfSlottable(parent, slottable Node) {}

func isCustomElement(n Node) bool {
	e, ok := n.(*Element)
	return ok && e.IsCustom()
}

func enqueueConnectedCallback(n Node) {}

func tryUpgradeElement(n Node) {}

func enqueueAdoptedCallback(n Node, oldDocument, newDocument *Document) {}

func updateAttributeNodeDocuments(n Node, document *Document) {}
