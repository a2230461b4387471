// Package dom provides an in-memory implementation of the WHATWG DOM tree:
// the intrusively linked node graph, tree-order and shadow-including
// traversal, and the insertion pipeline that keeps the graph's link
// invariants consistent across mutation.
package dom

// Kind identifies the concrete type a Node implements. The numeric values
// match the DOM standard's nodeType constants.
type Kind int

// Node kinds, numbered to match the DOM standard.
const (
	ElementNode               Kind = 1
	AttributeNode             Kind = 2
	TextNode                  Kind = 3
	CDATASectionNode          Kind = 4
	ProcessingInstructionNode Kind = 7
	CommentNode               Kind = 8
	DocumentNode              Kind = 9
	DocumentTypeNode          Kind = 10
	DocumentFragmentNode      Kind = 11
)

// String returns a human-readable name for the kind, used in debug output.
func (k Kind) String() string {
	switch k {
	case ElementNode:
		return "Element"
	case AttributeNode:
		return "Attribute"
	case TextNode:
		return "Text"
	case CDATASectionNode:
		return "CDATASection"
	case ProcessingInstructionNode:
		return "ProcessingInstruction"
	case CommentNode:
		return "Comment"
	case DocumentNode:
		return "Document"
	case DocumentTypeNode:
		return "DocumentType"
	case DocumentFragmentNode:
		return "DocumentFragment"
	default:
		return "Unknown"
	}
}

// Node is the interface implemented by every member of the tree. Concrete
// kinds (Element, Document, DocumentFragment, ShadowRoot, Text, Comment,
// CDATASection, ProcessingInstruction, DocumentType) embed *node, which
// supplies every method below; kinds override the four spec hooks
// (RunInsertionSteps, RunAdoptingSteps, RunChildrenChangedSteps,
// RunPostConnectionSteps) where they need to observe a mutation.
type Node interface {
	// Kind returns the node's discriminator.
	Kind() Kind

	// DebugName returns the human-readable name given at construction.
	DebugName() string

	// NodeDocument returns the owning Document, or nil (only a Document
	// itself may have no node document).
	NodeDocument() *Document

	// Parent returns the parent node, or nil if n is a tree root.
	Parent() Node

	// FirstChild returns the first child, or nil if n has no children.
	FirstChild() Node

	// LastChild returns the last child, or nil if n has no children.
	LastChild() Node

	// PreviousSibling returns the sibling immediately before n, or nil.
	PreviousSibling() Node

	// NextSibling returns the sibling immediately after n, or nil.
	NextSibling() Node

	// Preceding returns the node immediately before n in tree order.
	Preceding() Node

	// Following returns the node immediately after n in tree order.
	Following() Node

	// Index returns the number of preceding siblings of n.
	Index() int

	// Root follows Parent until it is absent.
	Root() Node

	// ShadowIncludingRoot follows Root, hopping from a ShadowRoot to its
	// host, until it reaches a node that is not an attached shadow root.
	ShadowIncludingRoot() Node

	// IsConnected reports whether n's shadow-including root is a Document.
	IsConnected() bool

	// IsDescendantOf reports whether of is a strict ancestor of n.
	IsDescendantOf(of Node) bool

	// IsAncestorOf reports whether of is a strict descendant of n.
	IsAncestorOf(of Node) bool

	// IsInclusiveDescendantOf reports whether n is of, or a descendant of
	// it.
	IsInclusiveDescendantOf(of Node) bool

	// IsInclusiveAncestorOf reports whether n is of, or an ancestor of it.
	IsInclusiveAncestorOf(of Node) bool

	// HostIncludingInclusiveAncestorOf reports whether n is an inclusive
	// ancestor of of, crossing shadow-host boundaries upward.
	HostIncludingInclusiveAncestorOf(of Node) bool

	// HasChildNodes reports whether n has at least one child.
	HasChildNodes() bool

	// ChildNodes returns a tree-order snapshot of n's children.
	ChildNodes() []Node

	// ParentElement returns Parent() iff it is an Element, else nil.
	ParentElement() *Element

	// RunInsertionSteps is the insertion-steps hook (default: no-op).
	RunInsertionSteps()

	// RunAdoptingSteps is the adopting-steps hook (default: no-op).
	RunAdoptingSteps(oldDocument *Document)

	// RunChildrenChangedSteps is the children-changed-steps hook (default:
	// no-op).
	RunChildrenChangedSteps()

	// RunPostConnectionSteps is the post-connection-steps hook (default:
	// no-op).
	RunPostConnectionSteps()

	// self returns the concrete Node value embedding this node, used
	// internally for identity comparisons and mutation.
	self() Node

	// linkFields returns the embedded node struct, giving the package's
	// mutation and insertion code direct access to the link fields
	// regardless of which concrete kind n is.
	linkFields() *node
}

// node holds the link fields shared by every kind and is embedded into each
// concrete type. It implements Node except for the kind-specific
// constructors.
//
// Field naming follows the WHATWG tree's edge names. A reference-counted
// implementation would need nextSibling and following to be the owning
// edges and the rest weak back-references, to avoid reference cycles; Go's
// garbage collector makes that distinction immaterial, but the comments
// below record which edges would be owning anyway, since it documents which
// direction the tree is conceptually "walked down".
type node struct {
	holder Node // the concrete value embedding this node

	kind      Kind
	debugName string
	document  *Document // weak; absent only for a Document itself

	parent Node // weak

	firstChild Node // weak
	lastChild  Node // weak

	previousSibling Node // weak
	nextSibling     Node // strong (owning)

	preceding Node // weak
	following Node // strong (owning)
}

// init binds the shared node struct to the concrete value that embeds it.
// Every constructor must call this before the node is used.
func (n *node) init(self Node, kind Kind, debugName string, doc *Document) {
	n.holder = self
	n.kind = kind
	n.debugName = debugName
	n.document = doc
}

func (n *node) self() Node        { return n.holder }
func (n *node) linkFields() *node { return n }

func (n *node) Kind() Kind              { return n.kind }
func (n *node) DebugName() string       { return n.debugName }
func (n *node) NodeDocument() *Document { return n.document }

func (n *node) Parent() Node          { return n.parent }
func (n *node) FirstChild() Node      { return n.firstChild }
func (n *node) LastChild() Node       { return n.lastChild }
func (n *node) PreviousSibling() Node { return n.previousSibling }
func (n *node) NextSibling() Node     { return n.nextSibling }
func (n *node) Preceding() Node       { return n.preceding }
func (n *node) Following() Node       { return n.following }

// Index implements https://dom.spec.whatwg.org/#concept-tree-index.
func (n *node) Index() int {
	i := 0
	var current Node = n.holder
	for current.PreviousSibling() != nil {
		current = current.PreviousSibling()
		i++
	}
	return i
}

// Root implements https://dom.spec.whatwg.org/#concept-tree-root.
func (n *node) Root() Node {
	var current Node = n.holder
	for current.Parent() != nil {
		current = current.Parent()
	}
	return current
}

// ShadowIncludingRoot implements
// https://dom.spec.whatwg.org/#concept-shadow-including-root.
func (n *node) ShadowIncludingRoot() Node {
	root := n.holder.Root()
	if sr, ok := root.(*ShadowRoot); ok {
		if host := sr.Host(); host != nil {
			return host.ShadowIncludingRoot()
		}
	}
	return root
}

// IsConnected implements https://dom.spec.whatwg.org/#connected.
func (n *node) IsConnected() bool {
	root := n.holder.ShadowIncludingRoot()
	if root == nil {
		return false
	}
	return root.Kind() == DocumentNode
}

// IsDescendantOf implements
// https://dom.spec.whatwg.org/#concept-tree-descendant.
func (n *node) IsDescendantOf(of Node) bool {
	for current := n.parent; current != nil; current = current.Parent() {
		if current == of {
			return true
		}
	}
	return false
}

// IsAncestorOf implements https://dom.spec.whatwg.org/#concept-tree-ancestor.
func (n *node) IsAncestorOf(of Node) bool {
	return of.IsDescendantOf(n.holder)
}

// IsInclusiveDescendantOf implements
// https://dom.spec.whatwg.org/#concept-tree-inclusive-descendant.
func (n *node) IsInclusiveDescendantOf(of Node) bool {
	return of == n.holder || n.IsDescendantOf(of)
}

// IsInclusiveAncestorOf implements
// https://dom.spec.whatwg.org/#concept-tree-inclusive-ancestor.
func (n *node) IsInclusiveAncestorOf(of Node) bool {
	return of == n.holder || n.IsAncestorOf(of)
}

// HostIncludingInclusiveAncestorOf implements
// https://dom.spec.whatwg.org/#concept-tree-host-including-inclusive-ancestor.
func (n *node) HostIncludingInclusiveAncestorOf(of Node) bool {
	currentOf := of
	for {
		if n.holder == currentOf || n.holder.IsAncestorOf(currentOf) {
			return true
		}
		if sr, ok := currentOf.Root().(*ShadowRoot); ok && sr.Host() != nil {
			currentOf = sr.Host()
			continue
		}
		return false
	}
}

// HasChildNodes implements
// https://dom.spec.whatwg.org/#dom-node-haschildnodes.
func (n *node) HasChildNodes() bool {
	return n.firstChild != nil
}

// ChildNodes implements https://dom.spec.whatwg.org/#dom-node-childnodes.
func (n *node) ChildNodes() []Node {
	var result []Node
	for current := n.firstChild; current != nil; current = current.NextSibling() {
		result = append(result, current)
	}
	return result
}

// ParentElement implements https://dom.spec.whatwg.org/#parent-element.
func (n *node) ParentElement() *Element {
	if e, ok := n.parent.(*Element); ok {
		return e
	}
	return nil
}

// RunInsertionSteps is the default (no-op) insertion-steps hook.
// https://dom.spec.whatwg.org/#concept-node-insert-ext
func (n *node) RunInsertionSteps() {}

// RunAdoptingSteps is the default (no-op) adopting-steps hook.
// https://dom.spec.whatwg.org/#concept-node-adopt-ext
func (n *node) RunAdoptingSteps(_ *Document) {}

// RunChildrenChangedSteps is the default (no-op) children-changed-steps
// hook. https://dom.spec.whatwg.org/#concept-node-children-changed-ext
func (n *node) RunChildrenChangedSteps() {}

// RunPostConnectionSteps is the default (no-op) post-connection-steps hook.
// https://dom.spec.whatwg.org/#concept-node-post-connection-ext
func (n *node) RunPostConnectionSteps() {}
