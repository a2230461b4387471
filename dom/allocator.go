package dom

const (
	elementChunkSize    = 128
	textChunkSize       = 256
	commentChunkSize    = 64
	cdataChunkSize      = 16
	piChunkSize         = 16
	doctypeChunkSize    = 8
	documentChunkSize   = 8
	fragmentChunkSize   = 64
	shadowRootChunkSize = 32
)

// NodeAllocator provides arena-style allocation for DOM nodes: it hands out
// pointers from fixed-size chunks instead of allocating each node
// individually, trading per-node allocation overhead for chunk-sized bursts.
type NodeAllocator struct {
	elements  []Element
	elementAt int

	texts  []Text
	textAt int

	comments  []Comment
	commentAt int

	cdataSections []CDATASection
	cdataAt       int

	processingInstructions []ProcessingInstruction
	piAt                   int

	doctypes  []DocumentType
	doctypeAt int

	documents  []Document
	documentAt int

	fragments  []DocumentFragment
	fragmentAt int

	shadowRoots  []ShadowRoot
	shadowRootAt int
}

// NewNodeAllocator creates a new, empty allocator.
func NewNodeAllocator() *NodeAllocator {
	return &NodeAllocator{}
}

func (a *NodeAllocator) nextElement() *Element {
	if a.elementAt >= len(a.elements) {
		a.elements = make([]Element, elementChunkSize)
		a.elementAt = 0
	}
	e := &a.elements[a.elementAt]
	a.elementAt++
	return e
}

func (a *NodeAllocator) nextText() *Text {
	if a.textAt >= len(a.texts) {
		a.texts = make([]Text, textChunkSize)
		a.textAt = 0
	}
	t := &a.texts[a.textAt]
	a.textAt++
	return t
}

func (a *NodeAllocator) nextComment() *Comment {
	if a.commentAt >= len(a.comments) {
		a.comments = make([]Comment, commentChunkSize)
		a.commentAt = 0
	}
	c := &a.comments[a.commentAt]
	a.commentAt++
	return c
}

func (a *NodeAllocator) nextCDATASection() *CDATASection {
	if a.cdataAt >= len(a.cdataSections) {
		a.cdataSections = make([]CDATASection, cdataChunkSize)
		a.cdataAt = 0
	}
	c := &a.cdataSections[a.cdataAt]
	a.cdataAt++
	return c
}

func (a *NodeAllocator) nextProcessingInstruction() *ProcessingInstruction {
	if a.piAt >= len(a.processingInstructions) {
		a.processingInstructions = make([]ProcessingInstruction, piChunkSize)
		a.piAt = 0
	}
	p := &a.processingInstructions[a.piAt]
	a.piAt++
	return p
}

func (a *NodeAllocator) nextDoctype() *DocumentType {
	if a.doctypeAt >= len(a.doctypes) {
		a.doctypes = make([]DocumentType, doctypeChunkSize)
		a.doctypeAt = 0
	}
	dt := &a.doctypes[a.doctypeAt]
	a.doctypeAt++
	return dt
}

func (a *NodeAllocator) nextDocument() *Document {
	if a.documentAt >= len(a.documents) {
		a.documents = make([]Document, documentChunkSize)
		a.documentAt = 0
	}
	d := &a.documents[a.documentAt]
	a.documentAt++
	return d
}

func (a *NodeAllocator) nextFragment() *DocumentFragment {
	if a.fragmentAt >= len(a.fragments) {
		a.fragments = make([]DocumentFragment, fragmentChunkSize)
		a.fragmentAt = 0
	}
	df := &a.fragments[a.fragmentAt]
	a.fragmentAt++
	return df
}

func (a *NodeAllocator) nextShadowRoot() *ShadowRoot {
	if a.shadowRootAt >= len(a.shadowRoots) {
		a.shadowRoots = make([]ShadowRoot, shadowRootChunkSize)
		a.shadowRootAt = 0
	}
	sr := &a.shadowRoots[a.shadowRootAt]
	a.shadowRootAt++
	return sr
}

// NewDocument allocates a new, empty Document.
func (a *NodeAllocator) NewDocument(debugName string, docType DocType, contentType string) *Document {
	d := a.nextDocument()
	*d = Document{Type: docType, Mode: NoQuirks, ContentType: contentType}
	d.node.init(d, DocumentNode, debugName, nil)
	return d
}

// NewDocumentFragment allocates a new, empty DocumentFragment with no host.
func (a *NodeAllocator) NewDocumentFragment(debugName string, doc *Document) *DocumentFragment {
	df := a.nextFragment()
	*df = DocumentFragment{}
	df.node.init(df, DocumentFragmentNode, debugName, doc)
	return df
}

// NewShadowRoot allocates a new, detached ShadowRoot with no host.
func (a *NodeAllocator) NewShadowRoot(debugName string, doc *Document) *ShadowRoot {
	sr := a.nextShadowRoot()
	*sr = ShadowRoot{}
	sr.node.init(sr, DocumentFragmentNode, debugName, doc)
	return sr
}

// NewElement allocates a new Element with the given local name, namespace,
// prefix and `is` value, in custom element state Uncustomized.
func (a *NodeAllocator) NewElement(debugName, localName, namespace, prefix, is string, doc *Document) *Element {
	e := a.nextElement()
	*e = Element{
		Namespace:           namespace,
		NamespacePrefix:     prefix,
		LocalName:           localName,
		Is:                  is,
		customElementState: Uncustomized,
	}
	e.node.init(e, ElementNode, debugName, doc)
	return e
}

// NewText allocates a new Text node.
func (a *NodeAllocator) NewText(debugName, data string, doc *Document) *Text {
	t := a.nextText()
	*t = Text{Data: data}
	t.node.init(t, TextNode, debugName, doc)
	return t
}

// NewComment allocates a new Comment node.
func (a *NodeAllocator) NewComment(debugName, data string, doc *Document) *Comment {
	c := a.nextComment()
	*c = Comment{Data: data}
	c.node.init(c, CommentNode, debugName, doc)
	return c
}

// NewCDATASection allocates a new CDATASection node.
func (a *NodeAllocator) NewCDATASection(debugName, data string, doc *Document) *CDATASection {
	c := a.nextCDATASection()
	*c = CDATASection{Data: data}
	c.node.init(c, CDATASectionNode, debugName, doc)
	return c
}

// NewProcessingInstruction allocates a new ProcessingInstruction node.
func (a *NodeAllocator) NewProcessingInstruction(debugName, target, data string, doc *Document) *ProcessingInstruction {
	p := a.nextProcessingInstruction()
	*p = ProcessingInstruction{Target: target, Data: data}
	p.node.init(p, ProcessingInstructionNode, debugName, doc)
	return p
}

// NewDocumentType allocates a new DocumentType node.
func (a *NodeAllocator) NewDocumentType(debugName, name, publicID, systemID string, doc *Document) *DocumentType {
	dt := a.nextDoctype()
	*dt = DocumentType{Name: name, PublicID: publicID, SystemID: systemID}
	dt.node.init(dt, DocumentTypeNode, debugName, doc)
	return dt
}
