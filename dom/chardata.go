package dom

// Text is a Node with kind TextNode. Character-data editing (splitting,
// appending, replacing ranges of Data) is an explicit out-of-scope external
// collaborator; Data is a plain field here.
type Text struct {
	node
	Data string
}

// NewText creates a detached Text node.
func NewText(debugName, data string, doc *Document) *Text {
	t := &Text{Data: data}
	t.node.init(t, TextNode, debugName, doc)
	return t
}

// Comment is a Node with kind CommentNode.
type Comment struct {
	node
	Data string
}

// NewComment creates a detached Comment node.
func NewComment(debugName, data string, doc *Document) *Comment {
	c := &Comment{Data: data}
	c.node.init(c, CommentNode, debugName, doc)
	return c
}

// CDATASection is a Node with kind CDATASectionNode, used only in XML
// documents.
type CDATASection struct {
	node
	Data string
}

// NewCDATASection creates a detached CDATASection node.
func NewCDATASection(debugName, data string, doc *Document) *CDATASection {
	c := &CDATASection{Data: data}
	c.node.init(c, CDATASectionNode, debugName, doc)
	return c
}

// ProcessingInstruction is a Node with kind ProcessingInstructionNode.
type ProcessingInstruction struct {
	node
	Target string
	Data   string
}

// NewProcessingInstruction creates a detached ProcessingInstruction node.
func NewProcessingInstruction(debugName, target, data string, doc *Document) *ProcessingInstruction {
	p := &ProcessingInstruction{Target: target, Data: data}
	p.node.init(p, ProcessingInstructionNode, debugName, doc)
	return p
}
