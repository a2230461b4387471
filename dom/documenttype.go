package dom

// DocumentType is a Node with kind DocumentTypeNode: a <!DOCTYPE ...>
// declaration. It never has children.
type DocumentType struct {
	node

	// Name is the doctype name, usually "html".
	Name string

	// PublicID is the doctype's public identifier, or "".
	PublicID string

	// SystemID is the doctype's system identifier, or "".
	SystemID string
}

// NewDocumentType creates a detached DocumentType node.
func NewDocumentType(debugName, name, publicID, systemID string, doc *Document) *DocumentType {
	dt := &DocumentType{
		Name:     name,
		PublicID: publicID,
		SystemID: systemID,
	}
	dt.node.init(dt, DocumentTypeNode, debugName, doc)
	return dt
}
