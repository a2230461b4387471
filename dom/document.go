package dom

import (
	"strings"

	"github.com/oinseo/ywdom/domerr"
)

// DocType distinguishes an XML document from an HTML document.
type DocType int

// Document types.
const (
	XMLDocument DocType = iota
	HTMLDocument
)

// QuirksMode is a document's rendering-quirks mode.
type QuirksMode int

// Quirks modes.
const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

// Document is a Node with kind DocumentNode, the root of a tree that may
// have at most one Element child and at most one DocumentType child,
// subject to the ordering rules enforced by EnsurePreInsertionValidity.
type Document struct {
	node

	// Type is XMLDocument or HTMLDocument.
	Type DocType

	// Mode is the document's quirks mode.
	Mode QuirksMode

	// ContentType is the document's MIME type, e.g. "text/html" or
	// "application/xhtml+xml".
	ContentType string
}

// NewDocument creates a detached, empty Document. A Document has no node
// document of its own.
func NewDocument(debugName string, docType DocType, contentType string) *Document {
	d := &Document{
		Type:        docType,
		Mode:        NoQuirks,
		ContentType: contentType,
	}
	d.node.init(d, DocumentNode, debugName, nil)
	return d
}

// DocumentElement returns d's single Element child, or nil.
func (d *Document) DocumentElement() *Element {
	for c := d.FirstChild(); c != nil; c = c.NextSibling() {
		if e, ok := c.(*Element); ok {
			return e
		}
	}
	return nil
}

// Doctype returns d's single DocumentType child, or nil.
func (d *Document) Doctype() *DocumentType {
	for c := d.FirstChild(); c != nil; c = c.NextSibling() {
		if dt, ok := c.(*DocumentType); ok {
			return dt
		}
	}
	return nil
}

// createElementConcept implements the "create an element" concept.
// https://dom.spec.whatwg.org/#concept-create-element
//
// The general case only: there is no custom-element registry in this
// package (lookupCustomElementDefinition is an out-of-scope hook), so the
// definition lookup always misses and execution falls straight to the
// general-case construction.
func (d *Document) createElementConcept(localName, namespace, prefix, is string, synchronousCustomElements bool) *Element {
	_ = synchronousCustomElements // threaded through for interface fidelity with the hook; unused until upgrade is implemented

	definition := d.lookupCustomElementDefinition(namespace, localName, is)
	_ = definition // hook: always nil until a custom element registry exists

	e := NewElement("", localName, namespace, prefix, is, d)
	if namespace == NamespaceHTML && (isValidCustomElementName(localName) || is != "") {
		e.customElementState = Undefined
	}
	return e
}

// lookupCustomElementDefinition is the custom-element registry lookup
// hook. The registry itself is an out-of-scope external collaborator, so
// this always reports no definition.
func (d *Document) lookupCustomElementDefinition(namespace, localName, is string) any {
	return nil
}

// isValidCustomElementName is the NCName-style custom element name
// validity hook (PotentialCustomElementName production). Always reports
// false until a real validator is wired in.
func isValidCustomElementName(name string) bool {
	return false
}

// CreateElement is the public createElement(localName) entry point.
// https://dom.spec.whatwg.org/#dom-document-createelement
func (d *Document) CreateElement(localName string) (*Element, *domerr.DOMException) {
	if !isValidName(localName) {
		return nil, domerr.New(domerr.InvalidCharacterError, "invalid element name "+quoteName(localName))
	}

	name := localName
	if d.Type == HTMLDocument {
		name = strings.ToLower(name)
	}

	namespace := ""
	if d.Type == HTMLDocument || d.ContentType == "application/xhtml+xml" {
		namespace = NamespaceHTML
	}

	return d.createElementConcept(name, namespace, "", "", true), nil
}

// isValidName is the Name production validity hook (XML Name grammar). It
// accepts any non-empty string until a real validator is wired in.
func isValidName(name string) bool {
	return name != ""
}

func quoteName(name string) string {
	return "\"" + name + "\""
}
