package domerr

// Exception names, as defined by the WebIDL specification's DOMException
// name token list.
// See: https://webidl.spec.whatwg.org/#dfn-error-names-table
const (
	// HierarchyRequestError indicates that the node tree would become
	// invalid: a node is inserted somewhere it doesn't belong, or into
	// itself or one of its own descendants.
	HierarchyRequestError = "HierarchyRequestError"

	// NotFoundError indicates a referenced node could not be found, e.g.
	// a given child is not actually a child of the given parent.
	NotFoundError = "NotFoundError"

	// InvalidCharacterError indicates a string argument contains a
	// character that is not permitted in that context, e.g. an invalid
	// qualified name passed to an element-creation entry point.
	InvalidCharacterError = "InvalidCharacterError"
)

// exceptionMessages maps exception names to their default message, used
// when a raise site doesn't supply a more specific one.
var exceptionMessages = map[string]string{
	HierarchyRequestError: "The operation would yield an incorrect node tree.",
	NotFoundError:         "The object can not be found here.",
	InvalidCharacterError: "The string contains invalid characters.",
}

// DefaultMessage returns the default message for name, or "" if name is not
// one of the recognized tokens.
func DefaultMessage(name string) string {
	return exceptionMessages[name]
}
