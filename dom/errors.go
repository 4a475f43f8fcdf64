package dom

import "fmt"

// Kind enumerates the DOM exception taxonomy raised by the mutation
// primitives in this package (spec.md §7). It mirrors the original
// engine's dom/exception.cpp, which carries both a symbolic kind and a
// numeric code.
type Kind int

const (
	IndexSize Kind = iota
	HierarchyRequest
	WrongDocument
	InvalidCharacter
	NotFound
	NotSupported
	InUseAttribute
)

// code is the legacy DOM numeric exception code for each Kind, as
// carried by the original implementation alongside its name string.
var code = map[Kind]int{
	IndexSize:        1,
	HierarchyRequest: 3,
	WrongDocument:    4,
	InvalidCharacter: 5,
	NotFound:         8,
	NotSupported:     9,
	InUseAttribute:   10,
}

var name = map[Kind]string{
	IndexSize:        "INDEX_SIZE_ERR",
	HierarchyRequest: "HIERARCHY_REQUEST_ERR",
	WrongDocument:    "WRONG_DOCUMENT_ERR",
	InvalidCharacter: "INVALID_CHARACTER_ERR",
	NotFound:         "NOT_FOUND_ERR",
	NotSupported:     "NOT_SUPPORTED_ERR",
	InUseAttribute:   "INUSE_ATTRIBUTE_ERR",
}

// Error is raised by mutation primitives on API misuse. A failed
// mutation leaves the tree unchanged.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dom: %s: %s", name[e.Kind], e.Message)
}

// Code returns the legacy numeric DOM exception code for e's Kind.
func (e *Error) Code() int { return code[e.Kind] }

// Is supports errors.Is(err, &dom.Error{Kind: dom.NotFound}) style
// matching on Kind alone, ignoring Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

func NewIndexSizeError(format string, args ...any) *Error {
	return newError(IndexSize, format, args...)
}

func NewHierarchyRequestError(format string, args ...any) *Error {
	return newError(HierarchyRequest, format, args...)
}

func NewWrongDocumentError(format string, args ...any) *Error {
	return newError(WrongDocument, format, args...)
}

func NewInvalidCharacterError(format string, args ...any) *Error {
	return newError(InvalidCharacter, format, args...)
}

func NewNotFoundError(format string, args ...any) *Error {
	return newError(NotFound, format, args...)
}

func NewNotSupportedError(format string, args ...any) *Error {
	return newError(NotSupported, format, args...)
}

func NewInUseAttributeError(format string, args ...any) *Error {
	return newError(InUseAttribute, format, args...)
}
