// Package keyword implements the keyword dispatcher (component C2): a
// fixed enumeration of YANG statement keywords, plus the two pseudo
// keywords the XML surface form needs to represent a meta statement's
// argument, and the rules for classifying a name as that enumeration or
// as a custom extension instance.
package keyword

// ID is one member of the fixed YANG keyword enumeration.
type ID int

const (
	Unknown ID = iota

	Module
	Submodule
	YangVersion
	Namespace
	Prefix
	BelongsTo
	Import
	Include
	Organization
	Contact
	Description
	Reference
	Revision
	RevisionDate
	Typedef
	Type
	Units
	Default
	Status
	Config
	Mandatory
	Presence
	OrderedBy
	Must
	ErrorMessage
	ErrorAppTag
	MinElements
	MaxElements
	Value
	Position
	Grouping
	Uses
	Refine
	Augment
	When
	Rpc
	Action
	Input
	Output
	Notification
	Container
	Leaf
	LeafList
	List
	Choice
	Case
	AnyXML
	AnyData
	Identity
	Base
	Feature
	IfFeature
	Extension
	Argument
	YinElement
	Deviation
	Deviate
	NotSupported
	Add
	Replace
	Delete
	Key
	Unique
	Range
	Length
	Pattern
	FractionDigits
	Bit
	Enum
	Path
	RequireInstance
	Modifier

	// TEXT and VALUE are pseudo-keywords used only by the XML form to
	// represent the argument of a meta statement: TEXT is the required
	// <text> child of description/reference/organization/contact, VALUE
	// is the required <value> child of error-message. They are never
	// produced by the compact-form lexer.
	TEXT
	VALUE

	// Custom marks a statement whose keyword is a prefixed name the
	// dispatcher does not recognize: it is accepted as an extension
	// instance and stored as a generic (stmt-name, arg, children) tree.
	Custom
)

var names = map[string]ID{
	"module":           Module,
	"submodule":        Submodule,
	"yang-version":     YangVersion,
	"namespace":        Namespace,
	"prefix":           Prefix,
	"belongs-to":       BelongsTo,
	"import":           Import,
	"include":          Include,
	"organization":     Organization,
	"contact":          Contact,
	"description":      Description,
	"reference":        Reference,
	"revision":         Revision,
	"revision-date":    RevisionDate,
	"typedef":          Typedef,
	"type":             Type,
	"units":            Units,
	"default":          Default,
	"status":           Status,
	"config":           Config,
	"mandatory":        Mandatory,
	"presence":         Presence,
	"ordered-by":       OrderedBy,
	"must":             Must,
	"error-message":    ErrorMessage,
	"error-app-tag":    ErrorAppTag,
	"min-elements":     MinElements,
	"max-elements":     MaxElements,
	"value":            Value,
	"position":         Position,
	"grouping":         Grouping,
	"uses":             Uses,
	"refine":           Refine,
	"augment":          Augment,
	"when":             When,
	"rpc":              Rpc,
	"action":           Action,
	"input":            Input,
	"output":           Output,
	"notification":     Notification,
	"container":        Container,
	"leaf":              Leaf,
	"leaf-list":        LeafList,
	"list":             List,
	"choice":           Choice,
	"case":             Case,
	"anyxml":           AnyXML,
	"anydata":          AnyData,
	"identity":         Identity,
	"base":             Base,
	"feature":          Feature,
	"if-feature":       IfFeature,
	"extension":        Extension,
	"argument":         Argument,
	"yin-element":      YinElement,
	"deviation":        Deviation,
	"deviate":          Deviate,
	"not-supported":    NotSupported,
	"add":              Add,
	"replace":          Replace,
	"delete":           Delete,
	"key":              Key,
	"unique":           Unique,
	"range":            Range,
	"length":           Length,
	"pattern":          Pattern,
	"fraction-digits":  FractionDigits,
	"bit":              Bit,
	"enum":             Enum,
	"path":             Path,
	"require-instance": RequireInstance,
	"modifier":         Modifier,
}

var rendered map[ID]string

func init() {
	rendered = make(map[ID]string, len(names))
	for s, id := range names {
		rendered[id] = s
	}
}

// String renders id back to its YANG keyword text, for the printer and for
// diagnostics. Pseudo and sentinel members render a bracketed label.
func (id ID) String() string {
	if s, ok := rendered[id]; ok {
		return s
	}
	switch id {
	case TEXT:
		return "[text]"
	case VALUE:
		return "[value]"
	case Custom:
		return "[custom]"
	default:
		return "[unknown]"
	}
}

// MatchCompact resolves a bare (unprefixed, or prefixed-as-extension)
// keyword from the compact surface form. A prefixed name is always an
// extension instance in the compact form: the compact grammar uses
// "prefix:name" only for custom statements, never for built-in ones.
func MatchCompact(prefix, name string) ID {
	if prefix != "" {
		return Custom
	}
	if id, ok := names[name]; ok {
		return id
	}
	return Custom
}

// YINNamespace is the XML namespace URI every built-in YANG statement
// element belongs to in the YIN surface form (spec.md section 6).
const YINNamespace = "urn:ietf:params:xml:ns:yang:yin:1"

// MatchXML resolves an XML element's (namespace, local-name) pair, given
// the enclosing statement's keyword, to the fixed enumeration. An element
// outside YINNamespace is always Custom (an extension instance). The
// pseudo-keyword VALUE is produced only for a <value> element whose parent
// is error-message; elsewhere "value" maps to the regular Value keyword.
func MatchXML(namespaceURI, local string, parent ID) (ID, bool) {
	if namespaceURI != YINNamespace {
		if namespaceURI == "" && local == "" {
			return Unknown, false
		}
		return Custom, true
	}
	switch local {
	case "text":
		return TEXT, true
	case "value":
		if parent == ErrorMessage {
			return VALUE, true
		}
		return Value, true
	}
	if id, ok := names[local]; ok {
		return id, true
	}
	return Unknown, false
}

// ArgumentKind classifies the lexical alphabet a keyword's argument must
// satisfy (component C3's argument-kind check).
type ArgumentKind int

const (
	// NoArgument means the keyword takes no argument at all (e.g. input, output).
	NoArgument ArgumentKind = iota
	// IdentifierArgument is an unprefixed identifier.
	IdentifierArgument
	// PrefixedIdentifierArgument is an optional "prefix:" plus an identifier.
	PrefixedIdentifierArgument
	// StringArgument is an arbitrary UTF-8 string (quoted/concatenated in compact form).
	StringArgument
	// MaybeStringArgument behaves like StringArgument but the keyword's
	// multiplicity rules allow the statement to appear with an empty body.
	MaybeStringArgument
)

// Arg returns the argument alphabet required by id's grammar production.
func Arg(id ID) ArgumentKind {
	switch id {
	case Input, Output:
		return NoArgument
	case Module, Submodule, YangVersion, Prefix, BelongsTo, Typedef, Grouping,
		Rpc, Action, Notification, Container, Leaf, LeafList, List, Choice,
		Case, AnyXML, AnyData, Identity, Feature, Extension, Argument,
		Deviate, Bit, Enum:
		return IdentifierArgument
	case Import, Include, Type, Uses, Refine, Base, IfFeature, YinElement:
		return PrefixedIdentifierArgument
	case Namespace, Organization, Contact, Description, Reference, Units,
		Default, Presence, Must, ErrorMessage, ErrorAppTag, Value, Position,
		Augment, When, Deviation, Key, Unique, Range, Length, Pattern,
		FractionDigits, Path, RevisionDate, MinElements, MaxElements,
		Status, Config, Mandatory, OrderedBy, RequireInstance, Modifier,
		NotSupported, Add, Replace, Delete, TEXT, VALUE:
		return StringArgument
	case Revision:
		return MaybeStringArgument
	default:
		return StringArgument
	}
}
