package ast

// NodeKind tags the schema node variant, per spec.md section 3.
type NodeKind int

const (
	KindContainer NodeKind = iota
	KindList
	KindLeaf
	KindLeafList
	KindChoice
	KindCase
	KindAnyData
	KindAnyXML
	KindUses
	KindGrouping
	KindRPC
	KindAction
	KindInput
	KindOutput
	KindNotification
	KindAugment
)

func (k NodeKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindList:
		return "list"
	case KindLeaf:
		return "leaf"
	case KindLeafList:
		return "leaf-list"
	case KindChoice:
		return "choice"
	case KindCase:
		return "case"
	case KindAnyData:
		return "anydata"
	case KindAnyXML:
		return "anyxml"
	case KindUses:
		return "uses"
	case KindGrouping:
		return "grouping"
	case KindRPC:
		return "rpc"
	case KindAction:
		return "action"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindNotification:
		return "notification"
	case KindAugment:
		return "augment"
	default:
		return "node"
	}
}

// Status is the current|deprecated|obsolete lifecycle tag.
type Status int

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
)

// Config is the tri-state inherit|true|false config flag.
type Config int

const (
	ConfigInherit Config = iota
	ConfigTrue
	ConfigFalse
)

// OrderedBy distinguishes system- from user-ordered lists/leaf-lists.
type OrderedBy int

const (
	OrderedBySystem OrderedBy = iota
	OrderedByUser
)

// Must is a "must" sub-statement: an opaque constraint expression held
// with its error-message/error-app-tag and the schema path it is rooted
// at, per spec.md section 3 ("when/must expressions are held as opaque
// strings with a reference to the schema path at which they are rooted").
type Must struct {
	Condition   string
	ErrorMsg    string
	ErrorAppTag string
	Description string
	Reference   string
}

// When is a "when" sub-statement.
type When struct {
	Condition   string
	Description string
	Reference   string
}

// IfFeature is a parsed "if-feature" boolean expression over feature
// names, not yet compiled into the feature DAG.
type IfFeature struct {
	Expression string
}

// Node is a parsed schema node: a variant over
// {Container, List, Leaf, Leaf-List, Choice, Case, AnyData, AnyXml, Uses,
// Grouping, Rpc/Action, Input, Output, Notification, Augment}, per
// spec.md section 3. Fields that apply only to some kinds are grouped
// below and left zero-valued otherwise.
type Node struct {
	Kind   NodeKind
	Name   string
	Parent *Node

	Status      Status
	Config      Config
	When        *When
	IfFeatures  []IfFeature
	Description string
	Reference   string
	Musts       []Must

	Children []*Node
	Extensions []*Statement

	// Locally scoped typedef/grouping definitions, valid for Container,
	// List, Rpc, Action, Notification.
	Typedefs  []*Typedef
	Groupings []*Grouping

	// Leaf / Leaf-List
	Type        *TypeDescriptor
	Default     []string // single entry for Leaf, multiple allowed for Leaf-List (1.1)
	Units       string

	// Leaf, Choice, AnyData, AnyXML
	Mandatory *bool

	// List
	Key         string
	Unique      []string
	MinElements *uint64
	MaxElements *uint64 // nil means unbounded ("unlimited")
	OrderedBy   OrderedBy

	// Leaf-List
	LeafListMin *uint64
	LeafListMax *uint64
	LeafListOrderedBy OrderedBy

	// Container
	Presence string

	// Uses
	GroupingRef  string // prefixed identifier of the referenced grouping
	Refines      []*Refine
	UsesAugments []*Augment

	// Rpc/Action/Notification: Children holds the body; Input/Output are
	// synthesized child Nodes of KindInput/KindOutput when declared or
	// implied.

	// Augment (when parsed at top level or nested inside Uses)
	TargetPath string
	AugmentChildren []*Node

	Raw *Statement
}

// Refine is one "refine" clause of a uses statement: it may tighten
// config, default, description, mandatory, min/max, must, or presence on
// the node found at RelativePath inside the referenced grouping.
type Refine struct {
	RelativePath string
	Description  *string
	Reference    *string
	Config       *Config
	Default      []string
	Mandatory    *bool
	MinElements  *uint64
	MaxElements  *uint64
	Presence     *string
	Musts        []Must
	IfFeatures   []IfFeature
}

// Augment is a parsed "augment" statement: a path-addressed graft of
// child nodes (and, 1.1 only, actions/notifications) into an existing
// parent.
type Augment struct {
	TargetPath  string
	When        *When
	IfFeatures  []IfFeature
	Description string
	Reference   string
	Status      Status
	Children    []*Node
	Raw         *Statement
}

// Typedef is a named derived type.
type Typedef struct {
	Name        string
	Type        *TypeDescriptor
	Units       string
	Default     string
	Status      Status
	Description string
	Reference   string
	Raw         *Statement
}

// Grouping is a reusable bag of schema nodes.
type Grouping struct {
	Name        string
	Status      Status
	Description string
	Reference   string
	Typedefs    []*Typedef
	Groupings   []*Grouping
	Children    []*Node
	Raw         *Statement
}

// Identity is a parsed "identity" statement.
type Identity struct {
	Name        string
	Bases       []string // prefixed identifiers
	Status      Status
	Description string
	Reference   string
	IfFeatures  []IfFeature
}

// Feature is a parsed "feature" statement.
type Feature struct {
	Name        string
	IfFeatures  []IfFeature
	Status      Status
	Description string
	Reference   string
}

// ExtensionDef declares a custom statement's own grammar: its own
// argument name and whether that argument is encoded as a YIN attribute
// or a child element.
type ExtensionDef struct {
	Name        string
	ArgumentName string
	YinElement   bool
	Status       Status
	Description  string
	Reference    string
}

// Deviation is a parsed "deviation" statement.
type Deviation struct {
	TargetPath  string
	Description string
	Reference   string
	Deviates    []*Deviate
}

// DeviateKind is the deviate clause kind.
type DeviateKind int

const (
	DeviateNotSupported DeviateKind = iota
	DeviateAdd
	DeviateReplace
	DeviateDelete
)

// Deviate is one "deviate" clause of a deviation.
type Deviate struct {
	Kind        DeviateKind
	Type        *TypeDescriptor
	Units       *string
	Default     []string
	Config      *Config
	Mandatory   *bool
	MinElements *uint64
	MaxElements *uint64
	Musts       []Must
	Unique      []string
}
