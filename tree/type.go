package tree

// Type identifies the variant of a Node. The variant set is closed:
// every tree operation switches over these four, with All usable as a
// filter wildcard in Children and Walk.
type Type int

const (
	All Type = iota
	RootType
	SectionType
	CommentType
	FieldType
)

func (t Type) String() string {
	return map[Type]string{
		All:         "All",
		RootType:    "Root",
		SectionType: "Section",
		CommentType: "Comment",
		FieldType:   "Field",
	}[t]
}

// Kind is the declared interpretation hint for a Field's raw value. It
// drives default coercion only; it is not an enforced type.
type Kind int

const (
	None Kind = iota
	Int
	Float
	Bool
	String
)

func (k Kind) String() string {
	return map[Kind]string{
		None:   "None",
		Int:    "Int",
		Float:  "Float",
		Bool:   "Bool",
		String: "String",
	}[k]
}
