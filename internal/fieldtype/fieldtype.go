// Package fieldtype classifies the storage engine's native column types
// into the closed set of logical types the inspector knows how to format.
package fieldtype

// NativeType is the storage-level column type identifier reported by the
// underlying engine. The set mirrors the engine's column encodings; new
// engine types that are not listed here classify to Unknown.
type NativeType int

const (
	NativeInteger NativeType = iota
	NativeBoolean
	NativeString
	NativeBinary
	NativeTable      // nested subtable, not inspectable
	NativeMixed      // mixed-type column, not inspectable
	NativeLegacyDate // pre-v2 date encoding
	NativeDate
	NativeFloat
	NativeDouble
	NativeObject // link to a row in another table
	NativeLinkList
	NativeIntegerList
	NativeBooleanList
	NativeStringList
	NativeBinaryList
	NativeDateList
	NativeFloatList
	NativeDoubleList
)

// FieldType is the engine-independent logical type used to pick a
// formatting rule. Unknown is the fallback for any native identifier the
// classifier does not recognize; it never causes a failure, only a
// placeholder value downstream.
type FieldType int

const (
	Unknown FieldType = iota
	Integer
	Boolean
	String
	Binary
	UnsupportedTable
	UnsupportedMixed
	LegacyDate
	Date
	Float
	Double
	ObjectLink
	LinkList
	IntegerList
	BooleanList
	StringList
	BinaryList
	DateList
	FloatList
	DoubleList
)

var fieldTypeNames = map[FieldType]string{
	Integer:          "INTEGER",
	Boolean:          "BOOLEAN",
	String:           "STRING",
	Binary:           "BINARY",
	UnsupportedTable: "UNSUPPORTED_TABLE",
	UnsupportedMixed: "UNSUPPORTED_MIXED",
	LegacyDate:       "LEGACY_DATE",
	Date:             "DATE",
	Float:            "FLOAT",
	Double:           "DOUBLE",
	ObjectLink:       "OBJECT_LINK",
	LinkList:         "LINK_LIST",
	IntegerList:      "INTEGER_LIST",
	BooleanList:      "BOOLEAN_LIST",
	StringList:       "STRING_LIST",
	BinaryList:       "BINARY_LIST",
	DateList:         "DATE_LIST",
	FloatList:        "FLOAT_LIST",
	DoubleList:       "DOUBLE_LIST",
}

// String returns the canonical enumeration name. List values embed this
// name in their rendered form, so it must stay stable.
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Classify maps a native column type to its logical type. Total: every
// input yields exactly one FieldType, unrecognized inputs yield Unknown.
func Classify(t NativeType) FieldType {
	switch t {
	case NativeInteger:
		return Integer
	case NativeBoolean:
		return Boolean
	case NativeString:
		return String
	case NativeBinary:
		return Binary
	case NativeTable:
		return UnsupportedTable
	case NativeMixed:
		return UnsupportedMixed
	case NativeLegacyDate:
		return LegacyDate
	case NativeDate:
		return Date
	case NativeFloat:
		return Float
	case NativeDouble:
		return Double
	case NativeObject:
		return ObjectLink
	case NativeLinkList:
		return LinkList
	case NativeIntegerList:
		return IntegerList
	case NativeBooleanList:
		return BooleanList
	case NativeStringList:
		return StringList
	case NativeBinaryList:
		return BinaryList
	case NativeDateList:
		return DateList
	case NativeFloatList:
		return FloatList
	case NativeDoubleList:
		return DoubleList
	default:
		return Unknown
	}
}
