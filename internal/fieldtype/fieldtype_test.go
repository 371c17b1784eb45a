package fieldtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_AllNativeTypes(t *testing.T) {
	want := map[NativeType]FieldType{
		NativeInteger:     Integer,
		NativeBoolean:     Boolean,
		NativeString:      String,
		NativeBinary:      Binary,
		NativeTable:       UnsupportedTable,
		NativeMixed:       UnsupportedMixed,
		NativeLegacyDate:  LegacyDate,
		NativeDate:        Date,
		NativeFloat:       Float,
		NativeDouble:      Double,
		NativeObject:      ObjectLink,
		NativeLinkList:    LinkList,
		NativeIntegerList: IntegerList,
		NativeBooleanList: BooleanList,
		NativeStringList:  StringList,
		NativeBinaryList:  BinaryList,
		NativeDateList:    DateList,
		NativeFloatList:   FloatList,
		NativeDoubleList:  DoubleList,
	}
	for native, ft := range want {
		require.Equal(t, ft, Classify(native))
	}
}

func TestClassify_UnrecognizedFallsBackToUnknown(t *testing.T) {
	require.Equal(t, Unknown, Classify(NativeType(-1)))
	require.Equal(t, Unknown, Classify(NativeType(9999)))
}

func TestFieldType_String(t *testing.T) {
	require.Equal(t, "INTEGER", Integer.String())
	require.Equal(t, "INTEGER_LIST", IntegerList.String())
	require.Equal(t, "LINK_LIST", LinkList.String())
	require.Equal(t, "LEGACY_DATE", LegacyDate.String())
	require.Equal(t, "UNKNOWN", Unknown.String())
	require.Equal(t, "UNKNOWN", FieldType(-42).String())
}
