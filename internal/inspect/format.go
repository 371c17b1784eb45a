package inspect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rowscope/rowscope/internal/fieldtype"
)

const (
	// NullValue is the sentinel emitted for null cells. A literal string
	// so it stays distinguishable from an empty string or zero in a
	// text-oriented client.
	NullValue = "[null]"

	// TruncatedValue fills the synthetic trailing row emitted when the
	// row limit suppressed remaining rows.
	TruncatedValue = "{truncated}"
)

// dateLayout renders the human-readable half of a date cell; the exact
// epoch milliseconds follow in parentheses so the client can sort by the
// underlying instant.
const dateLayout = "January 2, 2006 3:04:05 PM MST"

// FormatValue renders one cell of a known logical type into a generic
// transmissible value. Total over FieldType: unsupported and unknown
// types degrade to a diagnostic string, never an error.
func FormatValue(row Row, key int64, ft fieldtype.FieldType) any {
	switch ft {
	case fieldtype.Integer:
		if row.IsNull(key) {
			return NullValue
		}
		return row.Int(key)

	case fieldtype.Boolean:
		if row.IsNull(key) {
			return NullValue
		}
		return row.Bool(key)

	case fieldtype.String:
		if row.IsNull(key) {
			return NullValue
		}
		return row.String(key)

	case fieldtype.Binary:
		if row.IsNull(key) {
			return NullValue
		}
		return row.Binary(key)

	case fieldtype.Float:
		if row.IsNull(key) {
			return NullValue
		}
		v := row.Float(key)
		if s, special := floatSpecial(float64(v)); special {
			return s
		}
		return v

	case fieldtype.Double:
		if row.IsNull(key) {
			return NullValue
		}
		v := row.Double(key)
		if s, special := floatSpecial(v); special {
			return s
		}
		return v

	case fieldtype.LegacyDate, fieldtype.Date:
		if row.IsNull(key) {
			return NullValue
		}
		return formatDate(row.Date(key))

	case fieldtype.ObjectLink:
		if row.IsNullLink(key) {
			return NullValue
		}
		return row.Link(key)

	case fieldtype.LinkList:
		// Link lists are never null; an absent list renders as "Target{}".
		return formatLinkList(row.LinkList(key))

	case fieldtype.IntegerList, fieldtype.BooleanList, fieldtype.StringList,
		fieldtype.BinaryList, fieldtype.DateList, fieldtype.FloatList,
		fieldtype.DoubleList:
		if row.IsNullLink(key) {
			return NullValue
		}
		return formatValueList(row.ValueList(key, ft), ft)

	default:
		return "unknown column type: " + ft.String()
	}
}

// floatSpecial substitutes IEEE special values that do not round-trip
// through the transport's numeric encoding.
func floatSpecial(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}

func formatDate(d time.Time) string {
	return d.Format(dateLayout) + " (" + strconv.FormatInt(d.UnixMilli(), 10) + ")"
}

// formatLinkList renders "<target-table>{key1,key2,...}", empty braces
// for zero elements, no trailing separator.
func formatLinkList(list LinkList) string {
	var sb strings.Builder
	sb.WriteString(list.TargetTableName())
	sb.WriteByte('{')
	for pos := 0; pos < list.Len(); pos++ {
		if pos > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(list.ObjectKeyAt(pos), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}

// formatValueList renders "<TYPE_NAME>{v1,v2,...}" with the container's
// raw values in list order.
func formatValueList(list ValueList, ft fieldtype.FieldType) string {
	var sb strings.Builder
	sb.WriteString(ft.String())
	sb.WriteByte('{')
	for pos := 0; pos < list.Len(); pos++ {
		if pos > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%v", list.ValueAt(pos))
	}
	sb.WriteByte('}')
	return sb.String()
}
