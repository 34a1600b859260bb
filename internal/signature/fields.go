package signature

import (
	"strconv"
	"strings"
)

// Delimiter separates field values in the signed string.
const Delimiter = "|"

// Field is one named value of a signed message.
// Fields that are not Present are left out of the signed string entirely.
type Field struct {
	Name    string
	Value   string
	Present bool
}

// Fields is the ordered schema of a message. The order must match the
// gateway's documented order for the message type exactly.
type Fields []Field

func String(name, value string) Field {
	return Field{Name: name, Value: value, Present: true}
}

func StringPtr(name string, value *string) Field {
	if value == nil {
		return Field{Name: name}
	}
	return String(name, *value)
}

// OmitEmpty is present only for a non-empty value, mirroring a JSON field
// tagged with omitempty.
func OmitEmpty(name, value string) Field {
	return Field{Name: name, Value: value, Present: value != ""}
}

func Int64(name string, value int64) Field {
	return String(name, strconv.FormatInt(value, 10))
}

func Int64Ptr(name string, value *int64) Field {
	if value == nil {
		return Field{Name: name}
	}
	return Int64(name, *value)
}

// OmitZero is present only for a non-zero value.
func OmitZero(name string, value int64) Field {
	if value == 0 {
		return Field{Name: name}
	}
	return Int64(name, value)
}

func Int(name string, value int) Field {
	return String(name, strconv.Itoa(value))
}

func IntPtr(name string, value *int) Field {
	if value == nil {
		return Field{Name: name}
	}
	return Int(name, *value)
}

func Bool(name string, value bool) Field {
	return String(name, strconv.FormatBool(value))
}

func BoolPtr(name string, value *bool) Field {
	if value == nil {
		return Field{Name: name}
	}
	return Bool(name, *value)
}

// Join concatenates the present values with Delimiter, without a trailing delimiter.
func Join(fields Fields) string {
	var sb strings.Builder
	for _, f := range fields {
		if !f.Present {
			continue
		}
		sb.WriteString(f.Value)
		sb.WriteString(Delimiter)
	}

	return strings.TrimSuffix(sb.String(), Delimiter)
}

func (f Fields) String() string {
	return Join(f)
}
