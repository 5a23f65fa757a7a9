package resp

import "fmt"

// MakeSimpleString constructs a SimpleString Value.
func MakeSimpleString(s string) Value {
	return Value{Type: TypeSimpleString, Str: []byte(s)}
}

// MakeError constructs an Error Value. Per convention the text should
// already start with an error code such as "ERR" or "WRONGTYPE".
func MakeError(s string) Value {
	return Value{Type: TypeError, Str: []byte(s)}
}

// MakeErrorf constructs an Error Value from a format string.
func MakeErrorf(format string, args ...interface{}) Value {
	return MakeError(fmt.Sprintf(format, args...))
}

// MakeNilBulk constructs the null bulk reply ($-1\r\n).
func MakeNilBulk() Value {
	return Value{Type: TypeNilBulk}
}

// MakeInteger constructs an Integer Value.
func MakeInteger(n int64) Value {
	return Value{Type: TypeInteger, Integer: n}
}

// MakeArray constructs an array reply from already-built elements.
func MakeArray(values []Value) Value {
	return Value{Type: TypeArray, Array: values}
}

// MakeSimpleStringArray is a convenience wrapper for the common case of
// an array whose elements are all plain strings (SMEMBERS, KEYS, HKEYS...).
func MakeSimpleStringArray(items []string) Value {
	values := make([]Value, len(items))
	for i, s := range items {
		values[i] = MakeSimpleString(s)
	}
	return MakeArray(values)
}
