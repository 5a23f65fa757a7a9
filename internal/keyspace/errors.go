package keyspace

import "errors"

// ErrWrongType is returned by any kind-specific operation when the
// key exists but holds a value of a different Kind. The caller never
// converts the value; the operation simply fails.
var ErrWrongType = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")

// ErrNotInteger is returned by INCR/DECR when the current string value
// cannot be parsed as a signed 64-bit integer, or when an argument
// expected to be an integer is not one.
var ErrNotInteger = errors.New("value is not an integer or out of range")

// ErrOverflow is returned by INCR/DECR when applying the delta would
// overflow the signed 64-bit range.
var ErrOverflow = errors.New("increment or decrement would overflow")
