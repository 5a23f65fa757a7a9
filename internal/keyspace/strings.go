package keyspace

import "strconv"

// StringGet returns the string stored at key. ok is false if the key is
// absent; err is ErrWrongType if the key holds a non-string value.
func (k *Keyspace) StringGet(key string) (value string, ok bool, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return "", false, nil
	}
	if e.kind != KindString {
		return "", false, ErrWrongType
	}
	return e.str, true, nil
}

// StringSet stores value at key as a String, clearing any prior TTL and
// overwriting any prior value regardless of its kind.
func (k *Keyspace) StringSet(key, value string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.putLocked(key, newStringEntry(value))
}

// IncrBy parses the current value as a signed 64-bit integer (treating
// an absent key as "0"), adds delta, stores the result back as decimal
// text, and returns the new value. It fails with ErrNotInteger if the
// current value cannot be parsed, ErrWrongType if the key holds a
// non-string value, and ErrOverflow if applying delta would overflow.
func (k *Keyspace) IncrBy(key string, delta int64) (int64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		k.putLocked(key, newStringEntry(strconv.FormatInt(delta, 10)))
		return delta, nil
	}
	if e.kind != KindString {
		return 0, ErrWrongType
	}

	current, err := strconv.ParseInt(e.str, 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}

	next := current + delta
	if (delta > 0 && next < current) || (delta < 0 && next > current) {
		return 0, ErrOverflow
	}

	e.str = strconv.FormatInt(next, 10)
	return next, nil
}
