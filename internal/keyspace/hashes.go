package keyspace

// HSet writes field/value pairs into the hash at key, creating it if
// absent. Returns the number of fields that were newly created (as
// opposed to updated in place).
func (k *Keyspace) HSet(key string, fields map[string]string) (int64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		e = newHashEntry()
		k.data[key] = e
	} else if e.kind != KindHash {
		return 0, ErrWrongType
	}

	var created int64
	for field, value := range fields {
		if _, exists := e.hash[field]; !exists {
			created++
		}
		e.hash[field] = value
	}
	return created, nil
}

// HGet returns the value of field in the hash at key. ok is false if
// the key or field is absent.
func (k *Keyspace) HGet(key, field string) (value string, ok bool, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return "", false, nil
	}
	if e.kind != KindHash {
		return "", false, ErrWrongType
	}
	value, ok = e.hash[field]
	return value, ok, nil
}

// HDel removes fields from the hash at key. Returns the number
// actually removed. Emptying the hash deletes the key.
func (k *Keyspace) HDel(key string, fields ...string) (int64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return 0, nil
	}
	if e.kind != KindHash {
		return 0, ErrWrongType
	}

	var removed int64
	for _, f := range fields {
		if _, exists := e.hash[f]; exists {
			delete(e.hash, f)
			removed++
		}
	}
	k.dropIfEmptyLocked(key, e)
	return removed, nil
}

// HKeys returns every field name in the hash at key.
func (k *Keyspace) HKeys(key string) ([]string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return nil, nil
	}
	if e.kind != KindHash {
		return nil, ErrWrongType
	}

	keys := make([]string, 0, len(e.hash))
	for f := range e.hash {
		keys = append(keys, f)
	}
	return keys, nil
}

// HVals returns every field value in the hash at key.
func (k *Keyspace) HVals(key string) ([]string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return nil, nil
	}
	if e.kind != KindHash {
		return nil, ErrWrongType
	}

	vals := make([]string, 0, len(e.hash))
	for _, v := range e.hash {
		vals = append(vals, v)
	}
	return vals, nil
}

// HGetAll returns every field and value in the hash at key,
// interleaved as field, value, field, value...
func (k *Keyspace) HGetAll(key string) ([]string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return nil, nil
	}
	if e.kind != KindHash {
		return nil, ErrWrongType
	}

	out := make([]string, 0, len(e.hash)*2)
	for f, v := range e.hash {
		out = append(out, f, v)
	}
	return out, nil
}
