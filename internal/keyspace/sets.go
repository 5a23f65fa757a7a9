package keyspace

// SAdd adds members to the set at key, creating it if absent. Returns
// the number of members that were not already present.
func (k *Keyspace) SAdd(key string, members ...string) (int64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		e = newSetEntry()
		k.data[key] = e
	} else if e.kind != KindSet {
		return 0, ErrWrongType
	}

	var added int64
	for _, m := range members {
		if _, exists := e.set[m]; !exists {
			e.set[m] = struct{}{}
			added++
		}
	}
	return added, nil
}

// SRem removes members from the set at key. Returns the number
// actually removed. Emptying the set deletes the key.
func (k *Keyspace) SRem(key string, members ...string) (int64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return 0, nil
	}
	if e.kind != KindSet {
		return 0, ErrWrongType
	}

	var removed int64
	for _, m := range members {
		if _, exists := e.set[m]; exists {
			delete(e.set, m)
			removed++
		}
	}
	k.dropIfEmptyLocked(key, e)
	return removed, nil
}

// SMembers returns every member of the set at key, in unspecified
// order. Returns an empty slice if the key is absent.
func (k *Keyspace) SMembers(key string) ([]string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return nil, nil
	}
	if e.kind != KindSet {
		return nil, ErrWrongType
	}

	members := make([]string, 0, len(e.set))
	for m := range e.set {
		members = append(members, m)
	}
	return members, nil
}

// SCard returns the cardinality of the set at key, or 0 if absent.
func (k *Keyspace) SCard(key string) (int64, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return 0, nil
	}
	if e.kind != KindSet {
		return 0, ErrWrongType
	}
	return int64(len(e.set)), nil
}

// SIsMember reports whether member is present in the set at key.
func (k *Keyspace) SIsMember(key, member string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.liveLocked(key)
	if !ok {
		return false, nil
	}
	if e.kind != KindSet {
		return false, ErrWrongType
	}
	_, exists := e.set[member]
	return exists, nil
}
