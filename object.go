package jsonly

// Object is an ordered string keyed collection of values. Keys keep their
// first insertion position: setting an existing key overwrites the value in
// place without moving it, so iteration order is deterministic and
// independent of any hashing.
type Object struct {
	keys   []string
	values []*Value
	index  map[string]int
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Set inserts or overwrites the value under key. An existing key keeps its
// original position, last write wins.
func (o *Object) Set(key string, value *Value) {
	if i, ok := o.index[key]; ok {
		o.values[i] = value
		return
	}
	if o.index == nil {
		o.index = make(map[string]int, 4)
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

// Value returns the value under key and whether the key is present.
func (o *Object) Value(key string) (*Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.values[i], true
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Pairs visits entries in insertion order until fn returns false.
func (o *Object) Pairs(fn func(key string, value *Value) bool) {
	for i, key := range o.keys {
		if !fn(key, o.values[i]) {
			return
		}
	}
}

// Delete removes key and closes the positional gap. It reports whether the
// key was present.
func (o *Object) Delete(key string) bool {
	i, ok := o.index[key]
	if !ok {
		return false
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.values = append(o.values[:i], o.values[i+1:]...)
	delete(o.index, key)
	for j := i; j < len(o.keys); j++ {
		o.index[o.keys[j]] = j
	}
	return true
}
