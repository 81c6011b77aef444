package onecode

// A Dict is a dictionary that keeps its entries in insertion order.
// Unlike Go maps, it is encoded in the order in which
// entries were added, and decoding a Dict preserves the order of the input.
type Dict struct {
	entries []DictEntry
}

// DictEntry is a key-value pair of a Dict.
type DictEntry struct {
	Key   string
	Value any
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{}
}

// Add appends a new entry, without checking whether the key already exists.
// It returns the dictionary to allow chaining.
func (d *Dict) Add(key string, value any) *Dict {
	d.entries = append(d.entries, DictEntry{Key: key, Value: value})
	return d
}

// Get returns the value of the first entry with the given key.
func (d *Dict) Get(key string) (any, bool) {
	for _, e := range d.entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}

// Set replaces the value of the first entry with the given key,
// or adds a new entry if there is none.
func (d *Dict) Set(key string, value any) {
	for i := range d.entries {
		if d.entries[i].Key == key {
			d.entries[i].Value = value
			return
		}
	}

	d.Add(key, value)
}

// Delete removes every entry with the given key and reports
// whether there was at least one.
func (d *Dict) Delete(key string) bool {
	kept := d.entries[:0]
	for _, e := range d.entries {
		if e.Key != key {
			kept = append(kept, e)
		}
	}

	deleted := len(kept) != len(d.entries)
	clear(d.entries[len(kept):])
	d.entries = kept
	return deleted
}

func (d *Dict) Len() int {
	return len(d.entries)
}

// Iterate calls fn for each entry, in order.
// If fn returns an error, the iteration stops and the error is returned.
func (d *Dict) Iterate(fn func(key string, value any) error) error {
	for _, e := range d.entries {
		if err := fn(e.Key, e.Value); err != nil {
			return err
		}
	}

	return nil
}

func (d Dict) MarshalOneCode(e *Encoder) error {
	e.BeginDict()
	for _, ent := range d.entries {
		e.WriteString(ent.Key)
		if err := e.Encode(ent.Value); err != nil {
			return err
		}
	}
	e.EndDict()
	return nil
}

// UnmarshalOneCode decodes a dictionary, replacing the entries of d.
// Values are decoded as when decoding into an interface,
// except that nested dictionaries are decoded into a *Dict.
func (d *Dict) UnmarshalOneCode(dec *Decoder) error {
	if err := dec.BeginDict(); err != nil {
		return err
	}

	d.entries = d.entries[:0]
	for {
		more, err := dec.NextEntry()
		if err != nil {
			return err
		}
		if !more {
			break
		}

		k, err := dec.ReadString()
		if err != nil {
			return err
		}

		v, err := dec.decodeAny(true)
		if err != nil {
			return err
		}
		d.Add(k, v)
	}

	return dec.EndDict()
}
