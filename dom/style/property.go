package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     voice-gender: female
//
// a property value of "female" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// KeyValue is a container for a property key and its textual value.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Map ----------------------------------------------------------

// PropertyMap holds the resolved style values of a styled node.
// nil is a legal (empty) property map.
type PropertyMap struct {
	m map[string]Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]Value)}
}

// Set sets a property's value, overwriting an existing one.
// It returns the property map to allow for chaining.
func (pmap *PropertyMap) Set(key string, v Value) *PropertyMap {
	if pmap == nil {
		return nil
	}
	if pmap.m == nil {
		pmap.m = make(map[string]Value)
	}
	pmap.m[key] = v
	return pmap
}

// Add converts a raw property to a value and sets it, e.g.,
//
//    pm.Add("pitch", "high")
//
func (pmap *PropertyMap) Add(key string, p Property) *PropertyMap {
	v := p.Value()
	tracer().P("key", key).Debugf("style: %s = %s", key, v)
	return pmap.Set(key, v)
}

// Get returns a property's value, together with an indicator wether it has
// been found in the property map.
func (pmap *PropertyMap) Get(key string) (Value, bool) {
	if pmap == nil {
		return Value{}, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// Delete removes a property.
func (pmap *PropertyMap) Delete(key string) {
	if pmap != nil {
		delete(pmap.m, key)
	}
}

// Len returns the number of properties in the map.
func (pmap *PropertyMap) Len() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Keys returns all property keys, sorted.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties with their values rendered as text,
// sorted by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	keys := pmap.Keys()
	r := make([]KeyValue, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{k, Property(pmap.m[k].String())}
	}
	return r
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
	}
	b.WriteString("}")
	return b.String()
}
