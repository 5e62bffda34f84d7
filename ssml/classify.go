package ssml

import (
	"sort"

	"github.com/npillmayer/aural/dom/style"
	"github.com/npillmayer/aural/maybe"
)

// Tag is the name of a synthetic tag, i.e. a tag not present in the source
// document.
type Tag string

// Synthetic tags.
const (
	Emphasis Tag = "emphasis"
	Prosody  Tag = "prosody"
	Voice    Tag = "voice"
)

// Add new synthetic tags by adding rows.
var syntheticTags = map[string]Tag{
	"pitch":         Prosody,
	"volume":        Prosody,
	"voice-family":  Voice,
	"voice-variant": Voice,
	"voice-gender":  Voice,
	"level":         Emphasis,
}

// Classify returns the synthetic tag a style property is expressed with, or
// Nothing if the property stays a plain attribute.
func Classify(property string) maybe.Maybe[Tag] {
	if tag, ok := syntheticTags[property]; ok {
		return maybe.Just(tag)
	}
	return maybe.Nothing[Tag]()
}

// wrapper is a synthetic tag built for one node during rendering.
type wrapper struct {
	tag   Tag
	attrs []style.KeyValue
}

// partition splits a node's style properties into plain attributes and
// synthetic tags. Both are sorted: attributes by property name, wrappers
// by tag name.
func partition(pmap *style.PropertyMap) (plain []style.KeyValue, wrappers []wrapper) {
	var groups map[Tag][]style.KeyValue
	for _, kv := range pmap.Properties() {
		var tag Tag
		switch m := Classify(kv.Key).Match(); m {
		case m.Just(&tag):
			if groups == nil {
				groups = make(map[Tag][]style.KeyValue)
			}
			groups[tag] = append(groups[tag], kv)
		default:
			plain = append(plain, kv)
		}
	}
	for tag, attrs := range groups {
		wrappers = append(wrappers, wrapper{tag: tag, attrs: attrs})
	}
	sort.Slice(wrappers, func(i, j int) bool {
		return wrappers[i].tag < wrappers[j].tag
	})
	return
}
