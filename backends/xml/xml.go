// Package xml provides the XML backend for parcel.
// It registers itself under the name "xml" when imported.
//
// Every value is encoded as a document rooted at <opt>. XML cannot express
// an absent value, so nil encodes as a root attribute marker,
// <opt _serialized_object_is_undef="1"/>, and other non-mapping values are
// wrapped under parcel.WrapKey. Decoding is lossy in the usual XML way:
// leaf values come back as strings, and a one-element sequence is
// indistinguishable from its single element.
package xml

import (
	"fmt"
	"reflect"

	"github.com/clbanning/mxj/v2"

	"github.com/RobertWHurst/parcel"
)

// Name is the identifier this backend registers under.
const Name = "xml"

// rootTag names the document root element.
const rootTag = "opt"

// attrPrefix is mxj's marker for map keys that encode as XML attributes.
const attrPrefix = "-"

// Backend implements parcel.Backend using XML documents built from and
// decoded into generic maps.
type Backend struct{}

var _ parcel.Backend = Backend{}

// Encode serializes v, which must be a keyed mapping after quirk
// normalization, into an XML document rooted at <opt>.
func (Backend) Encode(v any) ([]byte, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("xml: top-level value must be a mapping, got %T", v)
	}
	if marker, ok := m[parcel.UndefKey]; ok && len(m) == 1 {
		// The absent marker rides as a root attribute, not a child element.
		m = map[string]any{attrPrefix + parcel.UndefKey: markerAttr(marker)}
	}
	return mxj.Map(m).Xml(rootTag)
}

// Decode parses an XML document and returns the content of its root element
// as a mapping. The absent-marker attribute is surfaced back under
// parcel.UndefKey so the quirk layer can restore nil.
func (Backend) Decode(data []byte) (any, error) {
	doc, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, err
	}
	var inner any
	for _, v := range doc {
		inner = v
	}
	m, ok := inner.(map[string]any)
	if !ok {
		return inner, nil
	}
	if marker, ok := m[attrPrefix+parcel.UndefKey]; ok && len(m) == 1 {
		return map[string]any{parcel.UndefKey: marker}, nil
	}
	return m, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, sv := range m {
			out[k] = sv
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func markerAttr(v any) string {
	if b, ok := v.(bool); ok && b {
		return "1"
	}
	return fmt.Sprint(v)
}

func init() {
	parcel.Register(parcel.Registration{
		Name:   Name,
		New:    func() (parcel.Backend, error) { return Backend{}, nil },
		Wrap:   parcel.WrapAbsent,
		Unwrap: parcel.UnwrapAbsent,
	})
}
