package ldap

import (
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// Attribute names are lowercased when raw results are built, so the
// identifier special-case matches these exact forms and nothing else.
const (
	attrObjectGUID = "objectguid"
	attrObjectSID  = "objectsid"
)

// RawValues is the value record of a single attribute in a raw result:
// the reported value count and the values in their original order.
type RawValues struct {
	Count  int
	Values []string
}

// RawEntry is one entry of a raw directory result. The dynamic structure
// returned by directory APIs mixes positional and named data in one
// collection; here it is split into two explicit parts: Names carries the
// positional attribute-name list, Attributes the named value records.
type RawEntry struct {
	Count      int
	Names      []string
	Attributes map[string]RawValues
}

// RawResult is the top-level raw directory result: a count and the entries
// in the order the directory returned them.
type RawResult struct {
	Count   int
	Entries []RawEntry
}

// ValueKind discriminates the three shapes a normalized attribute value
// can take.
type ValueKind int

const (
	// ValueScalar is a single string value (possibly empty).
	ValueScalar ValueKind = iota
	// ValueList is an ordered multi-value list.
	ValueList
	// ValueIdentifier is a raw/decoded pair for a binary identifier
	// attribute (objectGUID or objectSid).
	ValueIdentifier
)

// Value is a normalized attribute value. Exactly one of the value fields
// is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	// Str holds the value for ValueScalar.
	Str string
	// List holds the values for ValueList, in original order.
	List []string
	// Raw and Decoded hold the identifier pair for ValueIdentifier.
	// Raw is the binary value as returned by the directory, Decoded its
	// human-readable rendering.
	Raw     string
	Decoded string
}

// Entry is one normalized directory entry.
type Entry struct {
	// Keys is the positional attribute-name metadata of the raw entry,
	// in its original order.
	Keys []string
	// Data maps each named attribute of the raw entry to its normalized
	// value. Every attribute present in the raw entry has a key here,
	// even when it carried no values.
	Data map[string]Value
}

// Normalizer flattens raw directory results. The zero value reproduces the
// historical behavior of rendering objectSid values through the GUID
// layout; DecodeSIDs switches objectSid to proper S-1-5-21-... rendering.
type Normalizer struct {
	DecodeSIDs bool
}

// Normalize flattens a raw result with the default Normalizer.
func Normalize(raw *RawResult) []Entry {
	return Normalizer{}.Normalize(raw)
}

// Normalize converts a raw directory result into a flat entry list.
// Entry order and value order are preserved; no entry is dropped. A result
// with zero entries yields an empty, non-nil slice.
func (n Normalizer) Normalize(raw *RawResult) []Entry {
	if raw == nil {
		return []Entry{}
	}

	entries := make([]Entry, 0, len(raw.Entries))
	for _, re := range raw.Entries {
		e := Entry{
			Keys: append([]string(nil), re.Names...),
			Data: make(map[string]Value, len(re.Attributes)),
		}
		for name, vals := range re.Attributes {
			e.Data[name] = n.normalizeValue(name, vals)
		}
		entries = append(entries, e)
	}

	return entries
}

func (n Normalizer) normalizeValue(name string, vals RawValues) Value {
	if vals.Count > 1 {
		return Value{Kind: ValueList, List: append([]string(nil), vals.Values...)}
	}

	// Zero or one value: an attribute present without values still
	// normalizes to an empty scalar (or identifier pair), never disappears.
	first := ""
	if len(vals.Values) > 0 {
		first = vals.Values[0]
	}

	switch name {
	case attrObjectGUID:
		return Value{Kind: ValueIdentifier, Raw: first, Decoded: DecodeGUID([]byte(first))}
	case attrObjectSID:
		decoded := DecodeGUID([]byte(first))
		if n.DecodeSIDs {
			decoded = DecodeSIDSafe([]byte(first))
		}
		return Value{Kind: ValueIdentifier, Raw: first, Decoded: decoded}
	}

	return Value{Kind: ValueScalar, Str: first}
}

// rawFromSearchResult bridges a go-ldap search result into the raw model.
// Attribute names are lowercased, matching the convention of directory
// entry arrays (and the lowercase identifier attribute match above). The
// entry DN is carried as a single-valued "dn" attribute; it does not appear
// in the positional name list.
func rawFromSearchResult(res *ldap.SearchResult) *RawResult {
	raw := &RawResult{
		Count:   len(res.Entries),
		Entries: make([]RawEntry, 0, len(res.Entries)),
	}

	for _, entry := range res.Entries {
		re := RawEntry{
			Count:      len(entry.Attributes),
			Names:      make([]string, 0, len(entry.Attributes)),
			Attributes: make(map[string]RawValues, len(entry.Attributes)+1),
		}
		re.Attributes["dn"] = RawValues{Count: 1, Values: []string{entry.DN}}

		for _, attr := range entry.Attributes {
			name := strings.ToLower(attr.Name)
			re.Names = append(re.Names, name)
			re.Attributes[name] = RawValues{
				Count:  len(attr.Values),
				Values: append([]string(nil), attr.Values...),
			}
		}

		raw.Entries = append(raw.Entries, re)
	}

	return raw
}
