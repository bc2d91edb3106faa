package xc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/wafexport/wafexport/pkg/jsonutil"
)

// PathPair is one key/value entry of a route path matcher.
type PathPair struct {
	Key   string
	Value string
}

// PathMatch is a route path matcher (prefix/path/regex oneof) decoded as an
// ordered key/value list. A Go map would scramble key order, and the
// rendered descriptor must follow the document's own order.
type PathMatch []PathPair

// UnmarshalJSON decodes a JSON object into ordered pairs using a jsontext
// token walk. Scalar values keep their text form; string values are
// unquoted.
func (p *PathMatch) UnmarshalJSON(data []byte) error {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	switch tok.Kind() {
	case 'n':
		*p = nil
		return nil
	case '{':
	default:
		return fmt.Errorf("xc: path match: expected object, got %v", tok.Kind())
	}

	var pairs []PathPair
	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return err
		}
		// name.String() must be taken before ReadValue voids the token.
		key := name.String()
		val, err := dec.ReadValue()
		if err != nil {
			return err
		}
		pairs = append(pairs, PathPair{Key: key, Value: scalarText(val)})
	}
	if _, err := dec.ReadToken(); err != nil { // consume '}'
		return err
	}
	*p = pairs
	return nil
}

// MarshalJSON re-encodes the pairs as a JSON object in stored order.
func (p PathMatch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return nil, err
	}
	for _, pair := range p {
		if err := enc.WriteToken(jsontext.String(pair.Key)); err != nil {
			return nil, err
		}
		if err := enc.WriteToken(jsontext.String(pair.Value)); err != nil {
			return nil, err
		}
	}
	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// String renders the matcher as "key=value; key=value" in stored order.
// An empty matcher renders as the empty string.
func (p PathMatch) String() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, pair := range p {
		parts[i] = pair.Key + "=" + pair.Value
	}
	return strings.Join(parts, "; ")
}

// scalarText returns the display text of a JSON value: strings are
// unquoted, everything else keeps its raw JSON text.
func scalarText(v jsontext.Value) string {
	if v.Kind() == '"' {
		var s string
		if err := jsonutil.Unmarshal(v, &s); err == nil {
			return s
		}
	}
	return string(v)
}
