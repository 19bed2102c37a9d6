package concepts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseConcepts parses raw model output as a flat JSON object of string pairs.
//
// Empty or whitespace-only output yields no entries and no error. A surrounding
// markdown code fence is tolerated. Anything else that is not a single object of
// string values fails with ErrParseFailure. Pairs keep the order the model emitted
// them in, duplicates included.
func ParseConcepts(raw string) (ConceptSet, error) {
	text := stripFence(strings.TrimSpace(raw))
	if text == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object, got %v", ErrParseFailure, tok)
	}

	var set ConceptSet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", ErrParseFailure, keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
		}
		val, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: definition of %q is not a string", ErrParseFailure, key)
		}
		set = append(set, ConceptEntry{Concept: key, Definition: val})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrParseFailure)
	}
	return set, nil
}

// stripFence removes a ```json ... ``` wrapper if the whole text is one.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	inner := text[3 : len(text)-3]
	if i := strings.IndexByte(inner, '\n'); i >= 0 {
		// Drop the info string, e.g. "json".
		if info := strings.TrimSpace(inner[:i]); !strings.ContainsAny(info, "{[\"") {
			inner = inner[i+1:]
		}
	}
	return strings.TrimSpace(inner)
}

// MarshalJSON encodes the set as a JSON object, preserving entry order.
func (s ConceptSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Concept)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Definition)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
