package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/npillmayer/pagebuilder/page"
)

// IsNewSchema inspects a persisted sections array and reports whether it holds
// tree nodes (true) or legacy sections (false). Empty or missing arrays count
// as new schema. Tree nodes are recognized by a "kind" or "children" key,
// legacy sections by their "columns".
func IsNewSchema(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || len(entries) == 0 {
		return true
	}
	first := entries[0]
	if _, ok := first["kind"]; ok {
		return true
	}
	if _, ok := first["columns"]; ok {
		return false
	}
	_, ok := first["children"]
	return ok
}

// Decode reads a persisted sections array of either format and returns it as a
// tree under a synthesized root. A missing or empty array yields an empty
// document; a sections entry which is not an array at all is coerced to an
// empty document as well.
func Decode(raw json.RawMessage) (*page.Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return page.NewRoot(), nil
	}
	if raw[0] != '[' {
		tracer().Infof("sections of unexpected form %.20s, coerced to empty document", raw)
		return page.NewRoot(), nil
	}
	if IsNewSchema(raw) {
		var children []*page.Node
		if err := json.Unmarshal(raw, &children); err != nil {
			return nil, fmt.Errorf("decoding page sections: %w", err)
		}
		return page.NewRoot(children...), nil
	}
	var sections []Section
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("decoding legacy sections: %w", err)
	}
	tracer().Infof("migrating %d legacy sections", len(sections))
	return ToTree(sections), nil
}
