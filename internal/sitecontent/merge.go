package sitecontent

import "encoding/json"

// MergeSection shallow-merges partial fields into one section of the document
// JSON. The merge is one level deep: array-valued fields present in the
// partial replace the stored arrays wholesale, they are never element-merged.
func MergeSection(doc []byte, name string, partial map[string]json.RawMessage) ([]byte, error) {
	var full map[string]json.RawMessage
	if err := json.Unmarshal(doc, &full); err != nil {
		return nil, err
	}
	if full == nil {
		full = map[string]json.RawMessage{}
	}

	section := map[string]json.RawMessage{}
	if raw, ok := full[name]; ok {
		if err := json.Unmarshal(raw, &section); err != nil {
			return nil, err
		}
	}
	for k, v := range partial {
		section[k] = v
	}

	merged, err := json.Marshal(section)
	if err != nil {
		return nil, err
	}
	full[name] = merged
	return json.Marshal(full)
}

// MergeDocument applies the shallow section merge independently for every
// top-level section key present in the payload.
func MergeDocument(doc []byte, partial map[string]map[string]json.RawMessage) ([]byte, error) {
	out := doc
	var err error
	for name, fields := range partial {
		out, err = MergeSection(out, name, fields)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SectionOf extracts one section's raw JSON from the document.
func SectionOf(doc []byte, name string) (json.RawMessage, error) {
	var full map[string]json.RawMessage
	if err := json.Unmarshal(doc, &full); err != nil {
		return nil, err
	}
	return full[name], nil
}
