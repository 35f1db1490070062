package httpx

import "encoding/json"

// StringList decodes either a JSON array of strings or a JSON string holding
// an encoded array ("[\"Go\",\"Mongo\"]"). Admin frontends that build their
// payloads from form data submit list fields the second way.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*s = items
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A plain string is treated as a single-element list.
		*s = []string{raw}
		return nil
	}
	*s = items
	return nil
}
