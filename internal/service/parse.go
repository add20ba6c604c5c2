package service

import (
	"encoding/json"
	"strings"

	"avika/internal/model"
)

// ParseOption maps a classification reply onto one of the item's options.
// The token set is closed: a JSON {"option": "<label>"} object or a bare
// label is accepted; everything else, including null, unknown labels, and
// free text, means unclear.
func ParseOption(raw string, item *model.Item) (*model.Option, bool) {
	text := stripFences(raw)

	var payload struct {
		Option *string `json:"option"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err == nil {
		if payload.Option == nil {
			return nil, false
		}
		return matchLabel(*payload.Option, item)
	}

	// Some models reply with the bare label despite the contract.
	token := strings.TrimRight(strings.TrimSpace(text), ".")
	if len(token) <= 2 {
		return matchLabel(token, item)
	}
	return nil, false
}

// ParseBatch maps a batch classification reply onto item IDs and options.
// Entries with null, unknown item IDs, or unknown labels are dropped.
func ParseBatch(raw string, catalog *model.Catalog) map[string]*model.Option {
	text := stripFences(raw)

	var payload map[string]*string
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil
	}

	out := make(map[string]*model.Option)
	for id, label := range payload {
		if label == nil {
			continue
		}
		item, ok := catalog.ItemByID(id)
		if !ok {
			continue
		}
		if opt, ok := matchLabel(*label, item); ok {
			out[id] = opt
		}
	}
	return out
}

func matchLabel(token string, item *model.Item) (*model.Option, bool) {
	token = strings.ToUpper(strings.TrimSpace(token))
	for i := range item.Options {
		if strings.ToUpper(item.Options[i].Label) == token {
			return &item.Options[i], true
		}
	}
	return nil, false
}

// stripFences removes a surrounding markdown code fence, which some models
// wrap JSON replies in.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
