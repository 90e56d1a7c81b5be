package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrItemsNotArray = errors.New("items must be a JSON array")

// Items is a list of arbitrary JSON values kept as received. A nil Items
// means the list was absent or null.
type Items []json.RawMessage

func ParseItems(raw json.RawMessage) (Items, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] != '[' {
		return nil, ErrItemsNotArray
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if items == nil {
		items = []json.RawMessage{}
	}

	return items, nil
}

// Text renders the list as the JSON text stored in the database.
func (i Items) Text() (*string, error) {
	if i == nil {
		return nil, nil //nolint:nilnil
	}

	data, err := json.Marshal([]json.RawMessage(i))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	text := string(data)

	return &text, nil
}
