package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/earnhub/adminctl/internal/client/models"
)

// The backend answers list endpoints either with a bare JSON array or with
// an object wrapping the array under a well-known key, e.g. [..] or
// {"users": [..]}. Each list type below accepts both forms; a wrapper
// object without the key decodes to an empty list.

func unmarshalFlexibleList(data []byte, key string, out any) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return fmt.Errorf("decode %s list: %w", key, err)
	}
	raw, ok := wrapper[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

type userList struct {
	Items []models.User
}

func (l *userList) UnmarshalJSON(data []byte) error {
	return unmarshalFlexibleList(data, "users", &l.Items)
}

type taskList struct {
	Items []models.Task
}

func (l *taskList) UnmarshalJSON(data []byte) error {
	return unmarshalFlexibleList(data, "tasks", &l.Items)
}

type withdrawalList struct {
	Items []models.Withdrawal
}

func (l *withdrawalList) UnmarshalJSON(data []byte) error {
	return unmarshalFlexibleList(data, "withdrawals", &l.Items)
}
