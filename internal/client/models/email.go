package models

import (
	"encoding/json"
	"errors"
)

// EmailRequest is the share-by-email payload.
type EmailRequest struct {
	UUID      string `json:"uuid"`
	EmailTo   string `json:"emailTo"`
	EmailFrom string `json:"emailFrom"`
}

// EmailResponse carries the server's verdict. Success follows loose
// truthiness: any JSON value other than false, null, 0 or "" counts.
// A body that is valid JSON but not an object has no flag and decodes as
// a refusal; a null body is an error.
type EmailResponse struct {
	Success bool `json:"success"`
}

var errNullBody = errors.New("null body")

func (r *EmailResponse) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		return errNullBody
	}
	obj, ok := v.(map[string]any)
	if !ok {
		r.Success = false
		return nil
	}
	r.Success = truthy(obj["success"])
	return nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
