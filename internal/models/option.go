package models

import "encoding/json"

// Option is a named site setting stored as raw JSON.
type Option struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}
