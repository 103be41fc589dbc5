package models

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another document that the backend returns either as
// a bare id string or as the populated sub-document. ID is always set when
// the reference is present; Doc is set only when it was populated.
type Ref[T any] struct {
	ID  string
	Doc *T
}

// RefTo builds an unpopulated reference.
func RefTo[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

// Populated reports whether the sub-document was included.
func (r Ref[T]) Populated() bool {
	return r.Doc != nil
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}
	if trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return err
		}
		*r = Ref[T]{ID: id}
		return nil
	}

	var doc T
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return err
	}
	var probe struct {
		ID    string `json:"_id"`
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return err
	}
	id := probe.ID
	if id == "" {
		id = probe.AltID
	}
	*r = Ref[T]{ID: id, Doc: &doc}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Doc != nil {
		return json.Marshal(r.Doc)
	}
	return json.Marshal(r.ID)
}
