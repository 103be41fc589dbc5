package models

import "encoding/json"

// Child is a child profile owned by the authenticated user.
type Child struct {
	ID             string `bson:"_id" json:"_id"`
	ParentID       string `bson:"parentId,omitempty" json:"parentId,omitempty"`
	Name           string `bson:"name" json:"name"`
	DateOfBirth    string `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender         Gender `bson:"gender" json:"gender"`
	MedicalHistory string `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
}

// UnmarshalJSON accepts "_id"/"id" and "dateOfBirth"/"birthDate" since
// backend revisions disagree on both.
func (c *Child) UnmarshalJSON(data []byte) error {
	type alias Child
	aux := struct {
		*alias
		AltID     string `json:"id"`
		BirthDate string `json:"birthDate"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = aux.AltID
	}
	if c.DateOfBirth == "" {
		c.DateOfBirth = aux.BirthDate
	}
	return nil
}

// NewChild is the payload of the add-child call.
type NewChild struct {
	Name           string `json:"name"`
	BirthDate      string `json:"birthDate"`
	Gender         Gender `json:"gender"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
}
