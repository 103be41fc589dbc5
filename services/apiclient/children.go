package apiclient

import (
	"context"
	"net/http"
	"strings"

	"vaxbook/models"
	"vaxbook/services/validation"
)

// ListChildren returns the children of the logged-in user. Ownership is
// enforced by the backend.
func (c *Client) ListChildren(ctx context.Context) ([]models.Child, error) {
	data, err := c.do(ctx, OpListChildren, http.MethodGet, pathChildren, nil)
	if err != nil {
		return nil, err
	}
	list, err := decodeList[models.Child](data, "children")
	if err != nil {
		return nil, c.fail(malformed(OpListChildren, http.StatusOK, err))
	}
	return list, nil
}

// AddChild creates a child profile. The gender label may be localized
// ("Nam", "Nữ"); it is mapped to the canonical code before sending, and the
// birth date is sent as YYYY-MM-DD.
func (c *Client) AddChild(ctx context.Context, in models.NewChild) (*models.Child, error) {
	payload, err := prepareChild(in)
	if err != nil {
		return nil, c.fail(invalid(OpAddChild, err))
	}
	data, err := c.do(ctx, OpAddChild, http.MethodPost, pathAddChild, payload)
	if err != nil {
		return nil, err
	}
	child, err := decodeOne[models.Child](data, "child")
	if err != nil {
		return nil, c.fail(malformed(OpAddChild, http.StatusOK, err))
	}
	return child, nil
}

func prepareChild(in models.NewChild) (models.NewChild, error) {
	out := models.NewChild{
		Name:           strings.TrimSpace(in.Name),
		MedicalHistory: strings.TrimSpace(in.MedicalHistory),
	}
	if out.Name == "" {
		return out, &validation.FieldError{Field: "name", Message: "is required"}
	}
	birth, err := validation.NormalizeBirthDate(in.BirthDate)
	if err != nil {
		return out, err
	}
	out.BirthDate = birth
	if strings.TrimSpace(string(in.Gender)) == "" {
		return out, &validation.FieldError{Field: "gender", Message: "is required"}
	}
	gender, err := models.ParseGender(string(in.Gender))
	if err != nil {
		return out, &validation.FieldError{Field: "gender", Message: err.Error()}
	}
	out.Gender = gender
	return out, nil
}
