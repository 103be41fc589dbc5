package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"vaxbook/models"
)

var errMissingID = errors.New("id is required")

// ListVaccines returns the vaccine catalogue in backend order.
func (c *Client) ListVaccines(ctx context.Context) ([]models.Vaccine, error) {
	data, err := c.do(ctx, OpListVaccines, http.MethodGet, pathVaccines, nil)
	if err != nil {
		return nil, err
	}
	list, err := decodeList[models.Vaccine](data, "vaccines")
	if err != nil {
		return nil, c.fail(malformed(OpListVaccines, http.StatusOK, err))
	}
	return list, nil
}

// GetVaccine returns one vaccine. An empty id fails before any request.
func (c *Client) GetVaccine(ctx context.Context, id string) (*models.Vaccine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, c.fail(invalid(OpGetVaccine, errMissingID))
	}
	data, err := c.do(ctx, OpGetVaccine, http.MethodGet, pathVaccine+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	v, err := decodeOne[models.Vaccine](data, "vaccine")
	if err != nil {
		return nil, c.fail(malformed(OpGetVaccine, http.StatusOK, err))
	}
	return v, nil
}
