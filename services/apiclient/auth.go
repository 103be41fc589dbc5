package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vaxbook/models"
	"vaxbook/services/validation"

	"go.uber.org/zap"
)

// RegisterResult is what the backend returns for a new account. Depending on
// the revision it carries a token, a confirmation message, or both.
type RegisterResult struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"msg,omitempty"`
}

// Login authenticates and persists the token together with the user fields
// decoded from it. Input is checked before any request is made.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if err := validation.ValidateCredentials(email, password); err != nil {
		return nil, c.fail(invalid(OpLogin, err))
	}

	data, err := c.do(ctx, OpLogin, http.MethodPost, pathLogin, models.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Token string         `json:"token"`
		User  *models.Claims `json:"user"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, c.fail(malformed(OpLogin, http.StatusOK, err))
	}
	if resp.Token == "" {
		return nil, c.fail(malformed(OpLogin, http.StatusOK, errors.New("no token in login response")))
	}

	s := models.Session{Token: resp.Token}
	claims, err := DecodeClaims(resp.Token)
	switch {
	case err == nil:
		s.Claims = claims
	case resp.User != nil:
		s.Claims = *resp.User
	default:
		c.logger.Warn("Login token carries no readable user claims", zap.Error(err))
	}

	if err := c.session.Save(ctx, s); err != nil {
		return nil, c.fail(storageError(OpLogin, err))
	}
	return &s, nil
}

// Register creates a customer account. It does not log in.
func (c *Client) Register(ctx context.Context, name, email, password string) (*RegisterResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validation.ValidateRegistration(name, email, password, ""); err != nil {
		return nil, c.fail(invalid(OpRegister, err))
	}

	data, err := c.do(ctx, OpRegister, http.MethodPost, pathRegister, models.Registration{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	result := &RegisterResult{}
	if len(bytes.TrimSpace(data)) == 0 {
		return result, nil
	}
	var resp struct {
		Token   string `json:"token"`
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, c.fail(malformed(OpRegister, http.StatusOK, err))
	}
	result.Token = resp.Token
	result.Message = resp.Msg
	if result.Message == "" {
		result.Message = resp.Message
	}
	return result, nil
}
