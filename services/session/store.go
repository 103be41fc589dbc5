package session

import (
	"context"
	"errors"
)

// Keys of the persisted client state.
const (
	KeyToken        = "token"
	KeyUserID       = "userId"
	KeyUserEmail    = "userEmail"
	KeyUserName     = "userName"
	KeyUserRole     = "userRole"
	KeyChildProfile = "childProfile"
)

// ErrNoSession is returned when no token has been stored.
var ErrNoSession = errors.New("not logged in")

// Store is the device-local key-value storage holding the session.
// Get returns "" with a nil error for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	MultiSet(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
