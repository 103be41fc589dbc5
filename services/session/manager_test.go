package session

import (
	"context"
	"testing"

	"vaxbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	_, err := m.Current(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	want := models.Session{
		Token:  "header.payload.sig",
		Claims: models.Claims{UserID: "u1", Email: "mai@example.vn", Name: "Mai", Role: "customer"},
	}
	require.NoError(t, m.Save(ctx, want))

	got, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	tok, err := m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Token, tok)

	require.NoError(t, m.Logout(ctx))
	_, err = m.Current(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManagerRejectsEmptyToken(t *testing.T) {
	assert.Error(t, NewManager(NewMemoryStore()).Save(context.Background(), models.Session{}))
}

func TestChildDraft(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	d, err := m.ChildDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)

	draft := models.NewChild{Name: "Bin", BirthDate: "01/01/2020", Gender: models.GenderMale}
	require.NoError(t, m.SaveChildDraft(ctx, draft))
	d, err = m.ChildDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, draft, *d)

	require.NoError(t, m.Logout(ctx))
	d, err = m.ChildDraft(ctx)
	require.NoError(t, err)
	assert.Nil(t, d)
}
