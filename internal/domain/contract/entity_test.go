//go:build unit

package contract_test

import (
	"testing"
	"time"

	"bakehouse/internal/domain/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSent(t *testing.T) *contract.Contract {
	t.Helper()
	c, err := contract.NewContract(uuid.New(), uuid.New(), "Wedding Agreement", "Terms of service.")
	require.NoError(t, err)
	require.NoError(t, c.Send())
	return c
}

func TestNewContract(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := contract.NewContract(uuid.New(), uuid.New(), "  Wedding Agreement  ", "Terms.")
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.NotEqual(t, uuid.Nil, c.SigningToken())
		assert.Equal(t, contract.StatusDraft, c.Status())
		assert.Equal(t, "Wedding Agreement", c.Title())
		assert.False(t, c.IsSigned())
	})

	t.Run("body is required", func(t *testing.T) {
		_, err := contract.NewContract(uuid.New(), uuid.New(), "Title", "   ")
		assert.ErrorIs(t, err, contract.ErrEmptyBody)
	})
}

func TestContract_UpdateDetails(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("patches title and body while editable", func(t *testing.T) {
		c := newSent(t)
		require.NoError(t, c.UpdateDetails(strPtr("Revised"), strPtr("New terms.")))
		assert.Equal(t, "Revised", c.Title())
		assert.Equal(t, "New terms.", c.Body())
	})

	t.Run("cannot blank the body", func(t *testing.T) {
		c := newSent(t)
		assert.ErrorIs(t, c.UpdateDetails(nil, strPtr("  ")), contract.ErrEmptyBody)
	})

	t.Run("frozen once signed", func(t *testing.T) {
		c := newSent(t)
		require.NoError(t, c.Sign("Ada Lovelace", true, "203.0.113.9", time.Now()))
		assert.ErrorIs(t, c.UpdateDetails(strPtr("Late edit"), nil), contract.ErrNotEditable)
	})
}

func TestContract_Sign(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("stamps signer, time and address", func(t *testing.T) {
		c := newSent(t)
		require.NoError(t, c.Sign("  Ada Lovelace  ", true, "203.0.113.9", now))

		assert.True(t, c.IsSigned())
		require.NotNil(t, c.SignerName())
		assert.Equal(t, "Ada Lovelace", *c.SignerName())
		require.NotNil(t, c.SignedAt())
		assert.Equal(t, now, *c.SignedAt())
		require.NotNil(t, c.SignerIP())
		assert.Equal(t, "203.0.113.9", *c.SignerIP())
	})

	t.Run("only sent contracts can be signed", func(t *testing.T) {
		c, err := contract.NewContract(uuid.New(), uuid.New(), "T", "Body.")
		require.NoError(t, err)
		assert.ErrorIs(t, c.Sign("Ada", true, "", now), contract.ErrNotSent)
	})

	t.Run("signing twice", func(t *testing.T) {
		c := newSent(t)
		require.NoError(t, c.Sign("Ada", true, "", now))
		assert.ErrorIs(t, c.Sign("Ada", true, "", now), contract.ErrAlreadySigned)
	})

	t.Run("requires a signer name", func(t *testing.T) {
		c := newSent(t)
		assert.ErrorIs(t, c.Sign("   ", true, "", now), contract.ErrMissingSigner)
	})

	t.Run("requires explicit agreement", func(t *testing.T) {
		c := newSent(t)
		assert.ErrorIs(t, c.Sign("Ada", false, "", now), contract.ErrNotAgreed)
	})

	t.Run("send is idempotent, signed blocks resend and delete", func(t *testing.T) {
		c := newSent(t)
		require.NoError(t, c.Send())
		assert.True(t, c.CanDelete())

		require.NoError(t, c.Sign("Ada", true, "", now))
		assert.ErrorIs(t, c.Send(), contract.ErrNotEditable)
		assert.False(t, c.CanDelete())
	})
}
