//go:build unit

package quote_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"bakehouse/internal/domain/quote"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T, depositPct int) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(uuid.New(), uuid.New(), depositPct, nil, "")
	require.NoError(t, err)
	return q
}

func TestNewQuote(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		valid := time.Now().Add(14 * 24 * time.Hour)
		q, err := quote.NewQuote(uuid.New(), uuid.New(), 50, &valid, "  custom wedding tiers  ")
		require.NoError(t, err)
		require.NotNil(t, q)

		assert.NotEqual(t, uuid.Nil, q.ID())
		assert.NotEqual(t, uuid.Nil, q.ApprovalToken())
		assert.Equal(t, quote.StatusDraft, q.Status())
		assert.Equal(t, "custom wedding tiers", q.Message())
		assert.Zero(t, q.TotalAmount())
	})

	t.Run("deposit percentage bounds", func(t *testing.T) {
		for _, pct := range []int{-1, 101} {
			_, err := quote.NewQuote(uuid.New(), uuid.New(), pct, nil, "")
			assert.ErrorIs(t, err, quote.ErrInvalidPercentage)
		}
		for _, pct := range []int{0, 100} {
			_, err := quote.NewQuote(uuid.New(), uuid.New(), pct, nil, "")
			assert.NoError(t, err)
		}
	})
}

func TestQuote_LineItems(t *testing.T) {
	t.Run("totals recompute on every mutation", func(t *testing.T) {
		q := newDraft(t, 50)

		_, err := q.AddLineItem("three-tier cake", 1, 45000)
		require.NoError(t, err)
		li, err := q.AddLineItem("sugar flowers", 30, 500)
		require.NoError(t, err)

		assert.Equal(t, int64(60000), q.Subtotal())
		assert.Equal(t, int64(60000), q.TotalAmount())
		assert.Equal(t, int64(30000), q.DepositAmount())

		require.NoError(t, q.RemoveLineItem(li.ID))
		assert.Equal(t, int64(45000), q.TotalAmount())
		assert.Equal(t, int64(22500), q.DepositAmount())
	})

	t.Run("deposit rounds half up", func(t *testing.T) {
		q := newDraft(t, 33)
		_, err := q.AddLineItem("tasting box", 1, 101)
		require.NoError(t, err)

		// 101 * 33% = 33.33 → 33; 50/100 offsets the truncation.
		assert.Equal(t, int64(33), q.DepositAmount())

		q2 := newDraft(t, 50)
		_, err = q2.AddLineItem("odd cents", 1, 101)
		require.NoError(t, err)
		assert.Equal(t, int64(51), q2.DepositAmount(), "50.5 rounds up")
	})

	t.Run("replace keeps input order as sort order", func(t *testing.T) {
		q := newDraft(t, 50)
		err := q.ReplaceLineItems([]quote.LineItemInput{
			{Description: "cake", Quantity: 1, UnitPrice: 30000},
			{Description: "delivery", Quantity: 1, UnitPrice: 5000},
		})
		require.NoError(t, err)

		items := q.LineItems()
		require.Len(t, items, 2)
		assert.Equal(t, "cake", items[0].Description)
		assert.Equal(t, 0, items[0].SortOrder)
		assert.Equal(t, "delivery", items[1].Description)
		assert.Equal(t, 1, items[1].SortOrder)
		assert.Equal(t, int64(35000), q.TotalAmount())
	})

	t.Run("remove compacts sort order", func(t *testing.T) {
		q := newDraft(t, 50)
		first, err := q.AddLineItem("a", 1, 100)
		require.NoError(t, err)
		_, err = q.AddLineItem("b", 1, 100)
		require.NoError(t, err)

		require.NoError(t, q.RemoveLineItem(first.ID))
		items := q.LineItems()
		require.Len(t, items, 1)
		assert.Equal(t, 0, items[0].SortOrder)
	})

	t.Run("remove unknown line item", func(t *testing.T) {
		q := newDraft(t, 50)
		assert.ErrorIs(t, q.RemoveLineItem(uuid.New()), quote.ErrLineItemNotFound)
	})

	t.Run("line item validation", func(t *testing.T) {
		q := newDraft(t, 50)

		_, err := q.AddLineItem("   ", 1, 100)
		assert.ErrorIs(t, err, quote.ErrEmptyDescription)
		_, err = q.AddLineItem("cookies", 0, 100)
		assert.ErrorIs(t, err, quote.ErrInvalidQuantity)
		_, err = q.AddLineItem("cookies", 1, -1)
		assert.ErrorIs(t, err, quote.ErrNegativeUnitPrice)
	})
}

func TestQuote_Lifecycle(t *testing.T) {
	t.Run("send is idempotent from sent", func(t *testing.T) {
		q := newDraft(t, 50)
		require.NoError(t, q.Send())
		assert.Equal(t, quote.StatusSent, q.Status())
		require.NoError(t, q.Send())
		assert.Equal(t, quote.StatusSent, q.Status())
	})

	t.Run("sent quotes stay editable until the customer acts", func(t *testing.T) {
		q := newDraft(t, 50)
		require.NoError(t, q.Send())

		_, err := q.AddLineItem("late addition", 1, 100)
		assert.NoError(t, err)
	})

	t.Run("approved quotes are frozen", func(t *testing.T) {
		q := newDraft(t, 50)
		require.NoError(t, q.Send())
		require.NoError(t, q.Approve(time.Now()))

		_, err := q.AddLineItem("late addition", 1, 100)
		assert.ErrorIs(t, err, quote.ErrNotEditable)
		assert.ErrorIs(t, q.ReplaceLineItems(nil), quote.ErrNotEditable)
		assert.ErrorIs(t, q.UpdateDetails(nil, nil, nil), quote.ErrNotEditable)
	})

	t.Run("approve requires sent", func(t *testing.T) {
		q := newDraft(t, 50)
		assert.ErrorIs(t, q.Approve(time.Now()), quote.ErrNotSent)
	})

	t.Run("approve stamps the approval time", func(t *testing.T) {
		q := newDraft(t, 50)
		require.NoError(t, q.Send())

		now := time.Now()
		require.NoError(t, q.Approve(now))
		assert.Equal(t, quote.StatusApproved, q.Status())
		require.NotNil(t, q.ApprovedAt())
		assert.Equal(t, now, *q.ApprovedAt())
	})

	t.Run("approval past validity expires instead", func(t *testing.T) {
		valid := time.Now().Add(-time.Hour)
		q, err := quote.NewQuote(uuid.New(), uuid.New(), 50, &valid, "")
		require.NoError(t, err)
		require.NoError(t, q.Send())

		assert.ErrorIs(t, q.Approve(time.Now()), quote.ErrExpired)
		assert.Equal(t, quote.StatusExpired, q.Status())
	})

	t.Run("convert only moves approved quotes", func(t *testing.T) {
		q := newDraft(t, 50)
		q.MarkConverted()
		assert.Equal(t, quote.StatusDraft, q.Status())

		require.NoError(t, q.Send())
		require.NoError(t, q.Approve(time.Now()))
		q.MarkConverted()
		assert.Equal(t, quote.StatusConverted, q.Status())
	})

	t.Run("deletable until approved", func(t *testing.T) {
		q := newDraft(t, 50)
		assert.True(t, q.CanDelete())
		require.NoError(t, q.Send())
		assert.True(t, q.CanDelete())
		require.NoError(t, q.Approve(time.Now()))
		assert.False(t, q.CanDelete())
	})
}

// TestQuote_RecalculationInvariant hammers a draft quote with a random edit
// sequence and checks that the derived amounts can always be rebuilt from the
// line items alone.
func TestQuote_RecalculationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	checkInvariants := func(t *testing.T, q *quote.Quote) {
		t.Helper()
		var subtotal int64
		for i, li := range q.LineItems() {
			assert.Equal(t, li.TotalPrice, int64(li.Quantity)*li.UnitPrice)
			assert.Equal(t, i, li.SortOrder)
			subtotal += li.TotalPrice
		}
		assert.Equal(t, subtotal, q.Subtotal())
		assert.Equal(t, subtotal, q.TotalAmount())
		wantDeposit := (subtotal*int64(q.DepositPercentage()) + 50) / 100
		assert.Equal(t, wantDeposit, q.DepositAmount())
	}

	for run := range 20 {
		t.Run(fmt.Sprintf("run %d", run), func(t *testing.T) {
			q := newDraft(t, 1+rng.Intn(100))

			for step := 0; step < 30; step++ {
				switch rng.Intn(3) {
				case 0:
					_, err := q.AddLineItem("item", 1+rng.Intn(9), int64(rng.Intn(10_000)))
					require.NoError(t, err)
				case 1:
					items := q.LineItems()
					if len(items) == 0 {
						continue
					}
					require.NoError(t, q.RemoveLineItem(items[rng.Intn(len(items))].ID))
				default:
					inputs := make([]quote.LineItemInput, rng.Intn(4))
					for i := range inputs {
						inputs[i] = quote.LineItemInput{
							Description: "replaced",
							Quantity:    1 + rng.Intn(5),
							UnitPrice:   int64(rng.Intn(20_000)),
						}
					}
					require.NoError(t, q.ReplaceLineItems(inputs))
				}
				checkInvariants(t, q)
			}
		})
	}
}
