//go:build unit

package order_test

import (
	"math/rand"
	"testing"

	"bakehouse/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	type testCase struct {
		name        string
		current     order.Status
		event       order.Event
		want        order.Status
		wantApplied bool
	}

	cases := []testCase{
		{
			name:        "checkout completes a pending payment",
			current:     order.StatusPendingPayment,
			event:       order.EventCheckoutCompleted,
			want:        order.StatusConfirmed,
			wantApplied: true,
		},
		{
			name:        "checkout expiry cancels a pending payment",
			current:     order.StatusPendingPayment,
			event:       order.EventCheckoutExpired,
			want:        order.StatusCancelled,
			wantApplied: true,
		},
		{
			name:        "deposit lands on pending payment",
			current:     order.StatusPendingPayment,
			event:       order.EventDepositPaid,
			want:        order.StatusDepositPaid,
			wantApplied: true,
		},
		{
			name:        "deposit webhook may outrun quote approval",
			current:     order.StatusInquiry,
			event:       order.EventDepositPaid,
			want:        order.StatusDepositPaid,
			wantApplied: true,
		},
		{
			name:        "balance confirms a deposit-paid order",
			current:     order.StatusDepositPaid,
			event:       order.EventBalancePaid,
			want:        order.StatusConfirmed,
			wantApplied: true,
		},
		{
			name:        "balance before deposit is a no-op",
			current:     order.StatusPendingPayment,
			event:       order.EventBalancePaid,
			want:        order.StatusPendingPayment,
			wantApplied: false,
		},
		{
			name:        "quote approval moves an inquiry to pending payment",
			current:     order.StatusInquiry,
			event:       order.EventQuoteApproved,
			want:        order.StatusPendingPayment,
			wantApplied: true,
		},
		{
			name:        "quote approval after deposit already landed is a no-op",
			current:     order.StatusDepositPaid,
			event:       order.EventQuoteApproved,
			want:        order.StatusDepositPaid,
			wantApplied: false,
		},
		{
			name:        "staff completes a confirmed order",
			current:     order.StatusConfirmed,
			event:       order.EventCompleted,
			want:        order.StatusCompleted,
			wantApplied: true,
		},
		{
			name:        "staff completes a deposit-paid order",
			current:     order.StatusDepositPaid,
			event:       order.EventCompleted,
			want:        order.StatusCompleted,
			wantApplied: true,
		},
		{
			name:        "cancel applies from any live status",
			current:     order.StatusInquiry,
			event:       order.EventCancelled,
			want:        order.StatusCancelled,
			wantApplied: true,
		},
		{
			name:        "completed absorbs further events",
			current:     order.StatusCompleted,
			event:       order.EventCancelled,
			want:        order.StatusCompleted,
			wantApplied: false,
		},
		{
			name:        "cancelled absorbs a late checkout completion",
			current:     order.StatusCancelled,
			event:       order.EventCheckoutCompleted,
			want:        order.StatusCancelled,
			wantApplied: false,
		},
		{
			name:        "duplicate checkout completion is a no-op",
			current:     order.StatusConfirmed,
			event:       order.EventCheckoutCompleted,
			want:        order.StatusConfirmed,
			wantApplied: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, applied := order.Transition(c.current, c.event)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.wantApplied, applied)
		})
	}
}

// Replaying a delivery log in any order, with any duplication, must land every
// run on the same final status. This is the property the conditional UPDATE in
// the repository leans on.
func TestTransition_ConvergesUnderReplay(t *testing.T) {
	apply := func(start order.Status, events []order.Event) order.Status {
		s := start
		for _, ev := range events {
			if next, ok := order.Transition(s, ev); ok {
				s = next
			}
		}
		return s
	}

	t.Run("wedding happy path survives redelivery of earlier events", func(t *testing.T) {
		log := []order.Event{
			order.EventQuoteApproved,
			order.EventDepositPaid,
			order.EventBalancePaid,
		}

		want := apply(order.StatusInquiry, log)
		require.Equal(t, order.StatusConfirmed, want)

		// Splice redeliveries of already-seen events anywhere into the log.
		// Relative order of first deliveries is what the provider guarantees
		// per object; duplicates can land at any point after the original.
		rng := rand.New(rand.NewSource(1))
		for range 50 {
			run := make([]order.Event, 0, len(log)*2)
			for i, ev := range log {
				run = append(run, ev)
				if rng.Intn(2) == 0 {
					run = append(run, log[rng.Intn(i+1)])
				}
			}
			assert.Equal(t, want, apply(order.StatusInquiry, run))
		}
	})

	t.Run("deposit outrunning quote approval still converges", func(t *testing.T) {
		got := apply(order.StatusInquiry, []order.Event{
			order.EventDepositPaid,
			order.EventQuoteApproved, // late, now a no-op
			order.EventBalancePaid,
		})
		assert.Equal(t, order.StatusConfirmed, got)
	})

	t.Run("cancellation is stable against late payment events", func(t *testing.T) {
		got := apply(order.StatusPendingPayment, []order.Event{
			order.EventCancelled,
			order.EventCheckoutCompleted,
			order.EventDepositPaid,
		})
		assert.Equal(t, order.StatusCancelled, got)
	})

	t.Run("double delivery of every event changes nothing", func(t *testing.T) {
		log := []order.Event{
			order.EventCheckoutCompleted, order.EventCheckoutCompleted,
			order.EventCompleted, order.EventCompleted,
		}
		assert.Equal(t, order.StatusCompleted, apply(order.StatusPendingPayment, log))
	})
}
