//go:build unit

package payment_test

import (
	"testing"
	"time"

	"bakehouse/internal/infra/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "whsec_test"

func TestVerifySignature(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	body := []byte(`{"id":"evt_1","type":"invoice.paid","created":1756728000,"data":{}}`)
	tolerance := 5 * time.Minute

	t.Run("round-trips a header produced by SignPayload", func(t *testing.T) {
		header := payment.SignPayload(body, secret, now)
		assert.NoError(t, payment.VerifySignature(body, header, secret, tolerance, now))
	})

	t.Run("tolerates bounded skew in both directions", func(t *testing.T) {
		header := payment.SignPayload(body, secret, now)
		assert.NoError(t, payment.VerifySignature(body, header, secret, tolerance, now.Add(4*time.Minute)))
		assert.NoError(t, payment.VerifySignature(body, header, secret, tolerance, now.Add(-4*time.Minute)))
	})

	t.Run("stale timestamp", func(t *testing.T) {
		header := payment.SignPayload(body, secret, now.Add(-10*time.Minute))
		err := payment.VerifySignature(body, header, secret, tolerance, now)
		assert.ErrorIs(t, err, payment.ErrSignatureExpired)
	})

	t.Run("tampered body", func(t *testing.T) {
		header := payment.SignPayload(body, secret, now)
		tampered := append([]byte(nil), body...)
		tampered[len(tampered)-2] = 'x'
		err := payment.VerifySignature(tampered, header, secret, tolerance, now)
		assert.ErrorIs(t, err, payment.ErrInvalidSignature)
	})

	t.Run("wrong secret", func(t *testing.T) {
		header := payment.SignPayload(body, "whsec_other", now)
		err := payment.VerifySignature(body, header, secret, tolerance, now)
		assert.ErrorIs(t, err, payment.ErrInvalidSignature)
	})

	t.Run("malformed headers", func(t *testing.T) {
		for _, header := range []string{
			"",
			"v1=deadbeef",
			"t=1756728000",
			"t=notanumber,v1=deadbeef",
		} {
			err := payment.VerifySignature(body, header, secret, tolerance, now)
			assert.ErrorIs(t, err, payment.ErrInvalidSignature, "header %q", header)
		}
	})

	t.Run("non-hex signature value", func(t *testing.T) {
		at := time.Unix(1756728000, 0)
		err := payment.VerifySignature(body, "t=1756728000,v1=zzzz", secret, tolerance, at)
		assert.ErrorIs(t, err, payment.ErrInvalidSignature)
	})
}

func TestParseEvent(t *testing.T) {
	t.Run("decodes the envelope and typed payloads", func(t *testing.T) {
		ev, err := payment.ParseEvent([]byte(`{
			"id": "evt_1",
			"type": "invoice.paid",
			"created": 1756728000,
			"data": {"invoice_id":"in_9","client_reference_id":"ord-1","purpose":"deposit","amount_paid":22500}
		}`))
		require.NoError(t, err)

		assert.Equal(t, "evt_1", ev.ID)
		assert.Equal(t, payment.EventInvoicePaid, ev.Type)

		inv, err := ev.Invoice()
		require.NoError(t, err)
		assert.Equal(t, "in_9", inv.InvoiceID)
		assert.Equal(t, "ord-1", inv.OrderID)
		assert.Equal(t, payment.PurposeDeposit, inv.Purpose)
		assert.Equal(t, int64(22500), inv.AmountPaid)
	})

	t.Run("checkout payload carries the client reference", func(t *testing.T) {
		ev, err := payment.ParseEvent([]byte(`{
			"id": "evt_2",
			"type": "checkout.session.completed",
			"created": 1756728000,
			"data": {"session_id":"cs_5","client_reference_id":"ord-2"}
		}`))
		require.NoError(t, err)

		cs, err := ev.CheckoutSession()
		require.NoError(t, err)
		assert.Equal(t, "cs_5", cs.SessionID)
		assert.Equal(t, "ord-2", cs.OrderID)
	})

	t.Run("rejects non-JSON and typeless envelopes", func(t *testing.T) {
		_, err := payment.ParseEvent([]byte("not json"))
		assert.ErrorIs(t, err, payment.ErrMalformedEnvelope)

		_, err = payment.ParseEvent([]byte(`{"id":"evt_3"}`))
		assert.ErrorIs(t, err, payment.ErrMalformedEnvelope)
	})
}
