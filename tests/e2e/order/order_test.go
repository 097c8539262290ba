//go:build e2e

package order_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"bakehouse/internal/handler/dto/request"
	"bakehouse/internal/handler/dto/response"
	"bakehouse/internal/handler/middleware"
	"bakehouse/internal/infra/payment"
	"bakehouse/tests/common/dbtest"
	"bakehouse/tests/common/httptest"
	"bakehouse/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL     = "/api/orders"
	loginURL      = "/api/auth/login"
	staffOrderURL = "/api/staff/orders/%s"
	webhookURL    = "/webhooks/payment"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func cookiesRequest(notes string) request.SubmitOrderRequest {
	pickupDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	pickupTime := "10:00"
	return request.SubmitOrderRequest{
		OrderType:     "cookies",
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
		PickupDate:    &pickupDate,
		PickupTime:    &pickupTime,
		FormData:      json.RawMessage(`{"dozens":2,"flavors":["sugar","lemon"]}`),
		Notes:         notes,
	}
}

func submitHeaders(key uuid.UUID) map[string]string {
	return map[string]string{
		middleware.TenantHeader: dbtest.TenantID.String(),
		"Idempotency-Key":       key.String(),
	}
}

func (s *OrderSuite) submitOrder(key uuid.UUID, req request.SubmitOrderRequest, wantStatus int) response.SubmitOrderResponse {
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, ordersURL, req, submitHeaders(key))
	var res response.SubmitOrderResponse
	httptest.AssertSuccessResponse(s.T(), w, wantStatus, &res)
	require.NotNil(s.T(), res.Order)
	return res
}

func (s *OrderSuite) loginAdmin() string {
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, loginURL,
		request.LoginRequest{Email: dbtest.AdminEmail, Password: dbtest.AdminPassword},
		map[string]string{middleware.TenantHeader: dbtest.TenantID.String()})
	var res response.LoginResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	require.NotEmpty(s.T(), res.Token)
	return res.Token
}

func (s *OrderSuite) fetchOrder(token string, id uuid.UUID) response.OrderResponse {
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet,
		fmt.Sprintf(staffOrderURL, id), nil, map[string]string{
			middleware.TenantHeader: dbtest.TenantID.String(),
			"Authorization":         "Bearer " + token,
		})
	var res response.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *OrderSuite) deliverWebhook(body []byte) *nethttptest.ResponseRecorder {
	sig := payment.SignPayload(body, s.Config.Payment.WebhookSecret, time.Now())
	return httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, webhookURL, body, map[string]string{
		"Content-Type":      "application/json",
		"Payment-Signature": sig,
	})
}

func checkoutCompletedBody(sessionID string, orderID uuid.UUID) []byte {
	return fmt.Appendf(nil,
		`{"id":"evt_1","type":"checkout.session.completed","created":%d,"data":{"session_id":%q,"client_reference_id":%q,"amount_paid":4500}}`,
		time.Now().Unix(), sessionID, orderID)
}

func (s *OrderSuite) TestSubmitOrder() {
	s.Run("fixed-price order gets a checkout link and replays idempotently", func() {
		key := uuid.New()
		first := s.submitOrder(key, cookiesRequest(""), http.StatusCreated)

		s.Equal("pending_payment", first.Order.Status)
		s.NotEmpty(first.CheckoutURL)
		s.Require().NotNil(first.Order.TotalAmount)
		s.Equal(int64(4500), *first.Order.TotalAmount)

		sessions := s.Gateway.Sessions()
		s.Require().Len(sessions, 1)
		s.Equal(first.Order.ID.String(), sessions[0].OrderID)

		// Same key, same payload: the stored result comes back, no new
		// order and no second checkout session.
		replay := s.submitOrder(key, cookiesRequest(""), http.StatusOK)
		s.Equal(first.Order.ID, replay.Order.ID)
		s.Len(s.Gateway.Sessions(), 1)
	})

	s.Run("same key with a different payload is rejected", func() {
		key := uuid.New()
		s.submitOrder(key, cookiesRequest(""), http.StatusCreated)

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, ordersURL,
			cookiesRequest("now with sprinkles"), submitHeaders(key))
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "different request")
	})

	s.Run("pickup inside the lead-time window is rejected", func() {
		req := cookiesRequest("")
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		req.PickupDate = &tomorrow

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, ordersURL, req, submitHeaders(uuid.New()))
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "lead-time")
	})

	s.Run("missing tenant header is rejected", func() {
		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, ordersURL,
			cookiesRequest(""), map[string]string{"Idempotency-Key": uuid.New().String()})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Tenant-ID")
	})
}

func (s *OrderSuite) TestPaymentWebhook() {
	s.Run("checkout completion confirms the order, redelivery included", func() {
		submitted := s.submitOrder(uuid.New(), cookiesRequest(""), http.StatusCreated)
		orderID := submitted.Order.ID

		sessions := s.Gateway.Sessions()
		s.Require().NotEmpty(sessions)
		sessionID := fmt.Sprintf("cs_test_%d", len(sessions))

		body := checkoutCompletedBody(sessionID, orderID)
		w := s.deliverWebhook(body)
		s.Equal(http.StatusOK, w.Code, w.Body.String())

		token := s.loginAdmin()
		confirmed := s.fetchOrder(token, orderID)
		s.Equal("confirmed", confirmed.Status)
		s.NotNil(confirmed.PaidAt)

		// The provider retries until it sees 200; a second delivery must
		// change nothing.
		w = s.deliverWebhook(body)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
		s.Equal("confirmed", s.fetchOrder(token, orderID).Status)
	})

	s.Run("tampered payload is rejected before processing", func() {
		submitted := s.submitOrder(uuid.New(), cookiesRequest(""), http.StatusCreated)

		body := checkoutCompletedBody("cs_test_1", submitted.Order.ID)
		sig := payment.SignPayload(body, "whsec_wrong", time.Now())
		w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, webhookURL, body, map[string]string{
			"Content-Type":      "application/json",
			"Payment-Signature": sig,
		})
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")

		token := s.loginAdmin()
		s.Equal("pending_payment", s.fetchOrder(token, submitted.Order.ID).Status)
	})
}
