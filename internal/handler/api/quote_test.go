//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"bakehouse/internal/domain/quote"
	"bakehouse/internal/handler/api"
	"bakehouse/internal/handler/middleware"
	"bakehouse/internal/infra"
	"bakehouse/internal/usecase"
	"bakehouse/tests/common/httptest"
	mock_usecase "bakehouse/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"bakehouse/internal/handler/dto/response"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockQuotes *mock_usecase.MockQuoteUsecase
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuotes = mock_usecase.NewMockQuoteUsecase(s.mockCtrl)

	handler := api.NewQuoteHandler(s.mockQuotes)
	s.router.GET("/api/quotes/:token", handler.ViewByToken)
	s.router.POST("/api/quotes/:token/approve", handler.Approve)
	s.router.POST("/api/staff/quotes/expire/sweep", middleware.RequireTenant(), handler.ExpireSweep)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

// sentQuote builds a quote as the customer link would find it.
func (s *QuoteHandlerTestSuite) sentQuote() *quote.Quote {
	q, err := quote.NewQuote(uuid.New(), uuid.New(), 50, nil, "")
	s.Require().NoError(err)
	s.Require().NoError(q.ReplaceLineItems([]quote.LineItemInput{
		{Description: "three-tier cake", Quantity: 1, UnitPrice: 60000},
	}))
	s.Require().NoError(q.Send())
	return q
}

func (s *QuoteHandlerTestSuite) TestViewByToken() {
	s.Run("success: customer sees amounts but never the raw token", func() {
		q := s.sentQuote()
		s.mockQuotes.EXPECT().GetByToken(gomock.Any(), q.ApprovalToken()).Return(q, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/"+q.ApprovalToken().String(), nil, "")

		var res response.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("sent", res.Status)
		s.Equal(int64(60000), res.TotalAmount)
		s.Equal(int64(30000), res.DepositAmount)
		s.NotContains(w.Body.String(), q.ApprovalToken().String())
	})

	s.Run("error: unknown token is a plain 404", func() {
		token := uuid.New()
		s.mockQuotes.EXPECT().GetByToken(gomock.Any(), token).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "quote not found"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/"+token.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})

	s.Run("error: malformed token never reaches the usecase", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "must be a UUID")
	})
}

func (s *QuoteHandlerTestSuite) TestApprove() {
	s.Run("success: approval returns the deposit invoice link", func() {
		q := s.sentQuote()
		s.Require().NoError(q.Approve(time.Now()))
		q.MarkConverted()

		s.mockQuotes.EXPECT().ApproveByToken(gomock.Any(), q.ApprovalToken()).
			Return(usecase.QuoteApprovalResult{Quote: q, DepositInvoiceURL: "https://invoice.test/in_1"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/quotes/"+q.ApprovalToken().String()+"/approve", nil, "")

		var res response.QuoteApprovalResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("https://invoice.test/in_1", res.DepositInvoiceURL)
		s.Require().NotNil(res.Quote)
		s.Equal("converted", res.Quote.Status)
	})

	s.Run("error: expired quote is 410", func() {
		token := uuid.New()
		s.mockQuotes.EXPECT().ApproveByToken(gomock.Any(), token).
			Return(usecase.QuoteApprovalResult{}, quote.ErrExpired)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/quotes/"+token.String()+"/approve", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusGone, "expired")
	})

	s.Run("error: draft quote and lost races are both 409", func() {
		for _, usecaseErr := range []error{quote.ErrNotSent, usecase.ErrQuoteNotApproved} {
			token := uuid.New()
			s.mockQuotes.EXPECT().ApproveByToken(gomock.Any(), token).
				Return(usecase.QuoteApprovalResult{}, usecaseErr)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/quotes/"+token.String()+"/approve", nil, "")
			httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not awaiting approval")
		}
	})
}

func (s *QuoteHandlerTestSuite) TestExpireSweep() {
	tenant := uuid.New()
	headers := map[string]string{middleware.TenantHeader: tenant.String()}

	s.Run("success: lapsed quotes are counted", func() {
		s.mockQuotes.EXPECT().ExpireStale(gomock.Any(), tenant).Return(int64(2), nil)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/staff/quotes/expire/sweep", nil, headers)

		var res map[string]int64
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(int64(2), res["quotes_expired"])
	})

	s.Run("error: missing tenant header", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/staff/quotes/expire/sweep", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Tenant-ID")
	})
}
