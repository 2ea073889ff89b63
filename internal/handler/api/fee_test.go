//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"manga-cafe-billing/internal/domain/fee"
	"manga-cafe-billing/internal/domain/plan"
	"manga-cafe-billing/internal/handler/api"
	resdto "manga-cafe-billing/internal/handler/dto/response"
	"manga-cafe-billing/internal/handler/middleware"
	"manga-cafe-billing/internal/pkg/config"
	"manga-cafe-billing/internal/pkg/errs"
	"manga-cafe-billing/internal/usecase"
	"manga-cafe-billing/tests/common/builder"
	"manga-cafe-billing/tests/common/httptest"
	"manga-cafe-billing/tests/common/testutil"
	usecasemock "manga-cafe-billing/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	plansURL = "/api/plans"
	quoteURL = "/api/fees/quote"
)

type FeeHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockFeeUseCase
	handler  *api.FeeHandler
}

func (s *FeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockFeeUseCase(s.mockCtrl)
	s.handler = api.NewFeeHandler(s.mockUC, config.NewTestConfig())

	s.router.GET(plansURL, s.handler.ListPlans)
	s.router.POST(quoteURL, s.handler.Quote)
}

func (s *FeeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFeeHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeeHandlerTestSuite))
}

// ================================================================================
// TestListPlans
// ================================================================================

func (s *FeeHandlerTestSuite) TestListPlans() {
	s.Run("success: returns all plans in order", func() {
		s.mockUC.EXPECT().ListPlans(gomock.Any()).Return(plan.All()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, plansURL, nil)

		var body []resdto.PlanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 4)
		s.Equal("regular_1hour", body[0].ID)
		s.Equal(int64(500), body[0].BasePrice)
		s.Equal(8, body[3].IncludedHours)
	})
}

// ================================================================================
// TestQuote
// ================================================================================

// compares instants and wall-clock hours instead of *time.Location pointers
type stayMatcher struct {
	want usecase.QuoteParams
}

func sameStay(want usecase.QuoteParams) gomock.Matcher {
	return stayMatcher{want: want}
}

func (m stayMatcher) Matches(x any) bool {
	got, ok := x.(usecase.QuoteParams)
	if !ok {
		return false
	}
	return got.PlanID == m.want.PlanID &&
		got.CheckIn.Equal(m.want.CheckIn) && got.CheckIn.Hour() == m.want.CheckIn.Hour() &&
		got.CheckOut.Equal(m.want.CheckOut) && got.CheckOut.Hour() == m.want.CheckOut.Hour()
}

func (m stayMatcher) String() string {
	return fmt.Sprintf("stay %s %s -> %s", m.want.PlanID,
		m.want.CheckIn.Format(time.RFC3339), m.want.CheckOut.Format(time.RFC3339))
}

type testCaseQuote struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
	expectMsg  string
}

func (s *FeeHandlerTestSuite) TestQuote() {
	b := builder.NewQuoteBuilder()
	reqBody := b.BuildRequestDTO()
	quote, err := b.BuildQuote()
	s.Require().NoError(err)

	s.Run("success: passes parsed params and returns the quote", func() {
		s.mockUC.EXPECT().Quote(gomock.Any(), sameStay(b.BuildParams())).Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, quoteURL, reqBody)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(quote.ID, body.ID)
		s.Equal("2025-06-04T17:25:00+09:00", body.IssuedAt)
		s.Equal("pack_3hour", body.Plan.ID)
		s.Equal(25, body.ExtensionMinutes)
		s.Equal(int64(300), body.ExtensionFee)
		s.Equal(int64(1100), body.TotalExcludingTax)
		s.Equal(int64(1210), body.TotalIncludingTax)
		s.Require().Len(body.Blocks, 3)
		s.Equal("17:20-17:25", body.Blocks[2].Period)
		s.False(body.Blocks[2].Night)
	})

	s.Run("success: RFC3339 timestamps keep their offset", func() {
		utc := builder.NewQuoteBuilder().WithStay(
			time.Date(2025, 6, 4, 5, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 4, 8, 25, 0, 0, time.UTC),
		)
		s.mockUC.EXPECT().Quote(gomock.Any(), sameStay(utc.BuildParams())).Return(quote, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("checkIn", "2025-06-04T05:00:00Z"),
			testutil.Field("checkOut", "2025-06-04T08:25:00Z"),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, quoteURL, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []testCaseQuote{
			{name: "missing field: planId", mutate: testutil.Field("planId", nil), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
			{name: "missing field: checkIn", mutate: testutil.Field("checkIn", nil), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
			{name: "missing field: checkOut", mutate: testutil.Field("checkOut", nil), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
			{name: "empty planId", mutate: testutil.Field("planId", ""), expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
			{name: "unparseable checkIn", mutate: testutil.Field("checkIn", "yesterday"), expectCode: http.StatusBadRequest, expectMsg: "Invalid timestamp"},
			{name: "unparseable checkOut", mutate: testutil.Field("checkOut", "2025-13-01 00:00:00"), expectCode: http.StatusBadRequest, expectMsg: "Invalid timestamp"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, quoteURL, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on invalid JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, quoteURL, `{"planId":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request on unknown plan", func() {
		planErr := errs.Wrapf(fee.ErrInvalidPlan, "unknown plan %q", "invalid_course")
		s.mockUC.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, planErr).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("planId", "invalid_course"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, quoteURL, body)

		res := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid plan")
		s.Contains(res.Detail, "invalid_course")
	})

	s.Run("error: 422 Unprocessable Entity when check-out is not after check-in", func() {
		intervalErr := errs.Wrapf(fee.ErrInvalidInterval, "check-out is not after check-in")
		s.mockUC.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, intervalErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, quoteURL, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid stay interval")
	})

	s.Run("error: 500 Internal Server Error on unexpected failure", func() {
		s.mockUC.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, quoteURL, reqBody)
		res := httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.Nil(res.Detail)
	})
}
