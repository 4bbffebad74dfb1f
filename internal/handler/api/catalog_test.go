//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"spa-pos/internal/domain/session"
	"spa-pos/internal/handler/api"
	resdto "spa-pos/internal/handler/dto/response"
	"spa-pos/internal/pkg/errs"
	"spa-pos/internal/usecase/queries"
	"spa-pos/tests/common/builder"
	"spa-pos/tests/common/httptest"
	queriesmock "spa-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	catalog   *queriesmock.MockCatalogQueries
	staff     *queriesmock.MockStaffQueries
	customers *queriesmock.MockCustomerQueries
	sess      *session.Session
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.catalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.staff = queriesmock.NewMockStaffQueries(s.mockCtrl)
	s.customers = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.sess = builder.NewSessionBuilder().MustBuild()

	h := api.NewCatalogHandler(s.catalog, s.staff, s.customers)
	g := s.router.Group("", withSession(s.sess))
	g.GET("/catalog/services", h.ListServices)
	g.GET("/staff", h.ListStaff)
	g.GET("/staff/all", h.ListAllStaff)
	g.GET("/customers/:phone", h.FindCustomer)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CatalogHandlerTestSuite) TestListServices() {
	page := &queries.ServicePage{
		Items: []queries.ServiceView{
			{ID: "1", Name: "Swedish Massage", Category: "Massage", BasePrice: decimal.NewFromInt(1500), FinalPrice: decimal.NewFromInt(1200), DurationMinutes: 60},
		},
		CurrentPage: 2,
		LastPage:    4,
		Total:       38,
	}

	s.Run("success: query params are normalized", func() {
		want := queries.ListServicesParams{Page: 2, PerPage: queries.MaxPerPage, Search: "massage"}
		s.catalog.EXPECT().ListServices(gomock.Any(), s.sess, want).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/services?page=2&per_page=500&search=%20massage%20", nil, "token")

		var response resdto.ServicePageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal("1200.00", response.Items[0].FinalPrice)
		s.Equal("1500.00", response.Items[0].BasePrice)
		s.Equal(4, response.LastPage)
	})

	s.Run("success: defaults apply without params", func() {
		want := queries.ListServicesParams{Page: 1, PerPage: queries.DefaultPerPage}
		s.catalog.EXPECT().ListServices(gomock.Any(), s.sess, want).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/services", nil, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a non-numeric page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/services?page=abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 502 when the backend is unreachable", func() {
		unavailable := errs.WithUserMessage(errs.Mark(errs.New("dial"), errs.ErrTransportFailure), "Could not load services")
		s.catalog.EXPECT().ListServices(gomock.Any(), s.sess, gomock.Any()).Return(nil, unavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog/services", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Could not load services")
	})
}

func (s *CatalogHandlerTestSuite) TestStaff() {
	s.Run("success: therapists", func() {
		s.staff.EXPECT().ListStaff(gomock.Any(), s.sess).Return([]queries.StaffView{{ID: "4", Name: "Meera", Role: "therapist"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "token")

		var response []resdto.StaffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]resdto.StaffResponse{{ID: "4", Name: "Meera", Role: "therapist"}}, response)
	})

	s.Run("success: all staff renders an empty list as []", func() {
		s.staff.EXPECT().ListAllStaff(gomock.Any(), s.sess).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/all", nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 401 when the backend session expired", func() {
		expired := errs.WithUserMessage(errs.Mark(errs.New("401"), errs.ErrSessionExpired), "Session expired, please log in again")
		s.staff.EXPECT().ListStaff(gomock.Any(), s.sess).Return(nil, expired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Session expired")
	})
}

func (s *CatalogHandlerTestSuite) TestFindCustomer() {
	s.Run("success: known customer", func() {
		s.customers.EXPECT().FindByPhone(gomock.Any(), s.sess, "9876543210").
			Return(&queries.CustomerView{Exists: true, Name: "Asha", Phone: "9876543210"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/9876543210", nil, "token")

		var response resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Exists)
		s.Equal("Asha", response.Name)
	})

	s.Run("error: 422 for a malformed phone", func() {
		invalid := errs.WithUserMessage(errs.Mark(errs.New("phone"), errs.ErrValidation), "Phone must be 10 digits")
		s.customers.EXPECT().FindByPhone(gomock.Any(), s.sess, "123").Return(nil, invalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/123", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "10 digits")
	})
}
