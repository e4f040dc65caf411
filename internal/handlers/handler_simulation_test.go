package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/dto"
	"github.com/cefinvest/invest_backend/internal/handlers"
	"github.com/cefinvest/invest_backend/internal/platform/config"
	"github.com/cefinvest/invest_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SimulationSvc ---
type MockSimulationService struct {
	mock.Mock
}

var _ portssvc.SimulationSvc = (*MockSimulationService)(nil)

func (m *MockSimulationService) Simulate(ctx context.Context, req dto.SimulationRequest) (*dto.SimulationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SimulationResponse), args.Error(1)
}

func (m *MockSimulationService) ListSimulations(ctx context.Context) ([]dto.SimulationHistoryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SimulationHistoryResponse), args.Error(1)
}

func (m *MockSimulationService) SimulationsByProductDay(ctx context.Context) ([]dto.SimulationByProductDayResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SimulationByProductDayResponse), args.Error(1)
}

// --- Mock RiskProfileSvc ---
type MockRiskProfileService struct {
	mock.Mock
}

var _ portssvc.RiskProfileSvc = (*MockRiskProfileService)(nil)

func (m *MockRiskProfileService) CalculateProfile(ctx context.Context, customerID int64) (domain.RiskAssessment, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(domain.RiskAssessment), args.Error(1)
}

// --- Mock CustomerSvc ---
type MockCustomerService struct {
	mock.Mock
}

var _ portssvc.CustomerSvc = (*MockCustomerService)(nil)

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Mock HistorySvc ---
type MockHistoryService struct {
	mock.Mock
}

var _ portssvc.HistorySvc = (*MockHistoryService)(nil)

func (m *MockHistoryService) ListCustomerHistory(ctx context.Context, customerID int64) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

type SimulationHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSimulation  *MockSimulationService
	mockRiskProfile *MockRiskProfileService
	mockCustomer    *MockCustomerService
	mockHistory     *MockHistoryService
	cfg             *config.Config
	token           string
}

func (suite *SimulationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockSimulation = new(MockSimulationService)
	suite.mockRiskProfile = new(MockRiskProfileService)
	suite.mockCustomer = new(MockCustomerService)
	suite.mockHistory = new(MockHistoryService)

	suite.cfg = &config.Config{
		JWTSecret:         "handler-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "investment-api",
		IsProduction:      true,
	}

	services := &portssvc.ServiceContainer{
		Simulation:  suite.mockSimulation,
		RiskProfile: suite.mockRiskProfile,
		Customer:    suite.mockCustomer,
		History:     suite.mockHistory,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, services, nil)

	token, err := utils.GenerateJWT("user", []string{"user"}, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *SimulationHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_Success() {
	expected := &dto.SimulationResponse{
		ValidatedProduct: dto.ValidatedProduct{ID: 1, Name: "CDB 100% CDI", Type: "CDB", AnnualReturnRate: 0.12, RiskLabel: "BAIXO"},
		Result:           dto.SimulationResult{FinalValue: 1120.00, EffectiveReturn: 0.12, TermMonths: 12},
		SimulatedAt:      time.Now(),
	}
	suite.mockSimulation.On("Simulate", mock.Anything, mock.MatchedBy(func(req dto.SimulationRequest) bool {
		return req.CustomerID == 10 && req.Amount == 1000 && req.TermMonths == 12
	})).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/simulations", gin.H{
		"customerId": 10,
		"amount":     1000,
		"termMonths": 12,
	})

	suite.Equal(http.StatusOK, w.Code)

	var got dto.SimulationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(expected.ValidatedProduct, got.ValidatedProduct)
	suite.Equal(expected.Result, got.Result)
	suite.mockSimulation.AssertExpectations(suite.T())
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_BindingFailure() {
	w := suite.doRequest(http.MethodPost, "/api/v1/simulations", gin.H{
		"customerId": 10,
		"amount":     -5,
		"termMonths": 12,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSimulation.AssertNotCalled(suite.T(), "Simulate")
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_ErrorMapping() {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"validation maps to 400", apperrors.ErrValidation, http.StatusBadRequest},
		{"not found maps to 404", apperrors.ErrNotFound, http.StatusNotFound},
		{"no match maps to 422", apperrors.ErrUnprocessable, http.StatusUnprocessableEntity},
		{"internal maps to 500", apperrors.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockSimulation.On("Simulate", mock.Anything, mock.Anything).Return(nil, tt.serviceErr).Once()

			w := suite.doRequest(http.MethodPost, "/api/v1/simulations", gin.H{
				"customerId": 10,
				"amount":     1000,
				"termMonths": 12,
			})

			suite.Equal(tt.wantStatus, w.Code)
		})
	}
}

func (suite *SimulationHandlerTestSuite) TestCreateSimulation_RequiresToken() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulations", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *SimulationHandlerTestSuite) TestListSimulations() {
	sims := []dto.SimulationHistoryResponse{
		{ID: 1, CustomerID: 10, Product: "CDB 100% CDI", AmountInvested: 1000, FinalValue: 1120, TermMonths: 12, SimulatedAt: time.Now()},
	}
	suite.mockSimulation.On("ListSimulations", mock.Anything).Return(sims, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/simulations", nil)

	suite.Equal(http.StatusOK, w.Code)

	var got []dto.SimulationHistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 1)
	suite.Equal("CDB 100% CDI", got[0].Product)
}

func (suite *SimulationHandlerTestSuite) TestGetCustomerRiskProfile() {
	assessment := domain.RiskAssessment{CustomerID: 10, Profile: "Conservative", Score: 40, Description: "Low risk tolerance, focused on capital preservation and liquidity."}
	suite.mockRiskProfile.On("CalculateProfile", mock.Anything, int64(10)).Return(assessment, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers/10/risk-profile", nil)

	suite.Equal(http.StatusOK, w.Code)

	var got dto.RiskProfileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("Conservative", got.Profile)
	suite.Equal(40, got.Score)
}

func (suite *SimulationHandlerTestSuite) TestGetCustomerRiskProfile_BadID() {
	w := suite.doRequest(http.MethodGet, "/api/v1/customers/abc/risk-profile", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRiskProfile.AssertNotCalled(suite.T(), "CalculateProfile")
}

func (suite *SimulationHandlerTestSuite) TestListCustomers() {
	customers := []domain.Customer{
		{ID: 1, RiskProfile: domain.ProfileConservative, CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, RiskProfile: domain.ProfileUndefined, CreatedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockCustomer.On("ListCustomers", mock.Anything).Return(customers, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers", nil)

	suite.Equal(http.StatusOK, w.Code)

	var got []dto.CustomerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 2)
	suite.Equal(int64(1), got[0].ID)
	suite.Equal("CONSERVATIVE", got[0].RiskProfile)
	suite.Equal("UNDEFINED", got[1].RiskProfile)
}

func (suite *SimulationHandlerTestSuite) TestGetCustomerHistory() {
	entries := []domain.HistoryEntry{
		{ID: 1, CustomerID: 10, Type: "CDB", Amount: 5000, ReturnRate: 0.12, Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockHistory.On("ListCustomerHistory", mock.Anything, int64(10)).Return(entries, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/customers/10/history", nil)

	suite.Equal(http.StatusOK, w.Code)

	var got []dto.HistoryEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 1)
	suite.Equal("CDB", got[0].Type)
}

func TestSimulationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SimulationHandlerTestSuite))
}
