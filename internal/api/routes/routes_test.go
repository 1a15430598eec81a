package routes

import (
	"bytes"
	"net/http"
	"path/filepath"
	"testing"

	"foundation-registry/internal/config"
	"foundation-registry/internal/database"
	"foundation-registry/internal/logger"
	"foundation-registry/internal/service"
	"foundation-registry/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RoutesTestSuite drives the full router against a SQLite file
type RoutesTestSuite struct {
	suite.Suite
	db        *gorm.DB
	httpSuite *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupTest() {
	logger.Setup("error", &bytes.Buffer{})

	db, err := database.Initialize(database.DriverSQLite, filepath.Join(suite.T().TempDir(), "routes.db"), nil)
	suite.Require().NoError(err)
	suite.db = db

	cfg := &config.Config{
		StrictFields:   true,
		AllowedOrigins: []string{"http://localhost:3000"},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router = SetupRoutes(db, cfg)
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.NoError(database.Close(suite.db))
	logger.Setup("info", nil)
}

func createBody(taxID string) map[string]interface{} {
	return map[string]interface{}{
		"name":                  "Fundação Teste",
		"tax_id":                taxID,
		"email":                 "contato@teste.org",
		"phone":                 "11999999999",
		"supported_institution": "Instituição X",
	}
}

func (suite *RoutesTestSuite) TestFoundationLifecycle() {
	t := suite.T()

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/foundations", createBody("27.865.757/0001-02"))
	var created service.FoundationResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, testutils.DefaultTaxID, created.TaxID)

	// same CNPJ, unformatted
	recorder = suite.httpSuite.MakeRequest("POST", "/api/v1/foundations", createBody(testutils.DefaultTaxID))
	testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "CNPJ already registered")

	recorder = suite.httpSuite.MakeRequest("GET", "/api/v1/foundations/27.865.757-0001-02", nil)
	var fetched service.FoundationResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	update := createBody("")
	delete(update, "tax_id")
	update["name"] = "Fundação Renomeada"
	recorder = suite.httpSuite.MakeRequest("PUT", "/api/v1/foundations/"+testutils.DefaultTaxID, update)
	var updated service.FoundationResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &updated)
	assert.Equal(t, "Fundação Renomeada", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	recorder = suite.httpSuite.MakeRequest("GET", "/api/v1/foundations", nil)
	var list service.FoundationListResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &list)
	assert.Equal(t, 1, list.Total)

	recorder = suite.httpSuite.MakeRequest("DELETE", "/api/v1/foundations/"+testutils.DefaultTaxID, nil)
	var removed service.DeleteFoundationResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &removed)
	assert.True(t, removed.Removed)

	recorder = suite.httpSuite.MakeRequest("DELETE", "/api/v1/foundations/"+testutils.DefaultTaxID, nil)
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &removed)
	assert.False(t, removed.Removed)

	recorder = suite.httpSuite.MakeRequest("GET", "/api/v1/foundations/"+testutils.DefaultTaxID, nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "foundation not found")
}

func (suite *RoutesTestSuite) TestInvalidCNPJ() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/foundations", createBody("27865757000103"))
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "inform a valid CNPJ")

	recorder = suite.httpSuite.MakeRequest("GET", "/api/v1/foundations/abc", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "inform a valid CNPJ")
}

func (suite *RoutesTestSuite) TestValidateEndpoint() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/cnpj/11444777000161/validate", nil)

	var response service.TaxIDValidationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.Valid)
	assert.Equal(suite.T(), "11.444.777/0001-61", response.Formatted)
}

func (suite *RoutesTestSuite) TestHealthAndMetrics() {
	recorder := suite.httpSuite.MakeRequest("GET", "/health", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	suite.httpSuite.MakeRequest("POST", "/api/v1/foundations", createBody(testutils.DefaultTaxID))

	recorder = suite.httpSuite.MakeRequest("GET", "/metrics", nil)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(suite.T(), body, `foundation_registry_operations_total{operation="create",outcome="success"} 1`)
	assert.Contains(suite.T(), body, "foundation_registry_http_request_duration_seconds")
}

func (suite *RoutesTestSuite) TestRequestIDHeader() {
	recorder := suite.httpSuite.MakeRequest("GET", "/health/live", nil)
	assert.NotEmpty(suite.T(), recorder.Header().Get("X-Request-ID"))
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
