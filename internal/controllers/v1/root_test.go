package v1_test

import (
	"net/http"

	v1 "github.com/centavos/backend/internal/controllers/v1"
	"github.com/centavos/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestV1Get() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), v1.Links{
		Users:         "http://example.com/v1/users",
		Transactions:  "http://example.com/v1/transactions",
		Categories:    "http://example.com/v1/categories",
		CategoryRules: "http://example.com/v1/category-rules",
		Goals:         "http://example.com/v1/goals",
		Reminders:     "http://example.com/v1/reminders",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestV1Options() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", recorder.Header().Get("allow"))
}
