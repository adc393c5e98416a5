package httptransport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"enrolld/internal/account/secrets"
	accountservice "enrolld/internal/account/service"
	accountstore "enrolld/internal/account/store"
	applicationservice "enrolld/internal/application/service"
	applicationstore "enrolld/internal/application/store"
	institutionservice "enrolld/internal/institution/service"
	institutionstore "enrolld/internal/institution/store"
	"enrolld/internal/platform/logger"
	"enrolld/internal/platform/metrics"
)

type RouterSuite struct {
	suite.Suite
	handler http.Handler
}

func (s *RouterSuite) SetupTest() {
	dir := s.T().TempDir()
	log := logger.NewNop()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	accounts := accountstore.NewFileStore(dir, log)
	s.handler = NewRouter(Deps{
		Logger:       log,
		Metrics:      m,
		Registry:     registry,
		Accounts:     accountservice.NewRegistry(accounts, secrets.NewHasher(bcrypt.MinCost), log, m),
		Institutions: institutionservice.NewCatalog(institutionstore.NewFileStore(dir, log), log),
		Applications: applicationservice.NewLedger(applicationstore.NewFileStore(dir, log), accounts, log, m),
	})
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterSuite) TestMetricsEndpoint() {
	rec := s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterSuite) TestInstitutionCRUD() {
	rec := s.do(http.MethodPost, "/api/institutions", map[string]any{
		"id":   999,
		"name": "Alpha U",
		"type": "Public",
		"colleges": []map[string]string{
			{"name": "Engineering"},
		},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Equal(int64(1), created.ID, "caller-supplied id is ignored")

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/institutions/%d", created.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/institutions?college=Engineering", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":1`)

	rec = s.do(http.MethodGet, "/api/institutions?college=Arts", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":0`)

	rec = s.do(http.MethodPut, fmt.Sprintf("/api/institutions/%d", created.ID), map[string]any{
		"id":   777,
		"name": "Alpha University",
		"type": "National",
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"id":1`)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/institutions/%d", created.ID), nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/institutions/%d", created.ID), nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestApplicationFlow() {
	rec := s.do(http.MethodPost, "/api/signup", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "pw123",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	submission := map[string]string{
		"applicantEmail": "ana@x.com",
		"fullName":       "Ana Silva",
		"birthDate":      "2001-04-12",
		"nationalId":     "29811223344556",
		"address":        "12 Nile St, Cairo",
		"phoneNumber":    "+20100000000",
		"total":          "95.5",
		"paymentMethod":  "card",
		"college":        "Engineering",
	}
	rec = s.do(http.MethodPost, "/api/applications", submission)
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"applicationId":1`)

	// Email casing differs from the account: forbidden.
	submission["applicantEmail"] = "ANA@X.COM"
	rec = s.do(http.MethodPost, "/api/applications", submission)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/applications/count?email=ana@x.com", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"count":1`)

	rec = s.do(http.MethodGet, "/api/applications/count", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, "/api/applications/1", nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, "/api/applications/1", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}
