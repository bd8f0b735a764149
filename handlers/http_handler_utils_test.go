package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/almroth/fasskollen/medications"
	"github.com/go-chi/chi/v5"
)

// ============================================================================
// FIXTURES
// ============================================================================

// defaultRecords covers the shapes handlers care about: multi-brand
// plain OTC, conditional OTC with a warning, and conditional OTC with
// only a note.
func defaultRecords() []medications.Record {
	return []medications.Record{
		{
			Key:    "paracetamol",
			Brands: []string{"Alvedon", "Panodil"},
			Use:    "Smärta och feber",
			Dose:   "500 mg vid behov, högst 4 g per dygn",
			OTC:    medications.OTCStatus{Kind: medications.OTCYes},
			ATC:    "N02BE01",
		},
		{
			Key:      "ibuprofen",
			Brands:   []string{"Ipren", "Brufen"},
			Use:      "Smärta, feber och inflammation",
			Dose:     "200-400 mg var 4-6 timme, högst 1200 mg per dygn",
			OTC:      medications.OTCStatus{Kind: medications.OTCConditional, Note: "Receptfritt upp till 400 mg"},
			Warnings: "Ska inte kombineras med andra NSAID-preparat",
			ATC:      "M01AE01",
		},
		{
			Key:    "omeprazol",
			Brands: []string{"Losec"},
			Use:    "Halsbränna och sura uppstötningar",
			Dose:   "20 mg en gång dagligen",
			OTC:    medications.OTCStatus{Kind: medications.OTCConditional, Note: "Receptfritt i förpackningar om högst 14 dagars behandling"},
			ATC:    "A02BC01",
		},
	}
}

func defaultTable() *medications.Table {
	return medications.MustNewTable(defaultRecords())
}

// ============================================================================
// MOCK BUILDERS
// ============================================================================

// MockCatalogBuilder assembles a MockCatalog, starting from the default
// table and the current time.
type MockCatalogBuilder struct {
	mock *MockCatalog
}

func NewMockCatalogBuilder() *MockCatalogBuilder {
	now := time.Now()
	return &MockCatalogBuilder{
		mock: &MockCatalog{
			table:           defaultTable(),
			builtAt:         now,
			serverStartTime: now,
		},
	}
}

func (b *MockCatalogBuilder) WithTable(table *medications.Table) *MockCatalogBuilder {
	b.mock.table = table
	return b
}

func (b *MockCatalogBuilder) Build() *MockCatalog {
	return b.mock
}

// MockValidatorBuilder assembles a MockQueryValidator that accepts
// everything unless given errors to fail with.
type MockValidatorBuilder struct {
	mock *MockQueryValidator
}

func NewMockValidatorBuilder() *MockValidatorBuilder {
	return &MockValidatorBuilder{mock: &MockQueryValidator{}}
}

func (b *MockValidatorBuilder) WithQueryError(err error) *MockValidatorBuilder {
	b.mock.queryErr = err
	return b
}

func (b *MockValidatorBuilder) WithATCError(err error) *MockValidatorBuilder {
	b.mock.atcErr = err
	return b
}

func (b *MockValidatorBuilder) Build() *MockQueryValidator {
	return b.mock
}

// MockHealthCheckerBuilder assembles a MockHealthChecker, healthy
// unless told otherwise.
type MockHealthCheckerBuilder struct {
	mock *MockHealthChecker
}

func NewMockHealthCheckerBuilder() *MockHealthCheckerBuilder {
	return &MockHealthCheckerBuilder{
		mock: &MockHealthChecker{
			status:     "healthy",
			data:       map[string]any{"records": 3},
			httpStatus: http.StatusOK,
		},
	}
}

func (b *MockHealthCheckerBuilder) WithStatus(status string, httpStatus int) *MockHealthCheckerBuilder {
	b.mock.status = status
	b.mock.httpStatus = httpStatus
	return b
}

func (b *MockHealthCheckerBuilder) WithData(data map[string]any) *MockHealthCheckerBuilder {
	b.mock.data = data
	return b
}

func (b *MockHealthCheckerBuilder) Build() *MockHealthChecker {
	return b.mock
}

// ============================================================================
// REQUEST HELPERS
// ============================================================================

// paramRequest builds a request carrying chi URL parameters, the way
// the router would hand it to a handler.
func paramRequest(method, path string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

// HTTPTestHelper wraps the recorder dance and the common response
// assertions.
type HTTPTestHelper struct {
	t *testing.T
}

func NewHTTPTestHelper(t *testing.T) *HTTPTestHelper {
	return &HTTPTestHelper{t: t}
}

func (h *HTTPTestHelper) ExecuteRequest(handler http.HandlerFunc, method, path string, urlParams map[string]string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler(rr, paramRequest(method, path, urlParams))
	return rr
}

// AssertJSONResponse checks the status and decodes the body into target.
func (h *HTTPTestHelper) AssertJSONResponse(resp *httptest.ResponseRecorder, wantStatus int, target any) {
	h.t.Helper()

	if resp.Code != wantStatus {
		h.t.Errorf("status = %d, want %d", resp.Code, wantStatus)
	}
	if resp.Body.Len() == 0 {
		h.t.Error("empty response body")
	}
	if err := json.Unmarshal(resp.Body.Bytes(), target); err != nil {
		h.t.Errorf("body is not valid JSON: %v", err)
	}
}

// AssertErrorResponse checks the status and the error envelope fields.
func (h *HTTPTestHelper) AssertErrorResponse(resp *httptest.ResponseRecorder, wantStatus int) {
	h.t.Helper()

	if resp.Code != wantStatus {
		h.t.Errorf("status = %d, want %d", resp.Code, wantStatus)
	}

	var envelope map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		h.t.Errorf("error body is not valid JSON: %v", err)
		return
	}
	if _, ok := envelope["message"]; !ok {
		h.t.Error("error envelope missing message field")
	}
	if _, ok := envelope["code"]; !ok {
		h.t.Error("error envelope missing code field")
	}
}

// AssertHealthResponse checks the health payload's status and sections.
func (h *HTTPTestHelper) AssertHealthResponse(resp *httptest.ResponseRecorder, wantStatus string) {
	h.t.Helper()

	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		h.t.Fatalf("health body is not valid JSON: %v", err)
	}

	if payload["status"] != wantStatus {
		h.t.Errorf("status = %v, want %s", payload["status"], wantStatus)
	}
	if _, ok := payload["data"]; !ok {
		h.t.Error("health payload missing data section")
	}
	if _, ok := payload["system"]; !ok {
		h.t.Error("health payload missing system section")
	}
}

// ============================================================================
// MOCKS
// ============================================================================

// MockCatalog serves a fixed table.
type MockCatalog struct {
	table           *medications.Table
	builtAt         time.Time
	serverStartTime time.Time
}

func (m *MockCatalog) Table() *medications.Table { return m.table }

func (m *MockCatalog) Records() []medications.Record { return m.table.Records() }

func (m *MockCatalog) Resolve(query string) (*medications.Record, medications.MatchTier, bool) {
	return m.table.Resolve(query)
}

func (m *MockCatalog) Fingerprint() string { return m.table.Fingerprint() }

func (m *MockCatalog) BuiltAt() time.Time { return m.builtAt }

func (m *MockCatalog) ServerStartTime() time.Time { return m.serverStartTime }

// MockQueryValidator rejects input only when told to, and records that
// it was consulted.
type MockQueryValidator struct {
	queryErr error
	atcErr   error

	validateQueryCalled bool
}

func (m *MockQueryValidator) ValidateQuery(input string) error {
	m.validateQueryCalled = true
	return m.queryErr
}

func (m *MockQueryValidator) ValidateATC(input string) (string, error) {
	if m.atcErr != nil {
		return "", m.atcErr
	}
	// Same canonical form as the real validator: trimmed and uppercased.
	return strings.ToUpper(strings.TrimSpace(input)), nil
}

// MockHealthChecker returns a canned verdict.
type MockHealthChecker struct {
	status     string
	data       map[string]any
	httpStatus int

	healthCheckCalled bool
}

func (m *MockHealthChecker) HealthCheck() (string, map[string]any, int) {
	m.healthCheckCalled = true
	return m.status, m.data, m.httpStatus
}
