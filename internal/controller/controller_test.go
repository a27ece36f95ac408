package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"swim-coach-be/internal/dto"
	"swim-coach-be/internal/pkg/serverutils"
	"swim-coach-be/pkg/catalog"
)

// stubPlanService records the last Generate call.
type stubPlanService struct {
	resp            *dto.GeneratePlanResponse
	err             error
	lastReq         *dto.GeneratePlanRequest
	lastIncludeMeta bool
}

func (s *stubPlanService) Generate(_ context.Context, req *dto.GeneratePlanRequest, includeMeta bool) (*dto.GeneratePlanResponse, error) {
	s.lastReq = req
	s.lastIncludeMeta = includeMeta
	return s.resp, s.err
}

// stubBrowseService records the last Browse call.
type stubBrowseService struct {
	browseResp  *dto.BrowsePlansResponse
	optionsResp *dto.FilterOptionsResponse
	err         error

	lastFilters   catalog.Filters
	lastSortBy    string
	lastSortOrder string
	lastPage      int
	lastPageSize  int
	optionsCalled bool
}

func (s *stubBrowseService) Browse(filters catalog.Filters, sortBy, sortOrder string, page, pageSize int) (*dto.BrowsePlansResponse, error) {
	s.lastFilters = filters
	s.lastSortBy = sortBy
	s.lastSortOrder = sortOrder
	s.lastPage = page
	s.lastPageSize = pageSize
	return s.browseResp, s.err
}

func (s *stubBrowseService) FilterOptions() (*dto.FilterOptionsResponse, error) {
	s.optionsCalled = true
	return s.optionsResp, s.err
}

// stubAuthService issues a fixed token for one accepted password.
type stubAuthService struct {
	enabled  bool
	password string
	token    string
}

func (s *stubAuthService) Enabled() bool { return s.enabled }

func (s *stubAuthService) Login(password string) (string, error) {
	if password != s.password {
		return "", serverutils.NewAuthError("Invalid password")
	}
	return s.token, nil
}

func (s *stubAuthService) Verify(token string) (bool, error) {
	return token == s.token, nil
}

// newTestApp wires an app the way the server does: error middleware first,
// then the routes under /api.
func newTestApp(register func(api fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	register(app.Group("/api"))
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}
