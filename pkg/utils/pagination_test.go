package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, query string) PaginationParams {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/plants?"+query, nil)
	return GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
}

func TestGetPaginationParams(t *testing.T) {
	cases := []struct {
		name   string
		query  string
		expect PaginationParams
	}{
		{"defaults", "", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"explicit", "page=3&limit=10", PaginationParams{Page: 3, PageSize: 10, Offset: 20}},
		{"negative page", "page=-1", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"oversized limit", "limit=500", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
		{"garbage input", "page=abc&limit=xyz", PaginationParams{Page: 1, PageSize: 20, Offset: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, paramsFor(t, tc.query))
		})
	}
}
