package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// pageParams reads the page and page_size query parameters, applying
// defaults when absent. Non-numeric values are rejected here; range
// validation (page >= 1, page_size >= 1) belongs to the services.
func pageParams(c echo.Context) (page, pageSize int, err error) {
	page = defaultPage
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page must be an integer")
		}
	}

	pageSize = defaultPageSize
	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page_size must be an integer")
		}
	}

	return page, pageSize, nil
}
