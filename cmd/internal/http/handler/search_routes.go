package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"mnsreestr/cmd/internal/contract"
	"mnsreestr/cmd/internal/utils/apierror"
)

type SearchService interface {
	Search(ctx context.Context, req *contract.SearchRequest) (*contract.SearchResponse, apierror.ErrorResponse)
}

type DefaultSearchRoute struct {
	SearchService SearchService
}

func NewSearchRoute(searchService SearchService) *DefaultSearchRoute {
	return &DefaultSearchRoute{SearchService: searchService}
}

func (s *DefaultSearchRoute) SearchByPath(c echo.Context) error {
	req := contract.SearchRequest{Query: pathParam(c, "query")}
	return s.search(c, &req)
}

func (s *DefaultSearchRoute) Search(c echo.Context) error {
	var req contract.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	return s.search(c, &req)
}

func (s *DefaultSearchRoute) search(c echo.Context, req *contract.SearchRequest) error {
	resp, apierr := s.SearchService.Search(c.Request().Context(), req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
