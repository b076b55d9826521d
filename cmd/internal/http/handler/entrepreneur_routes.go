package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"mnsreestr/cmd/internal/contract"
	"mnsreestr/cmd/internal/utils/apierror"
)

type EntrepreneurService interface {
	GetEntrepreneurByINN(ctx context.Context, inn string) (*contract.RecordResponse, apierror.ErrorResponse)
	SearchEntrepreneurs(ctx context.Context, req *contract.EntrepreneurSearchRequest) (*contract.SearchResponse, apierror.ErrorResponse)
}

type DefaultEntrepreneurRoute struct {
	EntrepreneurService EntrepreneurService
}

func NewEntrepreneurRoute(entrepreneurService EntrepreneurService) *DefaultEntrepreneurRoute {
	return &DefaultEntrepreneurRoute{EntrepreneurService: entrepreneurService}
}

func (e *DefaultEntrepreneurRoute) GetEntrepreneur(c echo.Context) error {
	ip, apierr := e.EntrepreneurService.GetEntrepreneurByINN(c.Request().Context(), pathParam(c, "inn"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ip)
}

func (e *DefaultEntrepreneurRoute) FindEntrepreneurs(c echo.Context) error {
	req := contract.EntrepreneurSearchRequest{
		Lastname:   c.QueryParam("lastname"),
		Firstname:  c.QueryParam("firstname"),
		Patronymic: c.QueryParam("patronymic"),
	}
	return e.searchEntrepreneurs(c, &req)
}

func (e *DefaultEntrepreneurRoute) SearchEntrepreneurs(c echo.Context) error {
	var req contract.EntrepreneurSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	return e.searchEntrepreneurs(c, &req)
}

func (e *DefaultEntrepreneurRoute) searchEntrepreneurs(c echo.Context, req *contract.EntrepreneurSearchRequest) error {
	ips, apierr := e.EntrepreneurService.SearchEntrepreneurs(c.Request().Context(), req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, ips)
}
