package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"mnsreestr/cmd/internal/contract"
	"mnsreestr/cmd/internal/utils/apierror"
)

type OrganizationService interface {
	GetOrganizationByINN(ctx context.Context, inn string) (*contract.RecordResponse, apierror.ErrorResponse)
	SearchOrganizations(ctx context.Context, req *contract.OrganizationSearchRequest) (*contract.SearchResponse, apierror.ErrorResponse)
}

type DefaultOrganizationRoute struct {
	OrganizationService OrganizationService
}

func NewOrganizationRoute(organizationService OrganizationService) *DefaultOrganizationRoute {
	return &DefaultOrganizationRoute{OrganizationService: organizationService}
}

func (o *DefaultOrganizationRoute) GetOrganization(c echo.Context) error {
	org, apierr := o.OrganizationService.GetOrganizationByINN(c.Request().Context(), pathParam(c, "inn"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, org)
}

// FindOrganizations serves the query string flavour of the name search.
func (o *DefaultOrganizationRoute) FindOrganizations(c echo.Context) error {
	req := contract.OrganizationSearchRequest{Name: c.QueryParam("query")}
	return o.searchOrganizations(c, &req)
}

func (o *DefaultOrganizationRoute) SearchOrganizations(c echo.Context) error {
	var req contract.OrganizationSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	return o.searchOrganizations(c, &req)
}

func (o *DefaultOrganizationRoute) searchOrganizations(c echo.Context, req *contract.OrganizationSearchRequest) error {
	orgs, apierr := o.OrganizationService.SearchOrganizations(c.Request().Context(), req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, orgs)
}
