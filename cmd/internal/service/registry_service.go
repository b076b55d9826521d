package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"mnsreestr/cmd/internal/contract"
	"mnsreestr/cmd/internal/domain/entity"
	"mnsreestr/cmd/internal/infrastructure/mnsra"
	"mnsreestr/cmd/internal/utils"
	"mnsreestr/cmd/internal/utils/apierror"
)

type RegistryClient interface {
	FindOrganizationByINN(ctx context.Context, inn string) (entity.Record, error)
	FindOrganizationsByName(ctx context.Context, name string) ([]entity.Record, error)
	FindEntrepreneurByINN(ctx context.Context, inn string) (entity.Record, error)
	FindEntrepreneursByName(ctx context.Context, name entity.PersonName) ([]entity.Record, error)
}

// RegistryService turns registry lookups into API responses. Upstream failures
// are logged and then reported exactly like an empty answer.
type RegistryService struct {
	Registry RegistryClient
	Validate *validator.Validate
}

func NewRegistryService(registry RegistryClient, validate *validator.Validate) *RegistryService {
	return &RegistryService{
		Registry: registry,
		Validate: validate,
	}
}

func (s *RegistryService) GetOrganizationByINN(ctx context.Context, inn string) (*contract.RecordResponse, apierror.ErrorResponse) {
	if apierr := s.validateINN(inn); apierr != nil {
		return nil, apierr
	}

	org, ok := s.findOrganizationByINN(ctx, inn)
	if !ok {
		return nil, apierror.OrganizationNotFoundError
	}
	return toRecordResp(org), nil
}

func (s *RegistryService) SearchOrganizations(ctx context.Context, req *contract.OrganizationSearchRequest) (*contract.SearchResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	return toSearchResp(s.findOrganizationsByName(ctx, req.Name)), nil
}

func (s *RegistryService) GetEntrepreneurByINN(ctx context.Context, inn string) (*contract.RecordResponse, apierror.ErrorResponse) {
	if apierr := s.validateINN(inn); apierr != nil {
		return nil, apierr
	}

	ip, ok := s.findEntrepreneurByINN(ctx, inn)
	if !ok {
		return nil, apierror.EntrepreneurNotFoundError
	}
	return toRecordResp(ip), nil
}

func (s *RegistryService) SearchEntrepreneurs(ctx context.Context, req *contract.EntrepreneurSearchRequest) (*contract.SearchResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	name := entity.PersonName{
		Surname:    req.Lastname,
		Given:      req.Firstname,
		Patronymic: req.Patronymic,
	}
	return toSearchResp(s.findEntrepreneursByName(ctx, name)), nil
}

func (s *RegistryService) validateINN(inn string) apierror.ErrorResponse {
	if err := s.Validate.Var(inn, "required,max=20,onlydigits"); err != nil {
		return apierror.InvalidINNError
	}
	return nil
}

func (s *RegistryService) findOrganizationByINN(ctx context.Context, inn string) (entity.Record, bool) {
	org, err := s.Registry.FindOrganizationByINN(ctx, inn)
	if err != nil {
		logLookupError(ctx, "organization by inn", inn, err)
		return entity.Record{}, false
	}
	return org, true
}

func (s *RegistryService) findEntrepreneurByINN(ctx context.Context, inn string) (entity.Record, bool) {
	ip, err := s.Registry.FindEntrepreneurByINN(ctx, inn)
	if err != nil {
		logLookupError(ctx, "entrepreneur by inn", inn, err)
		return entity.Record{}, false
	}
	return ip, true
}

func (s *RegistryService) findOrganizationsByName(ctx context.Context, name string) []entity.Record {
	orgs, err := s.Registry.FindOrganizationsByName(ctx, name)
	if err != nil {
		logLookupError(ctx, "organizations by name", name, err)
		return nil
	}
	return orgs
}

func (s *RegistryService) findEntrepreneursByName(ctx context.Context, name entity.PersonName) []entity.Record {
	ips, err := s.Registry.FindEntrepreneursByName(ctx, name)
	if err != nil {
		logLookupError(ctx, "entrepreneurs by name", name.Surname, err)
		return nil
	}
	return ips
}

func logLookupError(ctx context.Context, op, query string, err error) {
	if errors.Is(err, mnsra.ErrNotFound) {
		log.Debugf("[%s] registry has no %s %q", utils.RequestIDFrom(ctx), op, query)
		return
	}
	log.Warnf("[%s] registry lookup of %s %q failed: %v", utils.RequestIDFrom(ctx), op, query, err)
}

func toSearchResp(records []entity.Record) *contract.SearchResponse {
	results := make([]*contract.RecordResponse, len(records))
	for i, r := range records {
		results[i] = toRecordResp(r)
	}
	return &contract.SearchResponse{
		Results: results,
		Total:   len(results),
	}
}

func toRecordResp(r entity.Record) *contract.RecordResponse {
	return &contract.RecordResponse{
		Name:              r.Name,
		INN:               r.INN,
		RegistrationDate:  r.RegistrationDate,
		CertificateNumber: r.CertificateNumber,
		OGRN:              r.OGRN,
		TaxpayerStatus:    r.TaxpayerStatus,
		Status:            r.Status,
		Type:              string(r.Kind),
	}
}
