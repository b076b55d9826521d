package service

import (
	"context"
	"strings"

	"mnsreestr/cmd/internal/contract"
	"mnsreestr/cmd/internal/domain/entity"
	"mnsreestr/cmd/internal/utils"
	"mnsreestr/cmd/internal/utils/apierror"
)

// Search classifies a free-form query and returns every matching record,
// organizations and entrepreneurs mixed.
func (s *RegistryService) Search(ctx context.Context, req *contract.SearchRequest) (*contract.SearchResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	return toSearchResp(s.route(ctx, req.Query)), nil
}

func (s *RegistryService) route(ctx context.Context, query string) []entity.Record {
	// An INN is looked up as an organization first, the entrepreneur
	// registry is only consulted when no organization holds it.
	if utils.IsOnlyNumbers(query) {
		if org, ok := s.findOrganizationByINN(ctx, query); ok {
			return []entity.Record{org}
		}
		if ip, ok := s.findEntrepreneurByINN(ctx, query); ok {
			return []entity.Record{ip}
		}
		return nil
	}

	// Multi-word queries are tried as a person first. With no entrepreneur
	// match the full string still goes through the organization name search.
	if strings.Contains(query, " ") {
		if ips := s.findEntrepreneursByName(ctx, ParsePersonName(query)); len(ips) > 0 {
			return ips
		}
	}
	return s.findOrganizationsByName(ctx, query)
}

// ParsePersonName splits "Surname Given Patronymic". Tokens past the third are dropped.
func ParsePersonName(query string) entity.PersonName {
	var name entity.PersonName

	parts := strings.Fields(query)
	if len(parts) > 0 {
		name.Surname = parts[0]
	}
	if len(parts) > 1 {
		name.Given = parts[1]
	}
	if len(parts) > 2 {
		name.Patronymic = parts[2]
	}
	return name
}
