package contract

type RecordResponse struct {
	Name              string `json:"name"`
	INN               string `json:"inn"`
	RegistrationDate  string `json:"registration_date"`
	CertificateNumber string `json:"certificate_number"`
	OGRN              string `json:"ogrn"`
	TaxpayerStatus    string `json:"taxpayer_status"`
	Status            string `json:"status"`
	Type              string `json:"type"`
}

type SearchResponse struct {
	Results []*RecordResponse `json:"results"`
	Total   int               `json:"total"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

type OrganizationSearchRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type EntrepreneurSearchRequest struct {
	Lastname   string `json:"lastname" validate:"required,max=100"`
	Firstname  string `json:"firstname" validate:"omitempty,max=100"`
	Patronymic string `json:"patronymic" validate:"omitempty,max=100"`
}
