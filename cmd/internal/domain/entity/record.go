package entity

type Kind string

const (
	KindOrganization Kind = "organization"
	KindEntrepreneur Kind = "entrepreneur"
)

// Record is a single registry entry as rendered by the MNS search page.
//
// Every field is kept exactly as the registry prints it (trimmed), the registry
// gives no guarantees about date or number formats.
type Record struct {
	Name              string
	INN               string
	RegistrationDate  string
	CertificateNumber string
	OGRN              string
	TaxpayerStatus    string
	Status            string
	Kind              Kind
}

// PersonName is the surname/given name/patronymic triple used by the
// entrepreneur search form. Only Surname is mandatory.
type PersonName struct {
	Surname    string
	Given      string
	Patronymic string
}
