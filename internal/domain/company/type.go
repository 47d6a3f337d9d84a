package company

// Type classifies a company. The string values are the wire representation.
type Type string

const (
	TypeSmallBusiness Type = "PYME"
	TypeCorporate     Type = "CORPORATIVA"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeSmallBusiness, TypeCorporate:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
