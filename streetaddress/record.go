package streetaddress

// AddressRecord is the result of parsing one address string.
// A nil field was not found in the input; a non-nil pointer to "" was found but is empty.
type AddressRecord struct {
	House      *string `json:"house,omitempty"`
	StreetName *string `json:"street_name,omitempty"`
	StreetType *string `json:"street_type,omitempty"`
	StreetFull *string `json:"street_full,omitempty"`
	SuiteNum   *string `json:"suite_num,omitempty"`
	SuiteType  *string `json:"suite_type,omitempty"`
	Other      *string `json:"other,omitempty"`
}

// Field names one component of an AddressRecord.
type Field string

const (
	FieldHouse      Field = "house"
	FieldStreetName Field = "street_name"
	FieldStreetType Field = "street_type"
	FieldStreetFull Field = "street_full"
	FieldSuiteNum   Field = "suite_num"
	FieldSuiteType  Field = "suite_type"
	FieldOther      Field = "other"
)

// Fields lists the record components in display order.
func Fields() []Field {
	return []Field{
		FieldHouse,
		FieldStreetName,
		FieldStreetType,
		FieldStreetFull,
		FieldSuiteNum,
		FieldSuiteType,
		FieldOther,
	}
}

func (r AddressRecord) field(f Field) *string {
	switch f {
	case FieldHouse:
		return r.House
	case FieldStreetName:
		return r.StreetName
	case FieldStreetType:
		return r.StreetType
	case FieldStreetFull:
		return r.StreetFull
	case FieldSuiteNum:
		return r.SuiteNum
	case FieldSuiteType:
		return r.SuiteType
	case FieldOther:
		return r.Other
	}
	return nil
}

// Has reports whether the field was set by the parser.
func (r AddressRecord) Has(f Field) bool {
	return r.field(f) != nil
}

// Value returns the field value, or "" when it is unset.
func (r AddressRecord) Value(f Field) string {
	if p := r.field(f); p != nil {
		return *p
	}
	return ""
}

func stringPtr(s string) *string {
	return &s
}
