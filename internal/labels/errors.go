package labels

import (
	"errors"
	"strings"
)

// Structural precondition failures. They halt validation and are returned
// as Go errors, never as entries of Errors.
var (
	ErrMissingShipment = errors.New("labels: shipment is missing")
	ErrMissingOrder    = errors.New("labels: shipment order does not exist")
	ErrUnknownKind     = errors.New("labels: unknown label kind")
)

// Validation error codes.
const (
	CodeReturnAddressField  = "return_address_field_missing"
	CodeReturnAddressName   = "return_address_name_missing"
	CodePreferredDay        = "preferred_day_invalid"
	CodePreferredTime       = "preferred_time_invalid"
	CodeVisualMinAge        = "visual_min_age_invalid"
	CodeIdentMinAge         = "ident_min_age_invalid"
	CodeIdentDateOfBirth    = "ident_date_of_birth_invalid"
	CodeIdentMissing        = "ident_check_incomplete"
	CodeDuties              = "duties_invalid"
	CodeReceiverMissing     = "receiver_missing"
	CodeServicesUnavailable = "services_unavailable"
	CodeProductUnavailable  = "product_unavailable"
	CodeProductMissing      = "product_missing"
)

// Error is one field validation problem.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors collects validation problems in the order they were found.
type Errors []Error

func (e *Errors) add(code, message string) {
	*e = append(*e, Error{Code: code, Message: message})
}

// Has reports whether an entry with code exists.
func (e Errors) Has(code string) bool {
	for _, err := range e {
		if err.Code == code {
			return true
		}
	}
	return false
}

// Messages returns the messages in order.
func (e Errors) Messages() []string {
	out := make([]string, len(e))
	for i, err := range e {
		out[i] = err.Message
	}
	return out
}

func (e Errors) String() string {
	return strings.Join(e.Messages(), "; ")
}

// Codes returns the codes in order.
func (e Errors) Codes() []string {
	out := make([]string, len(e))
	for i, err := range e {
		out[i] = err.Code
	}
	return out
}
