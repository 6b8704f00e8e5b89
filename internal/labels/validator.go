package labels

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
	"github.com/imrishuroy/go-dhl-labelflow/internal/region"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// ProductCatalog answers product/service compatibility questions.
type ProductCatalog interface {
	Supports(product string, service catalog.Service) bool
	LabelFormat(product, requested string) string
}

// ProductTable resolves Deutsche Post Internetmarke products.
type ProductTable interface {
	IsParent(code string) bool
	ParentCode(code string) string
	ProductServices(code string) []string
	ProductCode(parent string, services []string) (string, bool)
	ProductTotal(code string) decimal.Decimal
	AvailableProducts(destination string, weightGrams int, parentOnly bool) []string
}

// Settings is a read-only view of the carrier settings. method is the
// shipping method of the shipment and may override the global value.
type Settings interface {
	Setting(key, method string) string
	ReturnReceiver(country string) string
}

// Config is everything the validator needs besides its input.
type Config struct {
	Region        region.Region
	Catalog       ProductCatalog
	Internetmarke ProductTable
	Settings      Settings
}

// PostProcessor is called, in registration order, with every successful
// result. It may adjust the arguments in place.
type PostProcessor func(req Request, args *Arguments)

// Option configures a Validator.
type Option func(*Validator)

// WithPostProcessors registers callbacks run after successful validation.
func WithPostProcessors(p ...PostProcessor) Option {
	return func(v *Validator) {
		v.post = append(v.post, p...)
	}
}

// Validator normalizes and validates label arguments. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	cfg  Config
	post []PostProcessor
}

// New creates a Validator. A zero Region means base country DE.
func New(cfg Config, opts ...Option) *Validator {
	if cfg.Region.BaseCountry() == "" {
		cfg.Region = region.New("")
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.New(cfg.Region.BaseCountry())
	}
	if cfg.Internetmarke == nil {
		cfg.Internetmarke = catalog.NewInternetmarkeTable(nil)
	}
	if cfg.Settings == nil {
		cfg.Settings = noSettings{}
	}

	v := &Validator{cfg: cfg}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Result is either the normalized arguments or the collected errors.
type Result struct {
	Arguments *Arguments `json:"arguments,omitempty"`
	Errors    Errors     `json:"errors,omitempty"`
}

// Valid reports whether the result carries arguments.
func (r Result) Valid() bool {
	return len(r.Errors) == 0 && r.Arguments != nil
}

func newResult(args *Arguments, errs Errors) Result {
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Arguments: args}
}

// Validate runs the simple (DHL outbound) label validation.
func (v *Validator) Validate(s *shipment.Shipment, raw, defaults Args) (Result, error) {
	return v.ValidateRequest(Request{Kind: KindSimple, Shipment: s, Raw: raw, Defaults: defaults})
}

func (v *Validator) validateSimple(s *shipment.Shipment, a Args) (*Arguments, Errors, error) {
	if s == nil {
		return nil, nil, ErrMissingShipment
	}
	order := s.Order
	if order == nil {
		return nil, nil, missingOrder(s)
	}

	var errs Errors
	args := argumentsFrom(a)
	supports := func(svc catalog.Service) bool { return v.cfg.Catalog.Supports(args.Product, svc) }

	// unknown or unsupported services are dropped silently
	requested := args.Services
	args.Services = nil
	for _, svc := range requested {
		if catalog.IsService(string(svc)) && supports(svc) {
			args.Services.Add(svc)
		}
	}

	if args.HasInlayReturn {
		addr := shipment.Address{}
		if args.ReturnAddress != nil {
			addr = *args.ReturnAddress
		}
		if addr.Country == "" {
			addr.Country = v.cfg.Settings.Setting("return_address_country", "")
		}
		for _, f := range []struct{ value, title string }{
			{addr.Street, "Street"},
			{addr.Postcode, "Postcode"},
			{addr.City, "City"},
		} {
			if f.value == "" {
				errs.add(CodeReturnAddressField, fmt.Sprintf("%s of the return address is a mandatory field.", f.title))
			}
		}
		if addr.Name == "" && addr.Company == "" {
			errs.add(CodeReturnAddressName, "Please either add a return company or name.")
		}
		args.ReturnAddress = &addr
	} else {
		args.ReturnAddress = nil
	}

	if !args.CODTotal.IsZero() && !order.HasCODPayment {
		args.CODTotal = decimal.Zero
	}
	if !args.CODTotal.IsZero() && supports(catalog.CashOnDelivery) {
		args.Services.Add(catalog.CashOnDelivery)
	} else {
		args.Services.Remove(catalog.CashOnDelivery)
	}
	if args.CODTotal.IsZero() {
		args.CODIncludesAdditionalTotal = false
	}

	switch {
	case args.PreferredDay == "":
		args.Services.Remove(catalog.PreferredDay)
	case !isDate(args.PreferredDay):
		errs.add(CodePreferredDay, "Error while parsing preferred day.")
		args.Services.Remove(catalog.PreferredDay)
		args.PreferredDay = ""
	case supports(catalog.PreferredDay):
		args.Services.Add(catalog.PreferredDay)
	default:
		args.PreferredDay = ""
	}

	start, end := args.PreferredTimeStart, args.PreferredTimeEnd
	switch {
	case start == "" && end == "":
		args.Services.Remove(catalog.PreferredTime)
	case !isClock(start) || !isClock(end):
		errs.add(CodePreferredTime, "Error while parsing preferred time.")
		args.Services.Remove(catalog.PreferredTime)
		args.PreferredTimeStart, args.PreferredTimeEnd = "", ""
	case supports(catalog.PreferredTime):
		args.Services.Add(catalog.PreferredTime)
	default:
		args.PreferredTimeStart, args.PreferredTimeEnd = "", ""
	}

	args.PreferredLocation = presence(&args.Services, args.PreferredLocation, catalog.PreferredLocation, supports)
	args.PreferredNeighbor = presence(&args.Services, args.PreferredNeighbor, catalog.PreferredNeighbour, supports)

	if supports(catalog.VisualCheckOfAge) {
		switch age := normalizeAge(args.VisualMinAge); {
		case age != "" && isAge(age):
			args.VisualMinAge = age
			args.Services.Add(catalog.VisualCheckOfAge)
		default:
			if age != "" {
				errs.add(CodeVisualMinAge, "The visual min age check is invalid.")
			}
			args.Services.Remove(catalog.VisualCheckOfAge)
			args.VisualMinAge = ""
		}
	} else {
		args.VisualMinAge = ""
	}

	if args.Services.Has(catalog.ParcelOutletRouting) && !order.SupportsEmailNotification {
		args.Services.Remove(catalog.ParcelOutletRouting)
	}

	if supports(catalog.IdentCheck) {
		age := normalizeAge(args.IdentMinAge)
		args.IdentMinAge = age
		if age != "" && isAge(age) {
			args.Services.Add(catalog.IdentCheck)
		}
		if args.Services.Has(catalog.IdentCheck) {
			if age != "" && !isAge(age) {
				errs.add(CodeIdentMinAge, "The ident min age check is invalid.")
				args.IdentMinAge = ""
			}
			if args.IdentDateOfBirth != "" && !isDate(args.IdentDateOfBirth) {
				errs.add(CodeIdentDateOfBirth, "There was an error parsing the date of birth for the identity check.")
			}
			if args.IdentDateOfBirth == "" && args.IdentMinAge == "" {
				errs.add(CodeIdentMissing, "Either a minimum age or a date of birth must be added to the ident check.")
			}
		}
	} else {
		args.IdentMinAge = ""
		args.IdentDateOfBirth = ""
	}

	// named person delivery cannot be combined with an age check
	if args.Services.Has(catalog.VisualCheckOfAge) || args.Services.Has(catalog.IdentCheck) {
		args.Services.Remove(catalog.NamedPersonOnly)
	}

	if args.Duties != "" && !v.cfg.Region.IsCrossBorder(s.Country()) {
		args.Duties = ""
	}
	if args.Duties != "" && !IsDuty(args.Duties) {
		errs.add(CodeDuties, fmt.Sprintf("%s duties element does not exist.", args.Duties))
	}

	if args.LabelFormat != "" {
		args.LabelFormat = v.cfg.Catalog.LabelFormat(args.Product, args.LabelFormat)
	}

	return args, errs, nil
}

func presence(services *ServiceSet, value string, svc catalog.Service, supports func(catalog.Service) bool) string {
	if value != "" && supports(svc) {
		services.Add(svc)
		return value
	}
	services.Remove(svc)
	return ""
}

func missingOrder(s *shipment.Shipment) error {
	return fmt.Errorf("%w: shipment order #%s does not exist", ErrMissingOrder, s.OrderID)
}

// Duties lists the accepted delivery duty codes.
var Duties = map[string]string{
	"DDU": "Delivery Duty Unpaid",
	"DDP": "Delivery Duty Paid",
	"DXV": "Delivery Duty Paid (excl. VAT)",
	"DDX": "Delivery Duty Paid (excl. Duties, taxes and VAT)",
}

// IsDuty reports whether code is a known duty code.
func IsDuty(code string) bool {
	_, ok := Duties[code]
	return ok
}

// Minimum ages for visual and identity checks. "0" means no check.
const (
	AgeNone = "0"
	Age16   = "A16"
	Age18   = "A18"
)

func isAge(age string) bool {
	return age == Age16 || age == Age18
}

func normalizeAge(age string) string {
	if age == AgeNone {
		return ""
	}
	return age
}

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func isDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// isClock accepts HH:MM only; the layout alone would also take "9:30".
func isClock(s string) bool {
	if len(s) != len(clockLayout) {
		return false
	}
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

type noSettings struct{}

func (noSettings) Setting(string, string) string { return "" }
func (noSettings) ReturnReceiver(string) string  { return "" }
