package catalog

// Service is a bookable add-on for a DHL product.
type Service string

// DHL services
const (
	PreferredTime       Service = "PreferredTime"
	PreferredLocation   Service = "PreferredLocation"
	PreferredNeighbour  Service = "PreferredNeighbour"
	PreferredDay        Service = "PreferredDay"
	VisualCheckOfAge    Service = "VisualCheckOfAge"
	Personally          Service = "Personally"
	NoNeighbourDelivery Service = "NoNeighbourDelivery"
	NamedPersonOnly     Service = "NamedPersonOnly"
	Premium             Service = "Premium"
	AdditionalInsurance Service = "AdditionalInsurance"
	BulkyGoods          Service = "BulkyGoods"
	IdentCheck          Service = "IdentCheck"
	CashOnDelivery      Service = "CashOnDelivery"
	ParcelOutletRouting Service = "ParcelOutletRouting"
	GoGreen             Service = "GoGreen"
)

var allServices = []Service{
	PreferredTime,
	PreferredLocation,
	PreferredNeighbour,
	PreferredDay,
	VisualCheckOfAge,
	Personally,
	NoNeighbourDelivery,
	NamedPersonOnly,
	Premium,
	AdditionalInsurance,
	BulkyGoods,
	IdentCheck,
	CashOnDelivery,
	ParcelOutletRouting,
	GoGreen,
}

var internationalServices = []Service{
	Premium,
	GoGreen,
	AdditionalInsurance,
}

var preferredServices = []Service{
	PreferredTime,
	PreferredLocation,
	PreferredNeighbour,
	PreferredDay,
}

// warenpostServices is the carrier-imposed subset bookable with V62WP.
var warenpostServices = []Service{
	PreferredTime,
	PreferredLocation,
	PreferredNeighbour,
	PreferredDay,
	ParcelOutletRouting,
	GoGreen,
}

var knownServices = func() map[Service]struct{} {
	m := make(map[Service]struct{}, len(allServices))
	for _, s := range allServices {
		m[s] = struct{}{}
	}
	return m
}()

// Services returns the full service vocabulary in its canonical order.
func Services() []Service { return clone(allServices) }

// InternationalServices returns the services bookable with international products.
func InternationalServices() []Service { return clone(internationalServices) }

// PreferredServices returns the preferred-delivery services.
func PreferredServices() []Service { return clone(preferredServices) }

// IsService reports whether s belongs to the service vocabulary.
func IsService(s string) bool {
	_, ok := knownServices[Service(s)]
	return ok
}

func clone(in []Service) []Service {
	out := make([]Service, len(in))
	copy(out, in)
	return out
}
