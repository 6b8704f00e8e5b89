package labels

import "github.com/imrishuroy/go-dhl-labelflow/internal/shipment"

// NewRequest prepares a Request from transport input. An empty kind is
// derived from the shipment; nil defaults are built from settings.
func (v *Validator) NewRequest(kind string, s *shipment.Shipment, raw, defaults Args, interactive bool) (Request, error) {
	if s == nil {
		return Request{}, ErrMissingShipment
	}

	k := KindFor(s)
	if kind != "" {
		parsed, err := ParseKind(kind)
		if err != nil {
			return Request{}, err
		}
		k = parsed
	}

	if defaults == nil {
		d, err := v.Defaults(k, s)
		if err != nil {
			return Request{}, err
		}
		defaults = d
	}

	return Request{
		Kind:        k,
		Shipment:    s,
		Raw:         raw,
		Defaults:    defaults,
		Interactive: interactive,
	}, nil
}
