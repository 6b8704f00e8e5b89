package labels

import (
	"fmt"
	"strings"

	"github.com/imrishuroy/go-dhl-labelflow/internal/catalog"
	"github.com/imrishuroy/go-dhl-labelflow/internal/shipment"
)

// Kind is the label variant a request is validated as.
type Kind string

// Label kinds
const (
	KindSimple             Kind = "simple"
	KindReturn             Kind = "return"
	KindDeutschePost       Kind = "deutsche_post"
	KindDeutschePostReturn Kind = "deutsche_post_return"
	KindInlayReturn        Kind = "inlay_return"
)

// ParseKind maps a string onto a Kind. An empty string means simple.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindSimple, nil
	case KindSimple, KindReturn, KindDeutschePost, KindDeutschePostReturn, KindInlayReturn:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// KindFor picks the label kind matching the shipment's provider and type.
func KindFor(s *shipment.Shipment) Kind {
	dp := s.Provider == shipment.ProviderDeutschePost
	switch {
	case s.Type == shipment.TypeReturn && dp:
		return KindDeutschePostReturn
	case s.Type == shipment.TypeReturn:
		return KindReturn
	case dp:
		return KindDeutschePost
	default:
		return KindSimple
	}
}

// Request bundles one validation call. Interactive requests come from an
// operator and never fall back to a substitute Deutsche Post product.
type Request struct {
	Kind        Kind
	Shipment    *shipment.Shipment
	Raw         Args
	Defaults    Args
	Interactive bool
}

// ValidateRequest merges the request's raw arguments over its defaults and
// validates them according to the label kind. Field problems are reported
// in Result; the error is reserved for missing shipments or orders and
// unknown kinds.
func (v *Validator) ValidateRequest(req Request) (Result, error) {
	merged := Merge(req.Raw, req.Defaults)

	var (
		args *Arguments
		errs Errors
		err  error
	)

	switch req.Kind {
	case KindSimple, "":
		args, errs, err = v.validateSimple(req.Shipment, merged)
	case KindReturn, KindDeutschePostReturn:
		args, errs, err = v.validateReturn(req.Shipment, merged)
	case KindDeutschePost:
		args, errs, err = v.validateDeutschePost(req.Shipment, merged, req.Interactive)
	case KindInlayReturn:
		if req.Shipment == nil {
			return Result{}, ErrMissingShipment
		}
		args = argumentsFrom(merged)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
	if err != nil {
		return Result{}, err
	}

	if len(errs) == 0 {
		for _, p := range v.post {
			p(req, args)
		}
	}
	return newResult(args, errs), nil
}

func (v *Validator) validateReturn(s *shipment.Shipment, a Args) (*Arguments, Errors, error) {
	if s == nil {
		return nil, nil, ErrMissingShipment
	}

	var errs Errors
	args := argumentsFrom(a)
	args.Services = nil

	args.ReceiverSlug = sanitizeKey(args.ReceiverSlug)
	if args.ReceiverSlug == "" {
		errs.add(CodeReceiverMissing, "Receiver is missing or does not exist.")
	}
	return args, errs, nil
}

func (v *Validator) validateDeutschePost(s *shipment.Shipment, a Args, interactive bool) (*Arguments, Errors, error) {
	if s == nil {
		return nil, nil, ErrMissingShipment
	}
	if s.Order == nil {
		return nil, nil, missingOrder(s)
	}

	var errs Errors
	im := v.cfg.Internetmarke
	args := argumentsFrom(a)
	args.Services = nil

	if len(args.AdditionalServices) > 0 {
		code, ok := im.ProductCode(args.Product, args.AdditionalServices)
		if ok {
			args.Product = code
		} else {
			errs.add(CodeServicesUnavailable, "The services chosen are not available for the current product.")
		}
	}

	available := v.deutschePostProducts(s.Country(), weightGrams(args.Weight), false)

	if !contains(available, im.ParentCode(args.Product)) {
		if len(available) == 0 || interactive {
			errs.add(CodeProductUnavailable, "None of the selected Deutsche Post products is available for this shipment. Please verify the shipment data (e.g. weight).")
		} else {
			code := im.ParentCode(available[0])
			if len(args.AdditionalServices) > 0 {
				if child, ok := im.ProductCode(code, args.AdditionalServices); ok {
					code = child
				}
			}
			args.Product = code
		}
	}

	if args.Product != "" {
		args.StampTotal = im.ProductTotal(args.Product)
	} else {
		errs.add(CodeProductMissing, fmt.Sprintf("Deutsche Post product is missing for %s.", s.ID))
	}
	return args, errs, nil
}

// deutschePostProducts lists the Internetmarke products sold for country.
// EU destinations may use international products as well as the EU-only
// Warenpost range.
func (v *Validator) deutschePostProducts(country string, grams int, parentOnly bool) []string {
	im := v.cfg.Internetmarke
	switch {
	case v.cfg.Region.IsDomestic(country):
		return im.AvailableProducts(catalog.DestinationNational, grams, parentOnly)
	case v.cfg.Region.IsEU(country):
		out := im.AvailableProducts(catalog.DestinationInternational, grams, parentOnly)
		for _, code := range im.AvailableProducts(catalog.DestinationEU, grams, parentOnly) {
			if !contains(out, code) {
				out = append(out, code)
			}
		}
		return out
	default:
		return im.AvailableProducts(catalog.DestinationInternational, grams, parentOnly)
	}
}

// sanitizeKey lowercases s and keeps only [a-z0-9_-].
func sanitizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
