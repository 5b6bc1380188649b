package domain

import "strings"

// Carrier identifies a parcel delivery company inferred from the shape of a
// tracking number.
type Carrier string

const (
	CarrierUPS     Carrier = "ups"
	CarrierUSPS    Carrier = "usps"
	CarrierDHL     Carrier = "dhl"
	CarrierFedEx   Carrier = "fedex"
	CarrierUnknown Carrier = "unknown"
)

// Upper returns the carrier tag in the uppercase form used on the wire
// (e.g. "UPS").
func (c Carrier) Upper() string {
	return strings.ToUpper(string(c))
}

// ParseCarrier maps a configuration string to a Carrier. Unrecognized values
// map to CarrierUnknown.
func ParseCarrier(s string) Carrier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ups":
		return CarrierUPS
	case "usps":
		return CarrierUSPS
	case "dhl":
		return CarrierDHL
	case "fedex":
		return CarrierFedEx
	default:
		return CarrierUnknown
	}
}

// DetectCarrier guesses the carrier for a tracking number from its prefix and
// length. Rules are evaluated in order, first match wins; numbers matching no
// rule yield the given fallback. The heuristic performs no checksum or format
// validation, so ambiguous real-world formats (e.g. 10-digit non-DHL numbers)
// are misclassified.
func DetectCarrier(trackingNumber string, fallback Carrier) Carrier {
	switch {
	case strings.HasPrefix(trackingNumber, "1Z"):
		return CarrierUPS
	case strings.HasPrefix(trackingNumber, "940"), strings.HasPrefix(trackingNumber, "93"):
		return CarrierUSPS
	case strings.HasPrefix(trackingNumber, "DHL"), len(trackingNumber) == 10:
		return CarrierDHL
	case strings.HasPrefix(trackingNumber, "FEDEX"), len(trackingNumber) == 12:
		return CarrierFedEx
	default:
		return fallback
	}
}
