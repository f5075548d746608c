package entities

import "strings"

// Provider identifies a logistics partner. Values outside the known set are
// kept verbatim so callers can echo what they received.
type Provider string

const (
	ProviderA       Provider = "Provider A"
	ProviderB       Provider = "Provider B"
	GeneralPartners Provider = "General Partners"
)

var providerAliases = map[string]Provider{
	"provider a":       ProviderA,
	"providera":        ProviderA,
	"provider_a":       ProviderA,
	"provider b":       ProviderB,
	"providerb":        ProviderB,
	"provider_b":       ProviderB,
	"general partners": GeneralPartners,
	"generalpartners":  GeneralPartners,
	"general_partners": GeneralPartners,
}

// ParseProvider maps the names used by the pincode table and by API callers onto
// the canonical identifiers. Unknown names come back trimmed but otherwise as is.
func ParseProvider(raw string) Provider {
	name := strings.TrimSpace(raw)
	if p, ok := providerAliases[strings.ToLower(name)]; ok {
		return p
	}
	return Provider(name)
}

func (p Provider) String() string {
	return string(p)
}

func (p Provider) IsKnown() bool {
	switch p {
	case ProviderA, ProviderB, GeneralPartners:
		return true
	default:
		return false
	}
}
