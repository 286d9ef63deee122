package langs

// Package langs holds the per-backend language vocabularies. Each backend
// speaks its own code scheme; codes are never converted between schemes.

// Scheme identifies a backend's language-code vocabulary.
type Scheme string

const (
	// SchemeNLLB is the script-qualified NLLB-200 vocabulary ("eng_Latn").
	SchemeNLLB Scheme = "nllb"
	// SchemeLocale is the short ISO/BCP-47 locale vocabulary ("en", "de-DE").
	SchemeLocale Scheme = "locale"
)

// Table returns the name->code mapping for a scheme, or nil if unknown.
func Table(s Scheme) map[string]string {
	switch s {
	case SchemeNLLB:
		return NLLB
	case SchemeLocale:
		return Locale
	default:
		return nil
	}
}

// Codes returns the set of valid codes for a scheme.
func Codes(s Scheme) map[string]struct{} {
	t := Table(s)
	if t == nil {
		return nil
	}
	out := make(map[string]struct{}, len(t))
	for _, code := range t {
		out[code] = struct{}{}
	}
	return out
}
