package textnorm

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// PhoneFormatter rewrites Japanese phone numbers into hyphenated form.
// AreaCodes is the NTT area-code prefix table (leading 0 included) used
// for longest-prefix matching of general 10-digit landline numbers.
type PhoneFormatter struct {
	areaCodes []string // sorted longest-first
}

// NewPhoneFormatter builds a formatter from an area-code table. The table
// may be in any order; it is sorted longest-first internally.
func NewPhoneFormatter(areaCodes []string) *PhoneFormatter {
	codes := make([]string, len(areaCodes))
	copy(codes, areaCodes)
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return &PhoneFormatter{areaCodes: codes}
}

// Normalize formats every part and joins the distinct non-empty results
// with ";". A part that cannot be classified is kept as its digit-only
// form; nothing is ever dropped silently.
func (f *PhoneFormatter) Normalize(parts ...string) string {
	var out []string
	for _, p := range parts {
		if n := f.formatOne(p); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(lo.Uniq(out), ";")
}

func (f *PhoneFormatter) formatOne(raw string) string {
	d := digitsOnly(raw)
	if d == "" {
		return ""
	}

	// Mobile and IP phone: 070/080/090/050 followed by 8 digits. The 0800
	// toll-free prefix must be checked before the 080 mobile range.
	if len(d) == 11 {
		if d[:4] == "0800" {
			return d[:4] + "-" + d[4:7] + "-" + d[7:]
		}
		switch d[:3] {
		case "070", "080", "090", "050":
			return d[:3] + "-" + d[3:7] + "-" + d[7:]
		}
	}

	// Toll-free and navi-dial service prefixes.
	if len(d) == 10 {
		switch d[:4] {
		case "0120", "0570":
			return d[:4] + "-" + d[4:7] + "-" + d[7:]
		}
	}

	// General landline: 10 digits starting with 0, split by the area-code
	// table. The local part is always a 4-digit subscriber number at the
	// end; the exchange number takes whatever is left in the middle.
	if len(d) == 10 && d[0] == '0' {
		for _, code := range f.areaCodes {
			if len(code) < len(d) && strings.HasPrefix(d, code) {
				mid := d[len(code) : len(d)-4]
				if len(mid) == 0 {
					break
				}
				return code + "-" + mid + "-" + d[len(d)-4:]
			}
		}
		// No table hit: 03/06 are the only 2-digit codes.
		if d[:2] == "03" || d[:2] == "06" {
			return d[:2] + "-" + d[2:6] + "-" + d[6:]
		}
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	}

	// Unclassifiable: return the digit string unchanged.
	return d
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range NFKC(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
