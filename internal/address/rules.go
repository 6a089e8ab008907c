package address

import (
	"regexp"
	"strings"

	"github.com/kobune/eightatena/internal/textnorm"
)

// The cascade below runs on a block-notation-normalized string: digits are
// ASCII, lot separators are plain hyphens. First match wins. Each rule is
// kept small enough to test on its own.
var cascade = []rule{
	{"english-only", ruleEnglishOnly},
	{"facility-marker", ruleFacilityMarker},
	{"canonical-lot", ruleCanonicalLot},
	{"trailing-pair-guard", ruleTrailingPairGuard},
	{"three-lot-glued", ruleThreeLotGlued},
	{"two-lot-glued", ruleTwoLotGlued},
	{"lot-then-space", ruleLotThenSpace},
	{"formal-block", ruleFormalBlock},
	{"keyword-scan", ruleKeywordScan},
	{"floor-scan", ruleFloorScan},
}

// ruleEnglishOnly treats addresses without any Japanese character as
// overseas-style: the block/building heuristics below are meaningless for
// them, so the whole string becomes the building line.
func ruleEnglishOnly(_ *Splitter, s string) (Result, bool) {
	if !textnorm.IsJapaneseText(s) && textnorm.HasLatin(s) {
		return Result{Block: "", Building: s}, true
	}
	return Result{}, false
}

// ruleFacilityMarker splits at an inside-facility marker (ＮＨＫ内,
// 大学構内, ...). The marker itself belongs to the building side.
func ruleFacilityMarker(_ *Splitter, s string) (Result, bool) {
	if idx, ok := tokenIndex(s, facilityMarkers); ok {
		return Result{Block: s[:idx], Building: s[idx:]}, true
	}
	return Result{}, false
}

var lotThreeRE = regexp.MustCompile(`^(.*?[0-9]+-[0-9]+-[0-9]+)(-[0-9]+)?(.*)$`)

// ruleCanonicalLot handles the N-N-N(-N)? core pattern. A fourth hyphened
// number is almost always a room number. Trailing text joins the building
// side when it shows positive evidence of being one (leading whitespace
// before a non-digit, or a building/floor keyword anywhere in it); a
// building keyword glued straight onto the lot splits inside the base.
func ruleCanonicalLot(sp *Splitter, s string) (Result, bool) {
	m := lotThreeRE.FindStringSubmatch(s)
	if m == nil {
		return Result{}, false
	}
	base, room, tail := m[1], strings.TrimPrefix(m[2], "-"), m[3]

	if tail != "" && tailIsBuilding(sp, tail) {
		b := tail
		if room != "" {
			b = room + tail
		}
		return Result{Block: base, Building: b}, true
	}
	if idx, ok := sp.keywordIndex(base); ok && idx > 0 {
		b := base[idx:]
		if room != "" {
			b += "-" + room
		}
		return Result{Block: base[:idx], Building: b + tail}, true
	}
	if tail == "" && room != "" {
		return Result{Block: base, Building: room}, true
	}
	if tail == "" {
		return Result{Block: s, Building: ""}, true
	}
	return Result{}, false
}

func tailIsBuilding(sp *Splitter, tail string) bool {
	trimmed := strings.TrimLeft(tail, " \t　")
	if trimmed != tail && trimmed != "" && !isASCIIDigit(trimmed[0]) {
		return true
	}
	if sp.containsKeyword(tail) {
		return true
	}
	if containsAny(tail, floorRoomTokens) || containsAny(tail, facilityMarkers) {
		return true
	}
	return false
}

var trailingPairRE = regexp.MustCompile(`(^|[^0-9-])[0-9]+-[0-9]+$`)

// ruleTrailingPairGuard: an address ending in exactly N-N with nothing
// after it is a complete block address. Without this guard the glued-lot
// rules below would peel the final digits off as a bogus building
// fragment (the ...1184-31 defect class).
func ruleTrailingPairGuard(_ *Splitter, s string) (Result, bool) {
	if trailingPairRE.MatchString(s) {
		return Result{Block: s, Building: ""}, true
	}
	return Result{}, false
}

var threeLotGluedRE = regexp.MustCompile(`^(.*?[0-9]+-[0-9]+-[0-9]+)([^ \t　0-9-].*)$`)

// ruleThreeLotGlued: a three-number lot directly followed by text is a
// building name glued onto the address.
func ruleThreeLotGlued(_ *Splitter, s string) (Result, bool) {
	if m := threeLotGluedRE.FindStringSubmatch(s); m != nil {
		return Result{Block: m[1], Building: m[2]}, true
	}
	return Result{}, false
}

var twoLotGluedRE = regexp.MustCompile(`^(.*?[0-9]+-[0-9]+)([^ \t　0-9-].*)$`)

// ruleTwoLotGlued: same for two-number lots, but only on positive
// evidence: a non-digit remainder, a building or floor keyword, or a
// facility marker. Anything else stays an unsplit block address.
func ruleTwoLotGlued(sp *Splitter, s string) (Result, bool) {
	m := twoLotGluedRE.FindStringSubmatch(s)
	if m == nil {
		return Result{}, false
	}
	rest := m[2]
	if rest != "" && !isASCIIDigit(rest[0]) {
		return Result{Block: m[1], Building: rest}, true
	}
	if sp.containsKeyword(rest) || containsAny(rest, floorRoomTokens) || containsAny(rest, facilityMarkers) {
		return Result{Block: m[1], Building: rest}, true
	}
	return Result{}, false
}

var lotThenSpaceRE = regexp.MustCompile(`^(.*?[0-9]+(?:-[0-9]+)+)[ \t　]+(.+)$`)

var allDigitsHyphensRE = regexp.MustCompile(`^[0-9-]+$`)

// ruleLotThenSpace is the whitespace-delimited variant of the two glued
// rules: lot number, a run of spaces, then the building part. A
// two-number lot followed by bare digits ("1-2 345") is left alone — that
// is more likely a lot continuation than a building.
func ruleLotThenSpace(_ *Splitter, s string) (Result, bool) {
	m := lotThenSpaceRE.FindStringSubmatch(s)
	if m == nil {
		return Result{}, false
	}
	if strings.Count(m[1], "-") < 2 && allDigitsHyphensRE.MatchString(m[2]) {
		return Result{}, false
	}
	return Result{Block: m[1], Building: m[2]}, true
}

var formalBlockRE = regexp.MustCompile(`^(.*?[0-9]+丁目[0-9]+番(?:地)?[0-9]+号)(.+)$`)

// ruleFormalBlock splits right after a complete 丁目/番/号 sequence.
// Normally block-notation normalization has already rewritten these to
// hyphens; this catches leftovers.
func ruleFormalBlock(_ *Splitter, s string) (Result, bool) {
	if m := formalBlockRE.FindStringSubmatch(s); m != nil {
		return Result{Block: m[1], Building: m[2]}, true
	}
	return Result{}, false
}

// ruleKeywordScan is fallback A: split at the first building-keyword
// occurrence anywhere past the start of the string.
func ruleKeywordScan(sp *Splitter, s string) (Result, bool) {
	if idx, ok := sp.keywordIndex(s); ok && idx > 0 {
		return Result{Block: s[:idx], Building: s[idx:]}, true
	}
	return Result{}, false
}

// ruleFloorScan is fallback B: split at the first floor/room token past
// the start of the string.
func ruleFloorScan(_ *Splitter, s string) (Result, bool) {
	if idx, ok := tokenIndex(s, floorRoomTokens); ok && idx > 0 {
		return Result{Block: s[:idx], Building: s[idx:]}, true
	}
	return Result{}, false
}
