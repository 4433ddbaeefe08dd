package schema

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeGender maps free-text gender values onto the canonical categories.
// F/FEM/FEMALE and M/MALE collapse to their category; anything else passes
// through uppercased so unusual federation labels survive; empty becomes
// UNSPECIFIED.
func NormalizeGender(value string) Gender {
	v := strings.ToUpper(strings.TrimSpace(value))
	switch v {
	case "":
		return Unspecified
	case "F", "FEM", "FEMALE":
		return Female
	case "M", "MALE":
		return Male
	default:
		return Gender(v)
	}
}

// NormalizeAttemptResult collapses judged-result spellings onto the canonical
// vocabulary. Unknown or empty values mean the attempt has not been judged.
func NormalizeAttemptResult(value string) AttemptResult {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "good":
		return GoodLift
	case "bad", "miss":
		return BadLift
	default:
		return PendingLift
	}
}

// WeightClassBucket assigns a bodyweight to one of the fixed per-gender
// buckets. Lifters of unspecified gender fall into the female buckets, which
// matches how mixed divisions are benchmarked upstream. Empty label means the
// bodyweight is unknown.
func WeightClassBucket(bodyweightKg float64, gender Gender) string {
	if bodyweightKg <= 0 || math.IsNaN(bodyweightKg) {
		return ""
	}
	buckets := FemaleClassBuckets
	if gender == Male {
		buckets = MaleClassBuckets
	}
	for _, b := range buckets {
		if b.UpperKg > 0 && bodyweightKg <= b.UpperKg {
			return b.Label
		}
	}
	return buckets[len(buckets)-1].Label
}

// Round2 rounds to two decimal places, the precision of all point formulas.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to three decimal places, the precision of stored kilograms.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// PoundsToKg converts a weight from pounds into stored kilograms.
func PoundsToKg(lbs float64) float64 {
	return Round3(lbs * KgPerPound)
}

// DisplayWeight converts a stored kilogram value for display. It is a pure
// read-side transform; stored data stays in kilograms.
func DisplayWeight(kg float64, units UnitSystem) float64 {
	if units == LBSUnits {
		return kg * LbPerKg
	}
	return kg
}

// ParseFloatOrZero parses a numeric cell, degrading to the zero default on
// anything unparsable. This is the silent-default policy for messy meet data.
func ParseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// BestOfAttempts returns the heaviest attempt judged exactly good, or 0 when
// none succeeded.
func BestOfAttempts(attempts [3]Attempt) float64 {
	var best float64
	for _, a := range attempts {
		if a.Result == GoodLift && a.WeightKg > best {
			best = a.WeightKg
		}
	}
	return Round3(best)
}

// TitleCase uppercases the first letter of each space-separated word and
// lowercases the rest, e.g. "RAW" -> "Raw".
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
