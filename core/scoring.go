// Package core has the data normalization and scoring pipeline: point
// formulas, schema normalization, ranking and percentile benchmarks.
package core

import (
	"math"

	"github.com/powertrackhq/powertrack/schema"
)

// Dots computes DOTS points from a total and bodyweight in kilograms.
// Zero or missing inputs and unknown genders yield exactly 0.0, which callers
// must read as "unscored" rather than a valid score.
func Dots(totalKg, bodyweightKg float64, gender schema.Gender) float64 {
	if totalKg == 0 || bodyweightKg == 0 {
		return 0
	}

	var params []float64
	switch gender {
	case schema.Male:
		params = []float64{-307.75076, 24.0900756, -0.1918759221, 7.391293e-4, -1.093e-6}
	case schema.Female:
		params = []float64{-57.96288, 13.6175032, -0.1126655495, 5.158568e-4, -1.0706e-6}
	default:
		return 0
	}

	coeff := polyCoefficient(500.0, bodyweightKg, params)
	return schema.Round2(totalKg * coeff)
}

// IPFGL computes IPF GL points. The denominator is an exponential decay in
// bodyweight with gender-specific constants; a zero denominator yields 0.0.
func IPFGL(totalKg, bodyweightKg float64, gender schema.Gender) float64 {
	if totalKg == 0 || bodyweightKg == 0 {
		return 0
	}

	var a, b, c float64
	switch gender {
	case schema.Male:
		a, b, c = 1199.72839, 1025.18162, 0.009210
	case schema.Female:
		a, b, c = 610.32796, 1045.59282, 0.03048
	default:
		return 0
	}

	denominator := a - b*math.Exp(-c*bodyweightKg)
	if denominator == 0 {
		return 0
	}
	return schema.Round2(totalKg * 100.0 / denominator)
}

// Glossbrenner computes Glossbrenner points: the average of a Wilks-style
// polynomial coefficient and a gender-specific secondary curve (Schwartz for
// men, Malone for women), with a linear form above the heavyweight cutoffs
// (153.05 kg male / 106.3 kg female).
func Glossbrenner(totalKg, bodyweightKg float64, gender schema.Gender) float64 {
	if totalKg == 0 || bodyweightKg == 0 {
		return 0
	}

	var coeff float64
	switch gender {
	case schema.Male:
		if bodyweightKg < 153.05 {
			coeff = (schwartz(bodyweightKg) + wilksCoefficient(bodyweightKg, schema.Male)) / 2.0
		} else {
			const (
				a = -0.000821668402557
				b = 0.676940740094416
			)
			coeff = (schwartz(bodyweightKg) + a*bodyweightKg + b) / 2.0
		}
	case schema.Female:
		if bodyweightKg < 106.3 {
			coeff = (malone(bodyweightKg) + wilksCoefficient(bodyweightKg, schema.Female)) / 2.0
		} else {
			const (
				a = -0.000313738002024
				b = 0.852664892884785
			)
			coeff = (malone(bodyweightKg) + a*bodyweightKg + b) / 2.0
		}
	default:
		return 0
	}

	return schema.Round2(totalKg * coeff)
}

// AllPoints computes the three point formulas for a single lifter.
func AllPoints(totalKg, bodyweightKg float64, gender schema.Gender) (dots, ipf, gloss float64) {
	dots = Dots(totalKg, bodyweightKg, gender)
	ipf = IPFGL(totalKg, bodyweightKg, gender)
	gloss = Glossbrenner(totalKg, bodyweightKg, gender)
	return dots, ipf, gloss
}

// polyCoefficient evaluates dividend / sum(params[i] * weight^i), the shared
// polynomial shape of the DOTS and Wilks denominators. A zero denominator
// yields 0.0.
func polyCoefficient(dividend, weight float64, params []float64) float64 {
	var denominator float64
	for i, p := range params {
		denominator += p * math.Pow(weight, float64(i))
	}
	if denominator == 0 {
		return 0
	}
	return dividend / denominator
}

// schwartz is the men's secondary curve: a degree-6 polynomial below 126 kg
// and stepped linear segments above, with bodyweight clamped to [40, 166].
func schwartz(bodyweightKg float64) float64 {
	bw := math.Min(math.Max(bodyweightKg, 40.0), 166.0)
	if bw <= 126 {
		x0 := 0.631926e1
		x1 := 0.262349e0 * bw
		x2 := 0.511550e-2 * math.Pow(bw, 2)
		x3 := 0.519738e-4 * math.Pow(bw, 3)
		x4 := 0.267626e-6 * math.Pow(bw, 4)
		x5 := 0.540132e-9 * math.Pow(bw, 5)
		x6 := 0.728875e-13 * math.Pow(bw, 6)
		return x0 - x1 + x2 - x3 + x4 - x5 - x6
	}
	if bw <= 136 {
		return 0.5210 - 0.0012*(bw-125.0)
	}
	if bw <= 146 {
		return 0.5090 - 0.0011*(bw-135.0)
	}
	if bw <= 156 {
		return 0.4980 - 0.0010*(bw-145.0)
	}
	return 0.4879 - 0.00088185*(bw-155.0)
}

// malone is the women's secondary curve, a power law with a 29.24 kg floor.
func malone(bodyweightKg float64) float64 {
	bw := math.Max(bodyweightKg, 29.24)
	const (
		a = 106.011586323613
		b = -1.293027130579051
		c = 0.322935585328304
	)
	return a*math.Pow(bw, b) + c
}

// wilksCoefficient evaluates the classic Wilks polynomial for either gender.
func wilksCoefficient(bodyweightKg float64, gender schema.Gender) float64 {
	var params []float64
	switch gender {
	case schema.Male:
		params = []float64{-216.0475144, 16.2606339, -0.002388645, -0.00113732, 7.01863e-6, -1.291e-8}
	case schema.Female:
		params = []float64{594.31747775582, -27.23842536447, 0.82112226871, -0.00930733913, 4.731582e-5, -9.054e-8}
	default:
		return 0
	}
	return polyCoefficient(500.0, bodyweightKg, params)
}
