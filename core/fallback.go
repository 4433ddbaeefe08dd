package core

import "github.com/powertrackhq/powertrack/schema"

// recordEntry is one class row of a record book, keyed by lift.
type recordEntry map[schema.Lift]float64

// Current IPF world records per weight class, raw SBD. Updated by hand after
// world championships.
var ipfWorldRecordsMen = map[string]recordEntry{
	"59":   {schema.SquatLift: 250.0, schema.BenchLift: 165.0, schema.DeadliftLift: 300.0, schema.TotalLift: 695.0},
	"66":   {schema.SquatLift: 272.5, schema.BenchLift: 185.0, schema.DeadliftLift: 310.0, schema.TotalLift: 745.0},
	"74":   {schema.SquatLift: 310.0, schema.BenchLift: 217.5, schema.DeadliftLift: 357.5, schema.TotalLift: 860.0},
	"83":   {schema.SquatLift: 327.5, schema.BenchLift: 235.0, schema.DeadliftLift: 370.0, schema.TotalLift: 900.0},
	"93":   {schema.SquatLift: 350.0, schema.BenchLift: 246.0, schema.DeadliftLift: 400.0, schema.TotalLift: 950.0},
	"105":  {schema.SquatLift: 380.0, schema.BenchLift: 260.0, schema.DeadliftLift: 410.0, schema.TotalLift: 1015.0},
	"120":  {schema.SquatLift: 415.0, schema.BenchLift: 280.0, schema.DeadliftLift: 415.5, schema.TotalLift: 1050.0},
	"120+": {schema.SquatLift: 450.0, schema.BenchLift: 300.0, schema.DeadliftLift: 430.0, schema.TotalLift: 1105.0},
}

var ipfWorldRecordsWomen = map[string]recordEntry{
	"47":  {schema.SquatLift: 175.0, schema.BenchLift: 102.0, schema.DeadliftLift: 215.0, schema.TotalLift: 461.5},
	"52":  {schema.SquatLift: 182.5, schema.BenchLift: 107.5, schema.DeadliftLift: 227.5, schema.TotalLift: 500.0},
	"57":  {schema.SquatLift: 200.0, schema.BenchLift: 120.0, schema.DeadliftLift: 242.5, schema.TotalLift: 540.0},
	"63":  {schema.SquatLift: 220.0, schema.BenchLift: 135.0, schema.DeadliftLift: 260.0, schema.TotalLift: 590.0},
	"69":  {schema.SquatLift: 235.0, schema.BenchLift: 145.0, schema.DeadliftLift: 275.0, schema.TotalLift: 630.0},
	"76":  {schema.SquatLift: 250.0, schema.BenchLift: 155.0, schema.DeadliftLift: 290.0, schema.TotalLift: 670.0},
	"84":  {schema.SquatLift: 270.0, schema.BenchLift: 165.0, schema.DeadliftLift: 313.0, schema.TotalLift: 715.0},
	"84+": {schema.SquatLift: 290.0, schema.BenchLift: 175.0, schema.DeadliftLift: 330.0, schema.TotalLift: 755.0},
}

// USAPL American records, approximate.
var usaplAmericanRecordsMen = map[string]recordEntry{
	"59":   {schema.SquatLift: 242.5, schema.BenchLift: 160.0, schema.DeadliftLift: 287.5, schema.TotalLift: 667.5},
	"66":   {schema.SquatLift: 265.0, schema.BenchLift: 180.0, schema.DeadliftLift: 305.0, schema.TotalLift: 730.0},
	"74":   {schema.SquatLift: 300.0, schema.BenchLift: 210.0, schema.DeadliftLift: 345.0, schema.TotalLift: 835.0},
	"83":   {schema.SquatLift: 320.0, schema.BenchLift: 230.0, schema.DeadliftLift: 365.0, schema.TotalLift: 890.0},
	"93":   {schema.SquatLift: 342.5, schema.BenchLift: 240.0, schema.DeadliftLift: 390.0, schema.TotalLift: 935.0},
	"105":  {schema.SquatLift: 370.0, schema.BenchLift: 255.0, schema.DeadliftLift: 405.0, schema.TotalLift: 995.0},
	"120":  {schema.SquatLift: 405.0, schema.BenchLift: 275.0, schema.DeadliftLift: 410.0, schema.TotalLift: 1035.0},
	"120+": {schema.SquatLift: 440.0, schema.BenchLift: 295.0, schema.DeadliftLift: 420.0, schema.TotalLift: 1080.0},
}

var usaplAmericanRecordsWomen = map[string]recordEntry{
	"47":  {schema.SquatLift: 167.5, schema.BenchLift: 95.0, schema.DeadliftLift: 205.0, schema.TotalLift: 445.0},
	"52":  {schema.SquatLift: 177.5, schema.BenchLift: 102.5, schema.DeadliftLift: 220.0, schema.TotalLift: 485.0},
	"57":  {schema.SquatLift: 192.5, schema.BenchLift: 115.0, schema.DeadliftLift: 235.0, schema.TotalLift: 525.0},
	"63":  {schema.SquatLift: 212.5, schema.BenchLift: 130.0, schema.DeadliftLift: 252.5, schema.TotalLift: 575.0},
	"69":  {schema.SquatLift: 227.5, schema.BenchLift: 140.0, schema.DeadliftLift: 267.5, schema.TotalLift: 615.0},
	"76":  {schema.SquatLift: 242.5, schema.BenchLift: 150.0, schema.DeadliftLift: 282.5, schema.TotalLift: 652.5},
	"84":  {schema.SquatLift: 262.5, schema.BenchLift: 160.0, schema.DeadliftLift: 305.0, schema.TotalLift: 695.0},
	"84+": {schema.SquatLift: 280.0, schema.BenchLift: 170.0, schema.DeadliftLift: 320.0, schema.TotalLift: 735.0},
}

// fallbackCuts is a frozen percentile snapshot for one lift in one class,
// used when no live reference dataset is loaded.
type fallbackCuts struct {
	Median float64
	Top25  float64
	Top10  float64
}

// fallbackPercentiles is a legacy OpenIPF snapshot of raw SBD cut points,
// keyed by gender then class bucket then lift.
var fallbackPercentiles = map[schema.Gender]map[string]map[schema.Lift]fallbackCuts{
	schema.Female: {
		"47": {
			schema.SquatLift:    {Median: 115, Top25: 130, Top10: 145},
			schema.BenchLift:    {Median: 70, Top25: 80, Top10: 90},
			schema.DeadliftLift: {Median: 135, Top25: 150, Top10: 165},
			schema.TotalLift:    {Median: 320, Top25: 355, Top10: 390},
		},
		"52": {
			schema.SquatLift:    {Median: 130, Top25: 145, Top10: 162},
			schema.BenchLift:    {Median: 75, Top25: 85, Top10: 95},
			schema.DeadliftLift: {Median: 150, Top25: 170, Top10: 185},
			schema.TotalLift:    {Median: 360, Top25: 395, Top10: 430},
		},
		"57": {
			schema.SquatLift:    {Median: 140, Top25: 160, Top10: 180},
			schema.BenchLift:    {Median: 80, Top25: 90, Top10: 102},
			schema.DeadliftLift: {Median: 165, Top25: 185, Top10: 205},
			schema.TotalLift:    {Median: 385, Top25: 425, Top10: 465},
		},
		"63": {
			schema.SquatLift:    {Median: 155, Top25: 175, Top10: 195},
			schema.BenchLift:    {Median: 90, Top25: 100, Top10: 110},
			schema.DeadliftLift: {Median: 180, Top25: 205, Top10: 225},
			schema.TotalLift:    {Median: 420, Top25: 470, Top10: 515},
		},
		"69": {
			schema.SquatLift:    {Median: 165, Top25: 185, Top10: 205},
			schema.BenchLift:    {Median: 95, Top25: 107, Top10: 118},
			schema.DeadliftLift: {Median: 200, Top25: 225, Top10: 245},
			schema.TotalLift:    {Median: 455, Top25: 505, Top10: 550},
		},
		"76": {
			schema.SquatLift:    {Median: 177, Top25: 197, Top10: 215},
			schema.BenchLift:    {Median: 102, Top25: 115, Top10: 127},
			schema.DeadliftLift: {Median: 210, Top25: 240, Top10: 260},
			schema.TotalLift:    {Median: 480, Top25: 540, Top10: 585},
		},
		"84": {
			schema.SquatLift:    {Median: 185, Top25: 205, Top10: 225},
			schema.BenchLift:    {Median: 105, Top25: 118, Top10: 130},
			schema.DeadliftLift: {Median: 220, Top25: 250, Top10: 275},
			schema.TotalLift:    {Median: 505, Top25: 560, Top10: 610},
		},
		"84+": {
			schema.SquatLift:    {Median: 190, Top25: 215, Top10: 240},
			schema.BenchLift:    {Median: 110, Top25: 125, Top10: 140},
			schema.DeadliftLift: {Median: 225, Top25: 260, Top10: 290},
			schema.TotalLift:    {Median: 520, Top25: 585, Top10: 640},
		},
	},
	schema.Male: {
		"59": {
			schema.SquatLift:    {Median: 185, Top25: 205, Top10: 225},
			schema.BenchLift:    {Median: 120, Top25: 132, Top10: 145},
			schema.DeadliftLift: {Median: 210, Top25: 235, Top10: 255},
			schema.TotalLift:    {Median: 500, Top25: 550, Top10: 595},
		},
		"66": {
			schema.SquatLift:    {Median: 205, Top25: 225, Top10: 245},
			schema.BenchLift:    {Median: 130, Top25: 142, Top10: 155},
			schema.DeadliftLift: {Median: 230, Top25: 255, Top10: 280},
			schema.TotalLift:    {Median: 535, Top25: 585, Top10: 635},
		},
		"74": {
			schema.SquatLift:    {Median: 225, Top25: 247, Top10: 270},
			schema.BenchLift:    {Median: 145, Top25: 160, Top10: 175},
			schema.DeadliftLift: {Median: 250, Top25: 280, Top10: 305},
			schema.TotalLift:    {Median: 575, Top25: 635, Top10: 685},
		},
		"83": {
			schema.SquatLift:    {Median: 240, Top25: 265, Top10: 290},
			schema.BenchLift:    {Median: 160, Top25: 175, Top10: 190},
			schema.DeadliftLift: {Median: 275, Top25: 305, Top10: 330},
			schema.TotalLift:    {Median: 620, Top25: 690, Top10: 745},
		},
		"93": {
			schema.SquatLift:    {Median: 255, Top25: 282, Top10: 308},
			schema.BenchLift:    {Median: 167, Top25: 182, Top10: 198},
			schema.DeadliftLift: {Median: 285, Top25: 320, Top10: 345},
			schema.TotalLift:    {Median: 655, Top25: 725, Top10: 785},
		},
		"105": {
			schema.SquatLift:    {Median: 270, Top25: 300, Top10: 325},
			schema.BenchLift:    {Median: 175, Top25: 192, Top10: 208},
			schema.DeadliftLift: {Median: 300, Top25: 335, Top10: 360},
			schema.TotalLift:    {Median: 690, Top25: 765, Top10: 825},
		},
		"120": {
			schema.SquatLift:    {Median: 290, Top25: 320, Top10: 345},
			schema.BenchLift:    {Median: 185, Top25: 205, Top10: 220},
			schema.DeadliftLift: {Median: 315, Top25: 350, Top10: 380},
			schema.TotalLift:    {Median: 720, Top25: 800, Top10: 865},
		},
		"120+": {
			schema.SquatLift:    {Median: 305, Top25: 340, Top10: 370},
			schema.BenchLift:    {Median: 195, Top25: 215, Top10: 235},
			schema.DeadliftLift: {Median: 330, Top25: 365, Top10: 400},
			schema.TotalLift:    {Median: 750, Top25: 835, Top10: 900},
		},
	},
}

// rarityCounts are the approximate lifter counts behind each fallback tier,
// for flavor text only.
var rarityCounts = map[int]int{
	1:  15,
	5:  60,
	10: 180,
	25: 600,
}

// WorldRecord returns the IPF world record for a lift in a weight class, or
// false when no record is tracked for that class.
func WorldRecord(classBucket string, lift schema.Lift, gender schema.Gender) (float64, bool) {
	book := ipfWorldRecordsWomen
	if gender == schema.Male {
		book = ipfWorldRecordsMen
	}
	entry, ok := book[classBucket]
	if !ok {
		return 0, false
	}
	record, ok := entry[lift]
	return record, ok
}

// CompareToRecords measures a lift against both record books. Returns nil
// when no record exists for the class and lift.
func CompareToRecords(lift schema.Lift, valueKg float64, gender schema.Gender, classBucket string) *schema.RecordComparison {
	ipfBook, usaplBook := ipfWorldRecordsWomen, usaplAmericanRecordsWomen
	if gender == schema.Male {
		ipfBook, usaplBook = ipfWorldRecordsMen, usaplAmericanRecordsMen
	}

	ipf, ipfOK := ipfBook[classBucket][lift]
	usapl, usaplOK := usaplBook[classBucket][lift]
	if !ipfOK && !usaplOK {
		return nil
	}

	comp := &schema.RecordComparison{}
	if ipfOK {
		comp.IPFRecord = ipf
		comp.IPFDelta = valueKg - ipf
		comp.IsIPFRecord = valueKg >= ipf
		if ipf > 0 {
			comp.IPFPercent = valueKg / ipf * 100.0
		}
	}
	if usaplOK {
		comp.USAPLRecord = usapl
		comp.USAPLDelta = valueKg - usapl
		comp.IsUSAPLRecord = valueKg >= usapl
		if usapl > 0 {
			comp.USAPLPercent = valueKg / usapl * 100.0
		}
	}
	return comp
}
