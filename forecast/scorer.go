package forecast

// Bucket is a coarse confidence level derived from the numeric score.
type Bucket string

const (
	BucketHigh   Bucket = "High"
	BucketMedium Bucket = "Medium"
	BucketLow    Bucket = "Low"
)

// Signals are the independent inputs to the confidence rubric.
type Signals struct {
	MonthsAway    int
	Velocity      VelocityStat
	InInventory   bool
	StockQuantity int
	DemandLevel   string
}

// The rubric is data, not control flow: each signal group is a table of
// thresholds and points, summed to a 0-100 scale.

// Proximity: up to 40 points, first band whose bound covers MonthsAway wins.
var proximityBands = []struct {
	maxMonths int
	points    int
}{
	{1, 40},
	{2, 30},
	{3, 20},
}

// Velocity: up to 30 points, only when the item has recent sales. A rate of
// exactly 0.5 units/day scores 20; exactly 1.0 stays in the 20-point band.
var velocityBands = []struct {
	min       float64
	inclusive bool
	points    int
}{
	{1.0, false, 30},
	{0.5, true, 20},
	{0, true, 10},
}

const (
	stockInStockPoints    = 20
	stockOutOfStockPoints = 5 // still relevant: "add to inventory" is itself an action
)

var demandPoints = map[string]int{
	"High":   10,
	"Medium": 5,
	"Low":    0,
}

// Bucket thresholds over the 0-100 scale.
var bucketBands = []struct {
	min    int
	bucket Bucket
}{
	{70, BucketHigh},
	{40, BucketMedium},
}

// Score combines the signal groups into a 0-100 confidence score and its
// bucket. Fully deterministic: same inputs always produce the same result.
func Score(s Signals) (Bucket, int) {
	total := 0

	for _, band := range proximityBands {
		if s.MonthsAway <= band.maxMonths {
			total += band.points
			break
		}
	}

	if s.Velocity.SalesCount > 0 {
		rate := s.Velocity.VelocityScore
		for _, band := range velocityBands {
			if rate > band.min || (band.inclusive && rate >= band.min) {
				total += band.points
				break
			}
		}
	}

	if s.InInventory && s.StockQuantity > 0 {
		total += stockInStockPoints
	} else {
		total += stockOutOfStockPoints
	}

	total += demandPoints[s.DemandLevel]

	for _, band := range bucketBands {
		if total >= band.min {
			return band.bucket, total
		}
	}
	return BucketLow, total
}
