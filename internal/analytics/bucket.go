package analytics

import (
	"github.com/shopspring/decimal"
)

// Bucket is a half-open amount range [Min, Max). A nil Min is unbounded
// below and a nil Max is unbounded above, so the buckets in Buckets
// partition every possible amount.
type Bucket struct {
	Label string
	Min   *decimal.Decimal
	Max   *decimal.Decimal
}

// BucketCount is the number of transactions falling into a bucket.
type BucketCount struct {
	Bucket
	Count int64
}

// Contains reports whether amount falls inside b. Lower bounds are inclusive.
func (b Bucket) Contains(amount decimal.Decimal) bool {
	if b.Min != nil && amount.LessThan(*b.Min) {
		return false
	}

	if b.Max != nil && !amount.LessThan(*b.Max) {
		return false
	}

	return true
}

func bound(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// Buckets is the fixed amount distribution, in currency units.
var Buckets = []Bucket{
	{Label: "0-100K", Min: nil, Max: bound(100_000)},
	{Label: "100K-500K", Min: bound(100_000), Max: bound(500_000)},
	{Label: "500K-1M", Min: bound(500_000), Max: bound(1_000_000)},
	{Label: "1M-5M", Min: bound(1_000_000), Max: bound(5_000_000)},
	{Label: "5M-10M", Min: bound(5_000_000), Max: bound(10_000_000)},
	{Label: "10M+", Min: bound(10_000_000), Max: nil},
}

// Classify returns the index in Buckets of the bucket holding amount.
func Classify(amount decimal.Decimal) int {
	for i, b := range Buckets {
		if b.Contains(amount) {
			return i
		}
	}

	// Unreachable while Buckets stays a partition.
	return len(Buckets) - 1
}

// Distribute counts amounts per bucket in process. Every bucket is
// present in the result, including empty ones.
func Distribute(amounts []decimal.Decimal) []BucketCount {
	counts := make([]int64, len(Buckets))
	for _, a := range amounts {
		counts[Classify(a)]++
	}

	return withCounts(counts)
}

func withCounts(counts []int64) []BucketCount {
	out := make([]BucketCount, len(Buckets))
	for i, b := range Buckets {
		out[i] = BucketCount{Bucket: b, Count: counts[i]}
	}

	return out
}
