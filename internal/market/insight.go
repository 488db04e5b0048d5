// Package market produces simulated labour-market figures for careers.
// Values are derived deterministically from the career so repeated calls agree.
package market

import (
	"hash/fnv"
	"math"

	"github.com/jonathan/career-pathfinder/internal/types"
)

var regions = []string{
	"San Francisco Bay Area",
	"New York",
	"Seattle",
	"Austin",
	"Boston",
	"Chicago",
	"Denver",
	"Atlanta",
	"Toronto",
	"London",
	"Berlin",
	"Remote (US)",
}

// outlookProfile is the base demand and growth for a growth outlook.
type outlookProfile struct {
	demand int
	growth float64
	trend  string
}

var outlooks = map[types.GrowthOutlook]outlookProfile{
	types.GrowthLow:      {demand: 35, growth: 1.0, trend: "stable"},
	types.GrowthModerate: {demand: 55, growth: 4.0, trend: "growing"},
	types.GrowthHigh:     {demand: 72, growth: 9.0, trend: "growing fast"},
	types.GrowthVeryHigh: {demand: 85, growth: 15.0, trend: "surging"},
}

// Insight returns simulated market data for a career.
func Insight(c types.Career) types.MarketInsight {
	seed := hash(c.ID)
	base, ok := outlooks[c.GrowthOutlook]
	if !ok {
		base = outlooks[types.GrowthModerate]
	}

	demand := base.demand + int(seed%11) - 5
	demand = max(0, min(100, demand))

	// one decimal place of jitter in [-1.5, +1.5]
	growth := math.Round((base.growth+float64(int(seed>>8%31)-15)/10)*10) / 10

	remote := 20 + int(seed>>16%61)

	picked := make([]string, 0, 3)
	used := make(map[int]bool, 3)
	for i := uint32(0); len(picked) < 3; i++ {
		idx := int((seed>>(i%4*8) + i*7) % uint32(len(regions)))
		if used[idx] {
			continue
		}
		used[idx] = true
		picked = append(picked, regions[idx])
	}

	return types.MarketInsight{
		CareerID:          c.ID,
		DemandIndex:       demand,
		ProjectedGrowth:   growth,
		RemoteFriendlyPct: remote,
		MedianSalary:      c.SalaryRange.Midpoint(),
		Trend:             base.trend,
		TopRegions:        picked,
		Simulated:         true,
	}
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
