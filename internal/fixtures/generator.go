package fixtures

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/Houeta/dsm44-seeder/internal/models"
)

const (
	minDailyWage     = 200
	dailyWageSpread  = 350
	wageDecimals     = 2
	maxUnitsProduced = 3000
)

// Generator draws random fixture values from its pools. It is not safe for concurrent use.
type Generator struct {
	pools Pools
	rng   *rand.Rand
}

func NewGenerator(pools Pools, rng *rand.Rand) *Generator {
	return &Generator{pools: pools, rng: rng}
}

// FullName draws every part independently, so repeated names are expected.
func (g *Generator) FullName() models.FullName {
	return models.FullName{
		Nombre:    g.pick(g.pools.GivenNames),
		ApellidoP: g.pick(g.pools.FamilyNames),
		ApellidoM: g.pick(g.pools.FamilyNames),
	}
}

func (g *Generator) Area() string {
	return g.pick(g.pools.Areas)
}

func (g *Generator) Shift() string {
	return g.pick(g.pools.Shifts)
}

func (g *Generator) AttendanceStatus() string {
	return g.pick(g.pools.Statuses)
}

// DailyWage returns a wage in [200, 550] rounded to cents.
func (g *Generator) DailyWage() float64 {
	raw := decimal.NewFromFloat(minDailyWage + g.rng.Float64()*dailyWageSpread)

	return raw.Round(wageDecimals).InexactFloat64()
}

// UnitsProduced returns an integer in [0, 3000].
func (g *Generator) UnitsProduced() int {
	return g.rng.IntN(maxUnitsProduced + 1)
}

func (g *Generator) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}

	return pool[g.rng.IntN(len(pool))]
}
