package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator produces deterministic fake data for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator, seeded for reproducibility when a
// seed is given.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// GenerateOlympicsName returns a plausible event name.
func (g *TestDataGenerator) GenerateOlympicsName() string {
	return fmt.Sprintf("%s Office Olympics %d", g.faker.Company(), g.faker.Number(2020, 2030))
}

// GeneratePlayerNames returns count distinct player names. Fake names can
// collide, so each gets an index suffix to satisfy the per-olympics unique
// constraint.
func (g *TestDataGenerator) GeneratePlayerNames(count int) []string {
	names := make([]string, count)
	for i := 0; i < count; i++ {
		names[i] = fmt.Sprintf("%s %c.", g.faker.FirstName(), 'A'+i%26)
	}
	return names
}
