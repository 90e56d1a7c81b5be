package tests

import (
	"fmt"
	"math/rand"
	"time"
)

// Randomizer produces plausible submission fields for tests.
type Randomizer struct {
	Name  func() string
	Phone func() string
	Items func() []string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}
	items := []string{"latte", "mocha", "croissant", "bagel", "matcha", "scone"}

	return Randomizer{
		Name: func() string {
			return names[random.Intn(len(names))]
		},
		Phone: func() string {
			return fmt.Sprintf("+1555%07d", random.Intn(10_000_000)) //nolint:mnd // skip
		},
		Items: func() []string {
			n := random.Intn(len(items) + 1)
			picked := make([]string, 0, n)

			for _, i := range random.Perm(len(items))[:n] {
				picked = append(picked, items[i])
			}

			return picked
		},
	}
}
