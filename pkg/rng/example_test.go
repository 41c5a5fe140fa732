package rng_test

import (
	"fmt"

	"github.com/mwinters-dev/netherquad/pkg/rng"
)

func ExampleSource_SetLargeFeatureSeed() {
	s := rng.New()
	s.SetLargeFeatureSeed(1, 27, 0)
	fmt.Println(s.NextIntBound(5))
	// Output: 4
}
