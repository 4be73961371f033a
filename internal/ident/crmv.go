package ident

import (
	"fmt"
	"math/rand/v2"
)

// DefaultJurisdiction is the state suffix used for every registration.
const DefaultJurisdiction = "SP"

// NewCRMV returns a 4-digit registration number with a jurisdiction suffix,
// e.g. "1234-SP".
func NewCRMV(r *rand.Rand, jurisdiction string) string {
	return fmt.Sprintf("%d-%s", 1000+r.IntN(9000), jurisdiction)
}
