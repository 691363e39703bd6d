package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuna reports whether s is a valid Luhn numeral. Order references
// attached to transactions are Luhn-checked at the API boundary.
func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
