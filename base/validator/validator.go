package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// eth_addr from go-playground requires checksummed input, the
	// marketplace accepts any casing
	validate.RegisterValidation("evm_addr", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
}

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	return common.IsHexAddress(strings.TrimSpace(address))
}

// Struct validates struct tags on the given value
func Struct(i interface{}) error {
	return validate.Struct(i)
}
