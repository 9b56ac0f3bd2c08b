package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	req := require.New(t)
	req.True(IsValidAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
	req.True(IsValidAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"))
	req.False(IsValidAddress("d8da6bf26964af9d7eed9e03e53415d37aa96045"))
	req.False(IsValidAddress("0x1234"))
	req.False(IsValidAddress(""))
}

func TestStruct(t *testing.T) {
	req := require.New(t)

	type payload struct {
		Taker string `validate:"required,evm_addr"`
	}

	req.NoError(Struct(payload{Taker: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"}))
	req.Error(Struct(payload{Taker: "not-an-address"}))
	req.Error(Struct(payload{}))
}
