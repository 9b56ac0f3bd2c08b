package domain

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type domainSuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(domainSuite))
}

func (s *domainSuite) TestAddress() {
	a := Address("0xF296178d553C8Ec21A2fBD2c5dDa8CA9ac905A00")
	s.Equal(Address("0xf296178d553c8ec21a2fbd2c5dda8ca9ac905a00"), a.ToLower())
	s.Equal("0xf296178d553c8ec21a2fbd2c5dda8ca9ac905a00", a.ToLowerStr())
	s.True(a.Equals("0xf296178D553c8eC21A2FBD2C5DDA8ca9AC905a00"))
	s.False(a.IsEmpty())
	s.True(Address("").IsEmpty())
}

func (s *domainSuite) TestTokenId() {
	hex, err := TokenId("837").ToHexString()
	s.NoError(err)
	s.Equal("0000000000000000000000000000000000000000000000000000000000000345", hex)

	_, err = TokenId("not-a-number").ToHexString()
	s.Error(err)
}

func (s *domainSuite) TestTokenIdentifier() {
	s.Equal(
		"0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63:123",
		TokenIdentifier("0x8D04a8c79cEB0889Bdd12acdF3Fa9D207eD3Ff63", "123"),
	)
}
