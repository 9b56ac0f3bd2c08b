package magiceden

import (
	"encoding/json"
	"io/ioutil"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/magiceden-go/base/ptr"
	"github.com/x-xyz/magiceden-go/domain"
)

type asksSuite struct {
	suite.Suite
}

func TestAsks(t *testing.T) {
	suite.Run(t, new(asksSuite))
}

func (s *asksSuite) TestEncodeEmpty() {
	r := &AsksRequest{}
	s.Equal("", r.Encode())
}

func (s *asksSuite) TestEncodeRepeatsArrayKeys() {
	r := &AsksRequest{
		Ids:       []string{"0xaaa", "0xbbb"},
		Contracts: []domain.Address{"0xCCC", "0xDDD"},
		Sources:   []string{"magiceden.io"},
	}
	values, err := url.ParseQuery(r.Encode())
	s.NoError(err)
	s.Equal([]string{"0xaaa", "0xbbb"}, values["ids"])
	s.Equal([]string{"0xccc", "0xddd"}, values["contracts"])
	s.Equal([]string{"magiceden.io"}, values["sources"])
}

func (s *asksSuite) TestEncodeScalars() {
	status := AskStatusActive
	sortBy := SortByPrice
	maker := domain.Address("0xF296178d553C8Ec21A2fBD2c5dDa8CA9ac905A00")
	r := &AsksRequest{
		Token:              ptr.String("0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63:123"),
		TokenSetId:         ptr.String("contract:0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63"),
		Maker:              &maker,
		Status:             &status,
		Native:             ptr.Bool(true),
		ExcludeEOA:         ptr.Bool(false),
		StartTimestamp:     ptr.Uint64(1714138800),
		EndTimestamp:       ptr.Uint64(1716730800),
		NormalizeRoyalties: ptr.Bool(true),
		SortBy:             &sortBy,
		Continuation:       ptr.String("abc"),
		Limit:              ptr.Uint16(1000),
		DisplayCurrency:    ptr.String("0x0000000000000000000000000000000000000000"),
	}
	values, err := url.ParseQuery(r.Encode())
	s.NoError(err)
	s.Equal("0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63:123", values.Get("token"))
	s.Equal("contract:0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63", values.Get("tokenSetId"))
	s.Equal("0xf296178d553c8ec21a2fbd2c5dda8ca9ac905a00", values.Get("maker"))
	s.Equal("active", values.Get("status"))
	s.Equal("true", values.Get("native"))
	s.Equal("false", values.Get("excludeEOA"))
	s.Equal("1714138800", values.Get("startTimestamp"))
	s.Equal("1716730800", values.Get("endTimestamp"))
	s.Equal("true", values.Get("normalizeRoyalties"))
	s.Equal("price", values.Get("sortBy"))
	s.Equal("abc", values.Get("continuation"))
	s.Equal("1000", values.Get("limit"))
	s.Equal("0x0000000000000000000000000000000000000000", values.Get("displayCurrency"))

	// nil fields stay out of the query
	s.NotContains(values, "community")
	s.NotContains(values, "includePrivate")
	s.NotContains(values, "sortDirection")
}

func (s *asksSuite) TestDecodeFixture() {
	data, err := ioutil.ReadFile(filepath.Join("testdata", "response_asks.json"))
	s.NoError(err)

	res := AsksResponse{}
	s.NoError(json.Unmarshal(data, &res))
	s.Equal("0x5844792a36ff5966a325d2180ebda80f8f63a7f3d4585e1c88615a111ce42942", res.Orders[0].Id)
	s.Equal(uint64(50), *res.Orders[0].FeeBps)
	s.Equal("2024-04-26T13:01:12.123Z", res.Orders[0].CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"))
	s.Nil(res.Orders[1].OriginatedAt)
	s.Nil(res.Orders[1].Depth)
}

func (s *asksSuite) TestCancelledSpelling() {
	// the remote uses the double-l form on both sides of the wire
	s.Equal(string(AskStatusCancelled), string(OrderStatusCancelled))

	o := Order{}
	s.NoError(json.Unmarshal([]byte(`{"id":"0xaaa","status":"cancelled"}`), &o))
	s.Equal(OrderStatusCancelled, o.Status)
}

func (s *asksSuite) TestDisplayPriceWithoutPrice() {
	o := Order{}
	_, err := o.DisplayPrice()
	s.ErrorIs(err, ErrParseRawAmount)
}
