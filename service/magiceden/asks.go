package magiceden

import (
	"math/big"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/magiceden-go/domain"
)

type SortBy string

const (
	SortByCreatedAt SortBy = "createdAt"
	SortByUpdatedAt SortBy = "updatedAt"
	SortByPrice     SortBy = "price"
)

type AskStatus string

const (
	AskStatusActive    AskStatus = "active"
	AskStatusInactive  AskStatus = "inactive"
	AskStatusExpired   AskStatus = "expired"
	AskStatusCancelled AskStatus = "cancelled"
	AskStatusFilled    AskStatus = "filled"
	AskStatusAny       AskStatus = "any"
)

// AsksRequest filters for RetrieveAsks. Nil fields are omitted from the
// query. Array fields repeat the key, e.g. ?ids=a&ids=b.
type AsksRequest struct {
	Ids   []string
	Token *string
	// Filter to a particular set, e.g. contract:0x8d04a8c79ceb0889bdd12acdf3fa9d207ed3ff63
	TokenSetId      *string
	Maker           *domain.Address
	Community       *string
	CollectionSetId *string
	ContractSetId   *string
	Contracts       []domain.Address
	// Which status is accepted depends on the other filters passed, see the
	// marketplace reference
	Status                  *AskStatus
	Sources                 []string
	Native                  *bool
	IncludePrivate          *bool
	IncludeCriteriaMetadata *bool
	IncludeRawData          *bool
	IncludeDynamicPricing   *bool
	ExcludeEOA              *bool
	ExcludeSources          []string
	// Unix timestamps, inclusive
	StartTimestamp     *uint64
	EndTimestamp       *uint64
	NormalizeRoyalties *bool
	// Sorting by price is ascending order only
	SortBy        *SortBy
	SortDirection *string
	Continuation  *string
	// Max limit is 1000
	Limit           *uint16
	DisplayCurrency *string
}

// Encode serializes the request into a query string
func (r *AsksRequest) Encode() string {
	params := url.Values{}
	for _, id := range r.Ids {
		params.Add("ids", id)
	}
	if r.Token != nil {
		params.Add("token", *r.Token)
	}
	if r.TokenSetId != nil {
		params.Add("tokenSetId", *r.TokenSetId)
	}
	if r.Maker != nil {
		params.Add("maker", r.Maker.ToLowerStr())
	}
	if r.Community != nil {
		params.Add("community", *r.Community)
	}
	if r.CollectionSetId != nil {
		params.Add("collectionSetId", *r.CollectionSetId)
	}
	if r.ContractSetId != nil {
		params.Add("contractSetId", *r.ContractSetId)
	}
	for _, contract := range r.Contracts {
		params.Add("contracts", contract.ToLowerStr())
	}
	if r.Status != nil {
		params.Add("status", string(*r.Status))
	}
	for _, source := range r.Sources {
		params.Add("sources", source)
	}
	if r.Native != nil {
		params.Add("native", strconv.FormatBool(*r.Native))
	}
	if r.IncludePrivate != nil {
		params.Add("includePrivate", strconv.FormatBool(*r.IncludePrivate))
	}
	if r.IncludeCriteriaMetadata != nil {
		params.Add("includeCriteriaMetadata", strconv.FormatBool(*r.IncludeCriteriaMetadata))
	}
	if r.IncludeRawData != nil {
		params.Add("includeRawData", strconv.FormatBool(*r.IncludeRawData))
	}
	if r.IncludeDynamicPricing != nil {
		params.Add("includeDynamicPricing", strconv.FormatBool(*r.IncludeDynamicPricing))
	}
	if r.ExcludeEOA != nil {
		params.Add("excludeEOA", strconv.FormatBool(*r.ExcludeEOA))
	}
	for _, source := range r.ExcludeSources {
		params.Add("excludeSources", source)
	}
	if r.StartTimestamp != nil {
		params.Add("startTimestamp", strconv.FormatUint(*r.StartTimestamp, 10))
	}
	if r.EndTimestamp != nil {
		params.Add("endTimestamp", strconv.FormatUint(*r.EndTimestamp, 10))
	}
	if r.NormalizeRoyalties != nil {
		params.Add("normalizeRoyalties", strconv.FormatBool(*r.NormalizeRoyalties))
	}
	if r.SortBy != nil {
		params.Add("sortBy", string(*r.SortBy))
	}
	if r.SortDirection != nil {
		params.Add("sortDirection", *r.SortDirection)
	}
	if r.Continuation != nil {
		params.Add("continuation", *r.Continuation)
	}
	if r.Limit != nil {
		params.Add("limit", strconv.FormatUint(uint64(*r.Limit), 10))
	}
	if r.DisplayCurrency != nil {
		params.Add("displayCurrency", *r.DisplayCurrency)
	}
	return params.Encode()
}

type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusInactive  OrderStatus = "inactive"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusFilled    OrderStatus = "filled"
)

// OrderKind is the protocol an order settles through. Kept open so new
// marketplaces on the aggregator do not break decoding.
type OrderKind string

const (
	OrderKindBlur               OrderKind = "blur"
	OrderKindSeaportV14         OrderKind = "seaport-v1.4"
	OrderKindSeaportV15         OrderKind = "seaport-v1.5"
	OrderKindSeaportV16         OrderKind = "seaport-v1.6"
	OrderKindX2Y2               OrderKind = "x2y2"
	OrderKindLooksRareV2        OrderKind = "looks-rare-v2"
	OrderKindPaymentProcessor   OrderKind = "payment-processor"
	OrderKindPaymentProcessorV2 OrderKind = "payment-processor-v2"
	OrderKindElementErc721      OrderKind = "element-erc721"
	OrderKindFoundation         OrderKind = "foundation"
	OrderKindRarible            OrderKind = "rarible"
	OrderKindNftx               OrderKind = "nftx"
	OrderKindSudoswap           OrderKind = "sudoswap"
	OrderKindSudoswapV2         OrderKind = "sudoswap-v2"
	OrderKindAlienswap          OrderKind = "alienswap"
	OrderKindManifold           OrderKind = "manifold"
	OrderKindCryptopunks        OrderKind = "cryptopunks"
	OrderKindZeroExV4Erc721     OrderKind = "zeroex-v4-erc721"
	OrderKindZeroExV4Erc1155    OrderKind = "zeroex-v4-erc1155"
	OrderKindMintify            OrderKind = "mintify"
)

type Currency struct {
	Contract domain.Address `json:"contract"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Decimals int32          `json:"decimals"`
}

type Amount struct {
	Raw     string  `json:"raw"`
	Decimal float64 `json:"decimal"`
	Usd     float64 `json:"usd"`
	Native  float64 `json:"native"`
}

type Price struct {
	Currency  Currency `json:"currency"`
	Amount    Amount   `json:"amount"`
	NetAmount Amount   `json:"netAmount"`
}

type CriteriaToken struct {
	TokenId domain.TokenId `json:"tokenId"`
	Name    string         `json:"name"`
	Image   string         `json:"image"`
}

type CriteriaCollection struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type CriteriaData struct {
	Token      *CriteriaToken      `json:"token"`
	Collection *CriteriaCollection `json:"collection"`
}

type Criteria struct {
	Kind string       `json:"kind"`
	Data CriteriaData `json:"data"`
}

type FeeBreakdown struct {
	// Can be marketplace or royalty
	Kind      string         `json:"kind"`
	Recipient domain.Address `json:"recipient"`
	Bps       uint64         `json:"bps"`
}

type Depth struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type Order struct {
	Id                 string         `json:"id"`
	Kind               OrderKind      `json:"kind"`
	Side               Side           `json:"side"`
	Status             OrderStatus    `json:"status"`
	TokenSetId         string         `json:"tokenSetId"`
	TokenSetSchemaHash string         `json:"tokenSetSchemaHash"`
	Contract           domain.Address `json:"contract"`
	ContractKind       string         `json:"contractKind"`
	Maker              domain.Address `json:"maker"`
	Taker              domain.Address `json:"taker"`
	Price              *Price         `json:"price"`
	ValidFrom          uint64         `json:"validFrom"`
	ValidUntil         uint64         `json:"validUntil"`
	QuantityFilled     *uint64        `json:"quantityFilled"`
	QuantityRemaining  *uint64        `json:"quantityRemaining"`
	Criteria           *Criteria      `json:"criteria"`
	// Source attribution of the listing marketplace, shape varies per source
	Source       map[string]interface{} `json:"source"`
	FeeBps       *uint64                `json:"feeBps"`
	FeeBreakdown []FeeBreakdown         `json:"feeBreakdown"`
	Expiration   uint64                 `json:"expiration"`
	IsReservoir  *bool                  `json:"isReservoir"`
	IsDynamic    *bool                  `json:"isDynamic"`
	// Time when added to indexer
	CreatedAt time.Time `json:"createdAt"`
	// Time when updated in indexer
	UpdatedAt time.Time `json:"updatedAt"`
	// Time when created by maker
	OriginatedAt                *time.Time             `json:"originatedAt"`
	RawData                     map[string]interface{} `json:"rawData"`
	IsNativeOffChainCancellable *bool                  `json:"isNativeOffChainCancellable"`
	Depth                       []Depth                `json:"depth"`
}

// DisplayPrice converts the raw gross amount to its display decimal using
// the listing currency's decimals
func (o *Order) DisplayPrice() (decimal.Decimal, error) {
	if o.Price == nil {
		return decimal.Zero, ErrParseRawAmount
	}
	n, ok := new(big.Int).SetString(o.Price.Amount.Raw, 10)
	if !ok {
		return decimal.Zero, ErrParseRawAmount
	}
	return decimal.NewFromBigInt(n, -o.Price.Currency.Decimals), nil
}

type AsksResponse struct {
	Orders []Order `json:"orders"`
	// Pass back as AsksRequest.Continuation to fetch the next page
	Continuation *string `json:"continuation"`
}
