package magiceden

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/magiceden-go/domain"
)

type ExecutionMethod string

const (
	ExecutionMethodSeaportV15Intent ExecutionMethod = "seaport-v1.5-intent"
)

type SwapProvider string

const (
	SwapProviderUniswap SwapProvider = "uniswap"
	SwapProviderOneInch SwapProvider = "1inch"
)

type FillMethod string

const (
	FillMethodTrade      FillMethod = "trade"
	FillMethodMint       FillMethod = "mint"
	FillMethodPreferMint FillMethod = "preferMint"
)

type RawOrderKind string

const (
	RawOrderKindOpenSea     RawOrderKind = "opensea"
	RawOrderKindBlurPartial RawOrderKind = "blur-partial"
	RawOrderKindLooksRare   RawOrderKind = "looks-rare"
	RawOrderKindZeroExV4    RawOrderKind = "zeroex-v4"
	RawOrderKindSeaport     RawOrderKind = "seaport"
	RawOrderKindSeaportV14  RawOrderKind = "seaport-v1.4"
	RawOrderKindSeaportV15  RawOrderKind = "seaport-v1.5"
	RawOrderKindSeaportV16  RawOrderKind = "seaport-v1.6"
	RawOrderKindX2Y2        RawOrderKind = "x2y2"
	RawOrderKindRarible     RawOrderKind = "rarible"
	RawOrderKindSudoswap    RawOrderKind = "sudoswap"
	RawOrderKindNftx        RawOrderKind = "nftx"
	RawOrderKindAlienswap   RawOrderKind = "alienswap"
	RawOrderKindMint        RawOrderKind = "mint"
)

type RawOrder struct {
	Kind RawOrderKind           `json:"kind"`
	Data map[string]interface{} `json:"data"`
}

type ExcludeItem struct {
	OrderId string `json:"orderId"`
	Price   string `json:"price"`
}

// Listing is one item to fill. Exactly one of Collection, Token, OrderId or
// RawOrder should identify what to buy.
type Listing struct {
	Collection *string     `json:"collection,omitempty"`
	Token      *string     `json:"token,omitempty"`
	Quantity   *uint16     `json:"quantity,omitempty"`
	OrderId    *string     `json:"orderId,omitempty"`
	RawOrder   *RawOrder   `json:"rawOrder,omitempty"`
	FillMethod *FillMethod `json:"fillMethod,omitempty"`
	// If there are multiple listings with equal best price, prefer this
	// source over others. To fill a listing that is not the best priced,
	// pass a specific order id or ExactOrderSource.
	PreferredOrderSource *string       `json:"preferredOrderSource,omitempty"`
	ExactOrderSource     *string       `json:"exactOrderSource,omitempty"`
	Exclusions           []ExcludeItem `json:"exclusions,omitempty"`
}

type BuyTokensRequest struct {
	Items []Listing `json:"items" validate:"required,min=1"`
	// Receiver of the NFTs
	Taker domain.Address `json:"taker" validate:"required,evm_addr"`
	// Wallet relaying the fill transaction, pays when set
	Relayer *domain.Address `json:"relayer,omitempty"`
	// If true, only the path will be returned
	OnlyPath    *bool `json:"onlyPath,omitempty"`
	ForceRouter *bool `json:"forceRouter,omitempty"`
	// Purchase currency contract
	Currency           *domain.Address `json:"currency,omitempty"`
	CurrencyChainId    *uint16         `json:"currencyChainId,omitempty"`
	NormalizeRoyalties *bool           `json:"normalizeRoyalties,omitempty"`
	// Only relevant when filling via a specific order id
	AllowInactiveOrderIds *bool `json:"allowInactiveOrderIds,omitempty"`
	// Filling source used for attribution, e.g. magiceden.io
	Source *string `json:"source,omitempty"`
	// Fees on top, formatted as feeRecipient:feeAmount
	Fees []string `json:"fees,omitempty"`
	// If true, any off-chain or on-chain errors will be skipped
	Partial          *bool `json:"partial,omitempty"`
	SkipBalanceCheck *bool `json:"skipBalanceCheck,omitempty"`
	// Exclude orders that can only be filled by EOAs. When true, blur is
	// excluded.
	ExcludeEOA           *bool   `json:"excludeEOA,omitempty"`
	MaxFeePerGas         *string `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *string `json:"maxPriorityFeePerGas,omitempty"`
	// When true, will use permit to avoid approvals
	Permit          *bool            `json:"permit,omitempty"`
	SwapProvider    *SwapProvider    `json:"swapProvider,omitempty"`
	ExecutionMethod *ExecutionMethod `json:"executionMethod,omitempty"`
	Referrer        *domain.Address  `json:"referrer,omitempty"`
	// Mint comment, where supported
	Comment       *string `json:"comment,omitempty"`
	X2y2ApiKey    *string `json:"x2y2ApiKey,omitempty"`
	OpenseaApiKey *string `json:"openseaApiKey,omitempty"`
	// The API generates one when left empty
	BlurAuthToken *string `json:"blurAuthToken,omitempty"`
}

type StepKind string

const (
	StepKindSignature   StepKind = "signature"
	StepKindTransaction StepKind = "transaction"
)

type StepStatus string

const (
	StepStatusComplete   StepStatus = "complete"
	StepStatusIncomplete StepStatus = "incomplete"
)

type StepItemData struct {
	From  domain.Address `json:"from"`
	To    domain.Address `json:"to"`
	Data  string         `json:"data"`
	Value string         `json:"value"`
}

type StepCheckBody struct {
	Kind StepKind `json:"kind"`
}

// StepCheck describes the endpoint for polling the status of a step
type StepCheck struct {
	Endpoint string        `json:"endpoint"`
	Method   string        `json:"method"`
	Body     StepCheckBody `json:"body"`
}

type StepItem struct {
	Status   StepStatus   `json:"status"`
	Tip      *string      `json:"tip"`
	OrderIds []string     `json:"orderIds"`
	Data     StepItemData `json:"data"`
	// Approximation of gas used, transaction items only
	GasEstimate uint64     `json:"gasEstimate"`
	Check       *StepCheck `json:"check"`
}

type MaxQuantity struct {
	ItemIndex   uint16 `json:"itemIndex"`
	MaxQuantity string `json:"maxQuantity"`
}

type Step struct {
	Id            string        `json:"id"`
	Action        string        `json:"action"`
	Description   string        `json:"description"`
	Kind          StepKind      `json:"kind"`
	Items         []StepItem    `json:"items"`
	MaxQuantities []MaxQuantity `json:"maxQuantities"`
}

type StepError struct {
	Message string `json:"message"`
	OrderId string `json:"orderId"`
}

type PathFee struct {
	// Can be marketplace fees or royalties
	Kind      string         `json:"kind"`
	Recipient domain.Address `json:"recipient"`
	Bps       uint64         `json:"bps"`
	Amount    float64        `json:"amount"`
	RawAmount string         `json:"rawAmount"`
}

type PathItem struct {
	OrderId               string         `json:"orderId"`
	Contract              domain.Address `json:"contract"`
	TokenId               domain.TokenId `json:"tokenId"`
	Quantity              uint16         `json:"quantity"`
	Source                string         `json:"source"`
	Currency              domain.Address `json:"currency"`
	CurrencySymbol        string         `json:"currencySymbol"`
	CurrencyDecimals      int32          `json:"currencyDecimals"`
	Quote                 float64        `json:"quote"`
	RawQuote              string         `json:"rawQuote"`
	BuyInCurrency         *string        `json:"buyInCurrency"`
	BuyInCurrencySymbol   *string        `json:"buyInCurrencySymbol"`
	BuyInCurrencyDecimals *int32         `json:"buyInCurrencyDecimals"`
	BuyInQuote            *float64       `json:"buyInQuote"`
	BuyInRawQuote         *string        `json:"buyInRawQuote"`
	TotalPrice            float64        `json:"totalPrice"`
	TotalRawPrice         string         `json:"totalRawPrice"`
	BuiltInFees           []PathFee      `json:"builtInFees"`
	// Can be referral fees
	FeesOnTop   []PathFee `json:"feesOnTop"`
	FromChainId *uint16   `json:"fromChainId"`
}

// DisplayTotalPrice converts the raw total price to its display decimal
// using the quote currency's decimals
func (p *PathItem) DisplayTotalPrice() (decimal.Decimal, error) {
	n, ok := new(big.Int).SetString(p.TotalRawPrice, 10)
	if !ok {
		return decimal.Zero, ErrParseRawAmount
	}
	return decimal.NewFromBigInt(n, -p.CurrencyDecimals), nil
}

type BuyTokensResponse struct {
	RequestId string      `json:"requestId"`
	Steps     []Step      `json:"steps"`
	Errors    []StepError `json:"errors"`
	Path      []PathItem  `json:"path"`
}
