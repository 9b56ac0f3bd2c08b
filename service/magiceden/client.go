package magiceden

import (
	"fmt"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/magiceden-go/base/ctx"
	"github.com/x-xyz/magiceden-go/domain/chain"
)

const (
	apiBaseMainnet  = "https://api-mainnet.magiceden.dev"
	apiBaseTestnet  = "https://api-testnet.magiceden.dev"
	protocolVersion = "v3"

	authHeader     = "Authorization"
	defaultTimeout = 10 * time.Second
)

type Client interface {
	// RetrieveAsks lists sell orders matching the given filters. A nil
	// request returns the newest asks on the configured chain.
	RetrieveAsks(ctx bCtx.Ctx, req *AsksRequest) (*AsksResponse, error)
	// BuyTokens generates the steps (signatures, transactions) required to
	// fill the given listings.
	BuyTokens(ctx bCtx.Ctx, req *BuyTokensRequest) (*BuyTokensResponse, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Apikey is sent as a bearer token when set. Calls without a key are
	// accepted but rate-limited harder by the remote.
	Apikey string
	Chain  chain.Chain
	// BaseUrl overrides the chain-derived host, mainly for tests
	BaseUrl string
}

func NewClient(cfg *ClientCfg) Client {
	ch := cfg.Chain
	if ch == "" {
		ch = chain.Ethereum
	}

	base := cfg.BaseUrl
	if base == "" {
		if ch.IsTestChain() {
			base = apiBaseTestnet
		} else {
			base = apiBaseMainnet
		}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &client{
		client:  cfg.HttpClient,
		timeout: timeout,
		apikey:  cfg.Apikey,
		chain:   ch,
		url:     apiUrl{base: fmt.Sprintf("%s/%s", base, protocolVersion)},
	}
}

type apiUrl struct {
	base string
}

func (u apiUrl) retrieveAsks(c chain.Chain, query string) string {
	url := fmt.Sprintf("%s/rtp/%s/orders/asks/v5", u.base, c)
	if query != "" {
		url = fmt.Sprintf("%s?%s", url, query)
	}
	return url
}

func (u apiUrl) buyTokens(c chain.Chain) string {
	return fmt.Sprintf("%s/rtp/%s/execute/buy/v7", u.base, c)
}
