package chain

// Chain identifies an EVM chain supported by the marketplace. Its string
// value is the path segment used by the rtp endpoints.
type Chain string

const (
	Ethereum    Chain = "ethereum"
	Polygon     Chain = "polygon"
	Bsc         Chain = "bsc"
	Arbitrum    Chain = "arbitrum"
	Optimism    Chain = "optimism"
	Base        Chain = "base"
	Goerli      Chain = "goerli"
	Sepolia     Chain = "sepolia"
	BaseSepolia Chain = "base-sepolia"
	PolygonAmoy Chain = "polygon-amoy"
)

var testChains = map[Chain]bool{
	Goerli:      true,
	Sepolia:     true,
	BaseSepolia: true,
	PolygonAmoy: true,
}

var liveChains = map[Chain]bool{
	Ethereum: true,
	Polygon:  true,
	Bsc:      true,
	Arbitrum: true,
	Optimism: true,
	Base:     true,
}

func (c Chain) String() string {
	return string(c)
}

func (c Chain) IsTestChain() bool {
	return testChains[c]
}

func (c Chain) IsLiveChain() bool {
	return liveChains[c]
}

func (c Chain) IsValid() bool {
	return testChains[c] || liveChains[c]
}
