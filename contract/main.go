////////////////////////////////////////////////////////////////////////////////
// NFT Market: creator-attributed assets with royalty settlement for the vsc
// network
////////////////////////////////////////////////////////////////////////////////

package main

import "nft_market/sdk"

// main is left empty on purpose
func main() {

}

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as admin.
// Must be called before any other function.
// Payload: feeBps|asset|whitelistEnabled
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	args := decodeInitArgs(payload)
	if args.MarketFeeBps > BpsDenominator {
		sdk.Revert("market fee exceeds 10000 bps", symFeeTooHigh)
	}

	cfg := ContractConfig{
		Owner:            getSenderAddress(),
		MarketFeeBps:     args.MarketFeeBps,
		Asset:            args.Asset,
		WhitelistEnabled: args.WhitelistEnabled,
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner.String(), cfg.MarketFeeBps, cfg.Asset.String(), cfg.WhitelistEnabled)
	return strptr("initialized market, admin " + cfg.Owner.String())
}

// -----------------------------------------------------------------------------
// Market Administration
// -----------------------------------------------------------------------------

// SetMarketFee updates the global platform fee fraction.
// Payload: feeBps
func SetMarketFee(payload *string) *string {
	requireContractOwner()

	bps := decodeIDPayload(payload, "market fee")
	if bps > BpsDenominator {
		sdk.Revert("market fee exceeds 10000 bps", symFeeTooHigh)
	}

	cfg := loadContractConfig()
	cfg.MarketFeeBps = bps
	saveContractConfig(cfg)

	emitFeeUpdatedEvent(bps)
	return strptr("market fee set to " + UInt64ToString(bps) + " bps")
}
