package main

import (
	"math"
	"strconv"

	"nft_market/sdk"
)

// AmountScale defines the precision multiplier for converting floats to int64.
const AmountScale = 1000

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
// Example payload: AmountToFloat(FloatToAmount(2.5))
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToString renders the amount as a 3-decimal string for events and query output.
// Example payload: AmountToString(FloatToAmount(9.25))
func AmountToString(v Amount) string {
	return strconv.FormatFloat(AmountToFloat(v), 'f', 3, 64)
}

// Token is one registered asset: exactly one owner at a time, creator fixed at
// mint, metadata pointer opaque to the contract.
type Token struct {
	ID      uint64
	Owner   sdk.Address
	Creator sdk.Address
	URI     string
}

// RoyaltyTerms routes a basis-point fraction of every sale to the receiver.
type RoyaltyTerms struct {
	Receiver sdk.Address
	Bps      uint64
}

// Listing is an offer to sell one token at a fixed price. Records are never
// deleted; Active flips to false on delist or purchase. After a sale the Owner
// field tracks the buyer so ownership queries stay cheap.
type Listing struct {
	ID      uint64
	TokenID uint64
	Owner   sdk.Address
	Price   Amount
	Active  bool
}

// ContractConfig holds the admin identity and global market settings.
type ContractConfig struct {
	Owner            sdk.Address
	MarketFeeBps     uint64
	Asset            sdk.Asset
	WhitelistEnabled bool
}
