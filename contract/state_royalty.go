package main

import (
	"strconv"
	"strings"

	"nft_market/sdk"
)

// saveRoyalty stores royalty terms as a pipe-delimited receiver|bps pair.
func saveRoyalty(tokenID uint64, terms *RoyaltyTerms) {
	value := terms.Receiver.String() + "|" + strconv.FormatUint(terms.Bps, 10)
	sdk.StateSetObject(royaltyKey(tokenID), value)
}

// loadRoyalty returns the terms for a token, or nil when none were ever set.
func loadRoyalty(tokenID uint64) *RoyaltyTerms {
	ptr := sdk.StateGetObject(royaltyKey(tokenID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	parts := strings.SplitN(*ptr, "|", 2)
	if len(parts) < 2 {
		sdk.Abort("corrupt royalty record")
	}
	bps, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		sdk.Abort("corrupt royalty record")
	}
	return &RoyaltyTerms{
		Receiver: sdk.Address(parts[0]),
		Bps:      bps,
	}
}

// deleteRoyalty drops the terms when their token is burned.
func deleteRoyalty(tokenID uint64) {
	sdk.StateDeleteObject(royaltyKey(tokenID))
}

// royaltyCut computes the receiver and floor-truncated amount for a sale price.
// Deterministic and read-only: repeated calls with unchanged state return the
// same result. Missing terms yield an empty receiver and zero amount.
func royaltyCut(tokenID uint64, salePrice Amount) (sdk.Address, Amount) {
	terms := loadRoyalty(tokenID)
	if terms == nil || terms.Receiver.IsEmpty() {
		return sdk.Address(""), 0
	}
	amount := Amount(uint64(salePrice) * terms.Bps / BpsDenominator)
	return terms.Receiver, amount
}
