package main

import "nft_market/sdk"

// -----------------------------------------------------------------------------
// Settlement Engine
//
// Purchase is a single atomic step: it either fully commits (ownership moved,
// listing closed, funds split three ways) or fully reverts through the host.
// The in-flight flag rejects reentrant calls, and all bookkeeping lands in
// state BEFORE the first outbound value transfer so a malicious disbursement
// recipient re-entering the contract can only observe the already-settled
// world, never the stale listing.
// -----------------------------------------------------------------------------

// Purchase settles an active listing. Payment is supplied via a transfer.allow
// intent in the settlement asset and must equal the listing price exactly.
// Payload: listingId
func Purchase(payload *string) *string {
	requireInitialized()
	buyer := getSenderAddress()
	id := decodeIDPayload(payload, "listing id")

	if ptr := sdk.StateGetObject(settlementLockKey); ptr != nil && *ptr != "" {
		sdk.Revert("a settlement is already in flight", symReentrancy)
	}
	sdk.StateSetObject(settlementLockKey, "1")

	cfg := loadContractConfig()

	lst, ok := loadListing(id)
	if !ok || !lst.Active {
		sdk.Revert("listing is not for sale", symItemNotForSale)
	}

	// exact payment, no over- or underpayment tolerance
	allow := getFirstTransferAllow()
	if allow == nil || allow.Token != cfg.Asset || allow.Limit != lst.Price {
		sdk.Revert("payment must equal the listing price exactly", symIncorrectPayment)
	}

	seller := lst.Owner
	tok, tokOk := loadToken(lst.TokenID)
	if !tokOk || tok.Owner != seller {
		sdk.Revert("seller can no longer deliver this token", symTransferDenied)
	}
	if !isApprovedForAll(seller, contractAddress()) {
		sdk.Revert("market is not approved to move this token", symTransferDenied)
	}

	// three-way split on the smallest unit, floor truncation on both cuts
	royaltyReceiver, royalty := royaltyCut(lst.TokenID, lst.Price)
	platformFee := Amount(uint64(lst.Price) * cfg.MarketFeeBps / BpsDenominator)
	if platformFee+royalty > lst.Price {
		sdk.Revert("fee plus royalty exceed the payment", symFeeOverflow)
	}
	proceeds := lst.Price - platformFee - royalty

	// pull the exact payment into contract custody
	sdk.HiveDraw(int64(lst.Price), cfg.Asset)

	// bookkeeping strictly before any outbound transfer: ownership to the
	// buyer, listing closed and re-pointed at its new holder
	moveToken(tok, buyer)
	lst.Owner = buyer
	lst.Active = false
	saveListing(lst)

	// disburse platform fee, royalty, seller proceeds; a failed transfer
	// aborts the call and the host unwinds everything above
	if platformFee > 0 {
		sdk.HiveTransfer(cfg.Owner, int64(platformFee), cfg.Asset)
	}
	if royalty > 0 {
		sdk.HiveTransfer(royaltyReceiver, int64(royalty), cfg.Asset)
	}
	if proceeds > 0 {
		sdk.HiveTransfer(seller, int64(proceeds), cfg.Asset)
	}

	sdk.StateDeleteObject(settlementLockKey)
	emitPurchaseEvent(id, lst.TokenID, buyer.String(), lst.Price, platformFee, royalty, proceeds)
	return strptr("purchased listing " + UInt64ToString(id))
}
