package main

import "nft_market/sdk"

// -----------------------------------------------------------------------------
// Listing Book
//
// Sequential listing ids, never reused, records never deleted. A zero price is
// a deliberate silent no-op on list and reprice (callers get the zero id /
// unchanged state rather than an error).
// -----------------------------------------------------------------------------

// List offers a token for sale at a fixed price.
// Payload: tokenId|price
func List(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	args := decodeListArgs(payload)
	tok, ok := loadToken(args.TokenID)
	if !ok {
		sdk.Revert("token does not exist", symNotFound)
	}
	if tok.Owner != sender {
		sdk.Revert("caller does not own this token", symNotOwner)
	}
	if args.Price == 0 {
		// zero price: no listing is created, caller receives the zero id
		return strptr("0")
	}

	id := nextID(ListingsCount)
	lst := Listing{
		ID:      id,
		TokenID: args.TokenID,
		Owner:   sender,
		Price:   args.Price,
		Active:  true,
	}
	saveListing(&lst)

	emitListedEvent(currentEnv().ContractId, args.TokenID, id, sender.String(), args.Price, true)
	return strptr(UInt64ToString(id))
}

// UpdateListPrice changes the asking price of a listing the sender owns.
// Payload: listingId|newPrice
func UpdateListPrice(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	args := decodePriceUpdateArgs(payload)
	lst, ok := loadListing(args.ListingID)
	if !ok {
		sdk.Revert("listing does not exist", symNotFound)
	}
	if lst.Owner != sender {
		sdk.Revert("caller does not own this listing", symNotOwner)
	}
	if args.NewPrice == 0 {
		// zero price: explicit no-op, listing stays as it was
		return strptr("price unchanged")
	}

	lst.Price = args.NewPrice
	saveListing(lst)
	emitPriceUpdatedEvent(args.ListingID, args.NewPrice)
	return strptr("price updated")
}

// Delist withdraws an active listing. The record stays queryable forever; only
// the active flag flips.
// Payload: listingId
func Delist(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	id := decodeIDPayload(payload, "listing id")
	lst, ok := loadListing(id)
	if !ok {
		sdk.Revert("listing does not exist", symNotFound)
	}
	if lst.Owner != sender {
		sdk.Revert("caller does not own this listing", symNotOwner)
	}
	if !lst.Active {
		sdk.Revert("listing is already inactive", symAlreadyInactive)
	}

	lst.Active = false
	saveListing(lst)
	emitDelistedEvent(id, sender.String())
	return strptr("delisted " + UInt64ToString(id))
}
