package main

import (
	"github.com/CosmWasm/tinyjson/jwriter"

	"nft_market/sdk"
)

// -----------------------------------------------------------------------------
// Read Surface
//
// Pure projections, no side effects. JSON is built with tinyjson's jwriter so
// the wasm build stays free of reflection. Ordered results always ascend by
// identifier.
// -----------------------------------------------------------------------------

// buildJSON finalizes the writer, surfacing encoder errors as aborts.
func buildJSON(w *jwriter.Writer) *string {
	data, err := w.BuildBytes()
	if err != nil {
		sdk.Abort("failed to encode query result")
	}
	out := string(data)
	return &out
}

func writeListingJSON(w *jwriter.Writer, lst *Listing) {
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64(lst.ID)
	w.RawString(`,"tokenId":`)
	w.Uint64(lst.TokenID)
	w.RawString(`,"owner":`)
	w.String(lst.Owner.String())
	w.RawString(`,"price":`)
	w.String(AmountToString(lst.Price))
	w.RawString(`,"active":`)
	w.Bool(lst.Active)
	w.RawByte('}')
}

// GetListing returns one listing by id.
// Payload: listingId
func GetListing(payload *string) *string {
	requireInitialized()
	id := decodeIDPayload(payload, "listing id")
	lst, ok := loadListing(id)
	if !ok {
		sdk.Revert("listing does not exist", symNotFound)
	}
	w := jwriter.Writer{}
	writeListingJSON(&w, lst)
	return buildJSON(&w)
}

// GetActiveListings returns every active listing in ascending id order.
func GetActiveListings(payload *string) *string {
	requireInitialized()
	w := jwriter.Writer{}
	w.RawByte('[')
	first := true
	forEachListing(func(lst *Listing) {
		if !lst.Active {
			return
		}
		if !first {
			w.RawByte(',')
		}
		first = false
		writeListingJSON(&w, lst)
	})
	w.RawByte(']')
	return buildJSON(&w)
}

// GetListingsOf returns listings whose recorded owner matches the given
// address, ascending by id. An empty payload defaults to the sender.
// Payload: address (optional)
func GetListingsOf(payload *string) *string {
	requireInitialized()
	owner := getSenderAddress()
	if payload != nil {
		if raw := *payload; raw != "" {
			if addrs := parseAddressList(unwrapPayload(payload, "address payload required")); len(addrs) > 0 {
				owner = addrs[0]
			}
		}
	}
	w := jwriter.Writer{}
	w.RawByte('[')
	first := true
	forEachListing(func(lst *Listing) {
		if lst.Owner != owner {
			return
		}
		if !first {
			w.RawByte(',')
		}
		first = false
		writeListingJSON(&w, lst)
	})
	w.RawByte(']')
	return buildJSON(&w)
}

// GetToken returns one token record by id.
// Payload: tokenId
func GetToken(payload *string) *string {
	requireInitialized()
	id := decodeIDPayload(payload, "token id")
	tok, ok := loadToken(id)
	if !ok {
		sdk.Revert("token does not exist", symNotFound)
	}
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"id":`)
	w.Uint64(tok.ID)
	w.RawString(`,"owner":`)
	w.String(tok.Owner.String())
	w.RawString(`,"creator":`)
	w.String(tok.Creator.String())
	w.RawString(`,"uri":`)
	w.String(tok.URI)
	w.RawByte('}')
	return buildJSON(&w)
}

// RoyaltyInfo computes the royalty cut for a hypothetical sale price.
// Returns an empty receiver and zero amount when no terms exist.
// Payload: tokenId|salePrice
func RoyaltyInfo(payload *string) *string {
	requireInitialized()
	args := decodeRoyaltyInfoArgs(payload)
	if _, ok := loadToken(args.TokenID); !ok {
		sdk.Revert("token does not exist", symNotFound)
	}
	receiver, amount := royaltyCut(args.TokenID, args.SalePrice)
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"receiver":`)
	w.String(receiver.String())
	w.RawString(`,"amount":`)
	w.String(AmountToString(amount))
	w.RawByte('}')
	return buildJSON(&w)
}

// IsWhitelisted reports raw set membership; the enable flag is the mint
// path's concern, not this lookup's.
// Payload: address
func IsWhitelisted(payload *string) *string {
	requireInitialized()
	addr := parseAddressField(unwrapPayload(payload, "address payload required"), "address")
	if hasWhitelistEntry(addr) {
		return strptr("true")
	}
	return strptr("false")
}
