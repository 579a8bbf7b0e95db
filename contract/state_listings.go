package main

import "nft_market/sdk"

// -----------------------------------------------------------------------------
// Listing Persistence
// -----------------------------------------------------------------------------

// saveListing writes the encoded listing record. Listings are never deleted so
// history stays queryable after delist or purchase.
func saveListing(lst *Listing) {
	sdk.StateSetObject(listingKey(lst.ID), encodeListing(lst))
}

// loadListing fetches a listing by id; the bool reports existence.
func loadListing(id uint64) (*Listing, bool) {
	ptr := sdk.StateGetObject(listingKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	lst, err := decodeListing(*ptr)
	if err != nil {
		sdk.Abort("corrupt listing record")
	}
	return lst, true
}

// listingCount reads the high-water mark of issued listing ids.
func listingCount() uint64 {
	return getCount(ListingsCount)
}

// forEachListing walks all issued listings in ascending id order.
func forEachListing(fn func(*Listing)) {
	max := listingCount()
	for id := uint64(1); id <= max; id++ {
		if lst, ok := loadListing(id); ok {
			fn(lst)
		}
	}
}
