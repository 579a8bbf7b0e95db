package main

import "nft_market/sdk"

// setWhitelistEntry stores a mint approval, reporting false when already present.
func setWhitelistEntry(addr sdk.Address) bool {
	key := whitelistKey(addr)
	if existing := sdk.StateGetObject(key); existing != nil && *existing != "" {
		return false
	}
	sdk.StateSetObject(key, "1")
	return true
}

// deleteWhitelistEntry removes a mint approval and reports whether it existed.
func deleteWhitelistEntry(addr sdk.Address) bool {
	key := whitelistKey(addr)
	existing := sdk.StateGetObject(key)
	if existing == nil || *existing == "" {
		return false
	}
	sdk.StateDeleteObject(key)
	return true
}

// hasWhitelistEntry reports raw set membership, ignoring the enable flag.
func hasWhitelistEntry(addr sdk.Address) bool {
	key := whitelistKey(addr)
	existing := sdk.StateGetObject(key)
	return existing != nil && *existing != ""
}
