package main

import "nft_market/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// tokenKey builds a storage key string for a token by ID.
func tokenKey(id uint64) string {
	var buf [9]byte
	buf[0] = kToken
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// royaltyKey sits in prefix 0x02 so royalty terms live next to their token.
func royaltyKey(id uint64) string {
	var buf [9]byte
	buf[0] = kRoyalty
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// listingKey builds a storage key string for a listing by ID.
func listingKey(id uint64) string {
	var buf [9]byte
	buf[0] = kListing
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// whitelistKey flags a single mint-approved address under its own prefix.
func whitelistKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kWhitelist)
	buf = append(buf, addrStr...)
	return string(buf)
}

// approvalKey mixes owner plus operator; the separator keeps variable-length
// addresses from colliding.
func approvalKey(owner, operator sdk.Address) string {
	ownerStr := owner.String()
	operatorStr := operator.String()
	buf := make([]byte, 0, 1+len(ownerStr)+1+len(operatorStr))
	buf = append(buf, kApproval)
	buf = append(buf, ownerStr...)
	buf = append(buf, '|')
	buf = append(buf, operatorStr...)
	return string(buf)
}
