package main

import "nft_market/sdk"

// -----------------------------------------------------------------------------
// Token Persistence
// -----------------------------------------------------------------------------

// saveToken writes the encoded token record.
func saveToken(tok *Token) {
	sdk.StateSetObject(tokenKey(tok.ID), encodeToken(tok))
}

// loadToken fetches a token by id; the bool reports existence.
func loadToken(id uint64) (*Token, bool) {
	ptr := sdk.StateGetObject(tokenKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	tok, err := decodeToken(*ptr)
	if err != nil {
		sdk.Abort("corrupt token record")
	}
	return tok, true
}

// deleteToken removes the token record permanently. The id counter never
// rewinds, so a burned identifier can never be minted again.
func deleteToken(id uint64) {
	sdk.StateDeleteObject(tokenKey(id))
}

// -----------------------------------------------------------------------------
// Operator Approvals
// -----------------------------------------------------------------------------

// setOperatorApproval grants or clears the operator's right to move any of the
// owner's tokens.
func setOperatorApproval(owner, operator sdk.Address, enabled bool) {
	key := approvalKey(owner, operator)
	if enabled {
		sdk.StateSetObject(key, "1")
	} else {
		sdk.StateDeleteObject(key)
	}
}

// isApprovedForAll reports whether operator may move owner's tokens.
func isApprovedForAll(owner, operator sdk.Address) bool {
	ptr := sdk.StateGetObject(approvalKey(owner, operator))
	return ptr != nil && *ptr != ""
}
