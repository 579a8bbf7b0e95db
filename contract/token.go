package main

import "nft_market/sdk"

// -----------------------------------------------------------------------------
// Asset Registry
//
// Ownership and creator attribution per token. Every mutation checks roles
// explicitly; there is no ambient authority beyond the admin held in config.
// -----------------------------------------------------------------------------

// Mint registers a new token. The sender becomes the creator, `to` the first
// owner. Royalty terms are optional; when the receiver slot is left empty the
// creator is the beneficiary.
// Payload: to|uri|royaltyReceiver|royaltyBps
func Mint(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	if !isMintPermitted(sender) {
		sdk.Revert("caller is not whitelisted for minting", symNotWhitelisted)
	}

	args := decodeMintArgs(payload)
	if args.URI == "" {
		sdk.Revert("metadata URI must not be empty", symEmptyMetadata)
	}
	if len(args.URI) > MaxURILength {
		sdk.Abort("metadata URI too long")
	}
	// validate royalty terms before touching the id counter so a rejected
	// mint provably leaves no trace
	if args.HasRoyalty && args.RoyaltyBps > BpsDenominator {
		sdk.Revert("royalty fraction exceeds 10000 bps", symRoyaltyTooHigh)
	}

	id := nextID(TokensCount)
	tok := Token{
		ID:      id,
		Owner:   args.To,
		Creator: sender,
		URI:     args.URI,
	}
	saveToken(&tok)

	if args.HasRoyalty {
		receiver := args.RoyaltyReceiver
		if receiver.IsEmpty() {
			receiver = sender
		}
		saveRoyalty(id, &RoyaltyTerms{Receiver: receiver, Bps: args.RoyaltyBps})
		emitRoyaltySetEvent(id, receiver.String(), args.RoyaltyBps)
	}

	emitMintEvent(id, args.To.String(), sender.String())
	return strptr(UInt64ToString(id))
}

// Burn permanently removes a token. Caller must be both current owner and
// creator; the identifier is never reissued.
// Payload: tokenId
func Burn(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	id := decodeIDPayload(payload, "token id")
	tok, ok := loadToken(id)
	if !ok {
		sdk.Revert("token does not exist", symNotFound)
	}
	if tok.Owner != sender {
		sdk.Revert("caller does not own this token", symNotOwner)
	}
	if tok.Creator != sender {
		sdk.Revert("caller did not create this token", symNotCreator)
	}

	deleteToken(id)
	deleteRoyalty(id)
	emitBurnEvent(id, sender.String())
	return strptr("burned token " + UInt64ToString(id))
}

// Transfer moves ownership. Caller must be the current owner or an approved
// operator of the `from` address.
// Payload: from|to|tokenId
func Transfer(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	args := decodeTransferArgs(payload)
	tok, ok := loadToken(args.TokenID)
	if !ok {
		sdk.Revert("token does not exist", symNotFound)
	}
	if tok.Owner != args.From {
		sdk.Revert("source does not own this token", symNotOwner)
	}
	if sender != args.From && !isApprovedForAll(args.From, sender) {
		sdk.Revert("caller may not move this token", symNotAuthorized)
	}

	moveToken(tok, args.To)
	return strptr("transferred token " + UInt64ToString(args.TokenID))
}

// moveToken is the single ownership mutation point shared by Transfer and the
// settlement engine.
func moveToken(tok *Token, to sdk.Address) {
	from := tok.Owner
	tok.Owner = to
	saveToken(tok)
	emitTransferEvent(tok.ID, from.String(), to.String())
}

// ApproveOperator grants or revokes the operator's right to move any of the
// sender's tokens (setApprovalForAll). Sellers approve the market contract
// itself before listing.
// Payload: operator|enabled
func ApproveOperator(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	args := decodeApproveArgs(payload)
	setOperatorApproval(sender, args.Operator, args.Enabled)
	emitApprovalEvent(sender.String(), args.Operator.String(), args.Enabled)
	if args.Enabled {
		return strptr("operator approved")
	}
	return strptr("operator revoked")
}

// UpdateMetadata points a token at a new URI. Restricted to a caller who is
// both current owner and creator.
// Payload: tokenId|uri
func UpdateMetadata(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	args := decodeMetadataArgs(payload)
	if args.URI == "" {
		sdk.Revert("metadata URI must not be empty", symEmptyMetadata)
	}
	if len(args.URI) > MaxURILength {
		sdk.Abort("metadata URI too long")
	}
	tok, ok := loadToken(args.TokenID)
	if !ok {
		sdk.Revert("token does not exist", symNotFound)
	}
	if tok.Owner != sender {
		sdk.Revert("caller does not own this token", symNotOwner)
	}
	if tok.Creator != sender {
		sdk.Revert("caller did not create this token", symNotCreator)
	}

	tok.URI = args.URI
	saveToken(tok)
	emitMetadataUpdatedEvent(args.TokenID, args.URI)
	return strptr("metadata updated")
}
