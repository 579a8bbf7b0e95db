package main

import "nft_market/sdk"

// SetRoyalty updates a token's royalty fraction. Creator-only: royalty is
// creator attribution, so current ownership is deliberately not required (the
// terms would otherwise freeze the moment the creator sells).
// Payload: tokenId|fractionBps
func SetRoyalty(payload *string) *string {
	requireInitialized()
	sender := getSenderAddress()

	args := decodeRoyaltyArgs(payload)
	if args.Bps > BpsDenominator {
		sdk.Revert("royalty fraction exceeds 10000 bps", symRoyaltyTooHigh)
	}
	tok, ok := loadToken(args.TokenID)
	if !ok {
		sdk.Revert("token does not exist", symNotFound)
	}
	if tok.Creator != sender {
		sdk.Revert("caller did not create this token", symNotCreator)
	}

	receiver := sender
	if existing := loadRoyalty(args.TokenID); existing != nil && !existing.Receiver.IsEmpty() {
		receiver = existing.Receiver
	}
	saveRoyalty(args.TokenID, &RoyaltyTerms{Receiver: receiver, Bps: args.Bps})
	emitRoyaltySetEvent(args.TokenID, receiver.String(), args.Bps)
	return strptr("royalty updated")
}
