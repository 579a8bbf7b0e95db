package main

import (
	"fmt"
	"strconv"

	"nft_market/sdk"
)

// emitInitEvent records who owns the market and its starting settings.
func emitInitEvent(owner string, feeBps uint64, asset string, whitelistEnabled bool) {
	sdk.Log(fmt.Sprintf(
		"ci|owner:%s|fee:%d|as:%s|wl:%s",
		owner,
		feeBps,
		asset,
		strconv.FormatBool(whitelistEnabled),
	))
}

// emitMintEvent gives explorers a neat ping without scanning full storage diffs.
func emitMintEvent(tokenId uint64, to string, creator string) {
	sdk.Log(fmt.Sprintf(
		"tm|id:%d|to:%s|by:%s",
		tokenId,
		to,
		creator,
	))
}

// emitBurnEvent signals a token leaving circulation for good.
func emitBurnEvent(tokenId uint64, owner string) {
	sdk.Log(fmt.Sprintf(
		"tb|id:%d|by:%s",
		tokenId,
		owner,
	))
}

// emitTransferEvent traces every ownership move, market-mediated or not.
func emitTransferEvent(tokenId uint64, from string, to string) {
	sdk.Log(fmt.Sprintf(
		"tt|id:%d|from:%s|to:%s",
		tokenId,
		from,
		to,
	))
}

// emitMetadataUpdatedEvent carries the token id plus the fresh URI for indexers.
func emitMetadataUpdatedEvent(tokenId uint64, uri string) {
	sdk.Log(fmt.Sprintf(
		"tu|id:%d|uri:%s",
		tokenId,
		uri,
	))
}

// emitRoyaltySetEvent spells out the new terms so auditors can track creator cuts.
func emitRoyaltySetEvent(tokenId uint64, receiver string, bps uint64) {
	sdk.Log(fmt.Sprintf(
		"tr|id:%d|rcv:%s|bps:%d",
		tokenId,
		receiver,
		bps,
	))
}

// emitApprovalEvent logs operator grants and revocations in one terse line.
func emitApprovalEvent(owner string, operator string, enabled bool) {
	sdk.Log(fmt.Sprintf(
		"ta|own:%s|op:%s|on:%s",
		owner,
		operator,
		strconv.FormatBool(enabled),
	))
}

// emitListedEvent carries the full listing tuple: asset ref, token, listing id,
// owner, price and active flag.
func emitListedEvent(assetRef string, tokenId uint64, listingId uint64, owner string, price Amount, active bool) {
	sdk.Log(fmt.Sprintf(
		"ml|ref:%s|tid:%d|lid:%d|own:%s|p:%s|a:%s",
		assetRef,
		tokenId,
		listingId,
		owner,
		AmountToString(price),
		strconv.FormatBool(active),
	))
}

// emitPriceUpdatedEvent keeps watchers current on reprices.
func emitPriceUpdatedEvent(listingId uint64, price Amount) {
	sdk.Log(fmt.Sprintf(
		"mp|lid:%d|p:%s",
		listingId,
		AmountToString(price),
	))
}

// emitDelistedEvent marks a listing withdrawn by its owner.
func emitDelistedEvent(listingId uint64, owner string) {
	sdk.Log(fmt.Sprintf(
		"md|lid:%d|by:%s",
		listingId,
		owner,
	))
}

// emitPurchaseEvent includes the full split so settlement math can be replayed from logs only.
func emitPurchaseEvent(listingId uint64, tokenId uint64, buyer string, price Amount, fee Amount, royalty Amount, proceeds Amount) {
	sdk.Log(fmt.Sprintf(
		"ms|lid:%d|tid:%d|buy:%s|p:%s|fee:%s|roy:%s|net:%s",
		listingId,
		tokenId,
		buyer,
		AmountToString(price),
		AmountToString(fee),
		AmountToString(royalty),
		AmountToString(proceeds),
	))
}

// emitWhitelistAddedEvent pings once per newly approved creator.
func emitWhitelistAddedEvent(addr string) {
	sdk.Log(fmt.Sprintf("wa|addr:%s", addr))
}

// emitWhitelistRemovedEvent mirrors the add ping for revocations.
func emitWhitelistRemovedEvent(addr string) {
	sdk.Log(fmt.Sprintf("wr|addr:%s", addr))
}

// emitWhitelistEnabledEvent logs enforcement flips.
func emitWhitelistEnabledEvent(enabled bool) {
	sdk.Log(fmt.Sprintf("we|on:%s", strconv.FormatBool(enabled)))
}

// emitFeeUpdatedEvent logs platform fee changes for fee accounting.
func emitFeeUpdatedEvent(bps uint64) {
	sdk.Log(fmt.Sprintf("mf|bps:%d", bps))
}
