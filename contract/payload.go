package main

import (
	"fmt"
	"strconv"
	"strings"

	"nft_market/sdk"
)

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseUintField is the uint variant used for ids and bps values.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseAmountField converts a decimal asset amount into the scaled int form.
// Negative values never make sense for prices or payments, so they abort.
func parseAmountField(val string, field string) Amount {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f < 0 {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return FloatToAmount(f)
}

// parseBoolField accepts a couple of truthy keywords, defaulting to false for unknown text.
func parseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// parseAddressField requires a non-empty address in the given slot.
func parseAddressField(val string, field string) sdk.Address {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort(fmt.Sprintf("missing %s", field))
	}
	return sdk.Address(val)
}

// parseAddressList accepts comma/semicolon separated addresses and normalizes them.
func parseAddressList(val string) []sdk.Address {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	parts := strings.FieldsFunc(val, func(r rune) bool {
		return r == ';' || r == ',' || r == '\n' || r == '\t'
	})
	seen := map[string]struct{}{}
	addresses := make([]sdk.Address, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		addresses = append(addresses, sdk.Address(part))
	}
	if len(addresses) == 0 {
		return nil
	}
	return addresses
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }

// -----------------------------------------------------------------------------
// Per-call argument decoders
// -----------------------------------------------------------------------------

type InitArgs struct {
	MarketFeeBps     uint64
	Asset            sdk.Asset
	WhitelistEnabled bool
}

// decodeInitArgs unpacks `feeBps|asset|whitelistEnabled` for contract_init.
func decodeInitArgs(payload *string) *InitArgs {
	raw := unwrapPayload(payload, "init payload requires feeBps|asset|whitelistEnabled")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("init payload requires feeBps|asset|whitelistEnabled")
	}
	asset := strings.TrimSpace(parts[1])
	if !isValidAsset(asset) {
		sdk.Abort(fmt.Sprintf("unsupported settlement asset: %s", asset))
	}
	args := &InitArgs{
		MarketFeeBps: parseUintField(parts[0], "market fee"),
		Asset:        sdk.Asset(asset),
	}
	if len(parts) > 2 {
		args.WhitelistEnabled = parseBoolField(parts[2])
	}
	return args
}

type MintArgs struct {
	To              sdk.Address
	URI             string
	RoyaltyReceiver sdk.Address
	RoyaltyBps      uint64
	HasRoyalty      bool
}

// decodeMintArgs unpacks `to|uri|royaltyReceiver|royaltyBps`; the royalty pair is optional.
func decodeMintArgs(payload *string) *MintArgs {
	raw := unwrapPayload(payload, "mint payload requires to|uri")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("mint payload requires to|uri")
	}
	args := &MintArgs{
		To:  parseAddressField(parts[0], "mint recipient"),
		URI: strings.TrimSpace(parts[1]),
	}
	if len(parts) > 3 && strings.TrimSpace(parts[3]) != "" {
		args.RoyaltyReceiver = sdk.Address(strings.TrimSpace(parts[2]))
		args.RoyaltyBps = parseUintField(parts[3], "royalty fraction")
		args.HasRoyalty = true
	}
	return args
}

type TransferArgs struct {
	From    sdk.Address
	To      sdk.Address
	TokenID uint64
}

// decodeTransferArgs unpacks `from|to|tokenId`.
func decodeTransferArgs(payload *string) *TransferArgs {
	raw := unwrapPayload(payload, "transfer payload requires from|to|tokenId")
	parts := strings.Split(raw, "|")
	if len(parts) < 3 {
		sdk.Abort("transfer payload requires from|to|tokenId")
	}
	return &TransferArgs{
		From:    parseAddressField(parts[0], "transfer source"),
		To:      parseAddressField(parts[1], "transfer recipient"),
		TokenID: parseUintField(parts[2], "token id"),
	}
}

type ApproveArgs struct {
	Operator sdk.Address
	Enabled  bool
}

// decodeApproveArgs unpacks `operator|enabled`.
func decodeApproveArgs(payload *string) *ApproveArgs {
	raw := unwrapPayload(payload, "approval payload requires operator|enabled")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("approval payload requires operator|enabled")
	}
	return &ApproveArgs{
		Operator: parseAddressField(parts[0], "operator"),
		Enabled:  parseBoolField(parts[1]),
	}
}

type MetadataArgs struct {
	TokenID uint64
	URI     string
}

// decodeMetadataArgs unpacks `tokenId|uri`.
func decodeMetadataArgs(payload *string) *MetadataArgs {
	raw := unwrapPayload(payload, "metadata payload requires tokenId|uri")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("metadata payload requires tokenId|uri")
	}
	return &MetadataArgs{
		TokenID: parseUintField(parts[0], "token id"),
		URI:     strings.TrimSpace(parts[1]),
	}
}

type RoyaltyArgs struct {
	TokenID uint64
	Bps     uint64
}

// decodeRoyaltyArgs unpacks `tokenId|fractionBps`.
func decodeRoyaltyArgs(payload *string) *RoyaltyArgs {
	raw := unwrapPayload(payload, "royalty payload requires tokenId|fractionBps")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("royalty payload requires tokenId|fractionBps")
	}
	return &RoyaltyArgs{
		TokenID: parseUintField(parts[0], "token id"),
		Bps:     parseUintField(parts[1], "royalty fraction"),
	}
}

type ListArgs struct {
	TokenID uint64
	Price   Amount
}

// decodeListArgs unpacks `tokenId|price`.
func decodeListArgs(payload *string) *ListArgs {
	raw := unwrapPayload(payload, "list payload requires tokenId|price")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("list payload requires tokenId|price")
	}
	return &ListArgs{
		TokenID: parseUintField(parts[0], "token id"),
		Price:   parseAmountField(parts[1], "price"),
	}
}

type PriceUpdateArgs struct {
	ListingID uint64
	NewPrice  Amount
}

// decodePriceUpdateArgs unpacks `listingId|newPrice`.
func decodePriceUpdateArgs(payload *string) *PriceUpdateArgs {
	raw := unwrapPayload(payload, "price payload requires listingId|newPrice")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("price payload requires listingId|newPrice")
	}
	return &PriceUpdateArgs{
		ListingID: parseUintField(parts[0], "listing id"),
		NewPrice:  parseAmountField(parts[1], "price"),
	}
}

// decodeIDPayload reads a single numeric identifier.
func decodeIDPayload(payload *string, field string) uint64 {
	raw := unwrapPayload(payload, fmt.Sprintf("payload requires a %s", field))
	return parseUintField(raw, field)
}

type RoyaltyInfoArgs struct {
	TokenID   uint64
	SalePrice Amount
}

// decodeRoyaltyInfoArgs unpacks `tokenId|salePrice`.
func decodeRoyaltyInfoArgs(payload *string) *RoyaltyInfoArgs {
	raw := unwrapPayload(payload, "royalty info payload requires tokenId|salePrice")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("royalty info payload requires tokenId|salePrice")
	}
	return &RoyaltyInfoArgs{
		TokenID:   parseUintField(parts[0], "token id"),
		SalePrice: parseAmountField(parts[1], "sale price"),
	}
}
