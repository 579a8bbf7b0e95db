//go:build wasip1

package main

// Thin wasmexport shims so the host can dispatch by action name. The directive
// is only legal on wasm targets, hence the build tag; native test builds call
// the underlying functions directly.

//go:wasmexport contract_init
func exportContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport market_set_fee
func exportSetMarketFee(payload *string) *string { return SetMarketFee(payload) }

//go:wasmexport whitelist_add
func exportWhitelistAdd(payload *string) *string { return WhitelistAdd(payload) }

//go:wasmexport whitelist_remove
func exportWhitelistRemove(payload *string) *string { return WhitelistRemove(payload) }

//go:wasmexport whitelist_init
func exportWhitelistInit(payload *string) *string { return WhitelistInit(payload) }

//go:wasmexport whitelist_enable
func exportWhitelistEnable(payload *string) *string { return WhitelistEnable(payload) }

//go:wasmexport token_mint
func exportMint(payload *string) *string { return Mint(payload) }

//go:wasmexport token_burn
func exportBurn(payload *string) *string { return Burn(payload) }

//go:wasmexport token_transfer
func exportTransfer(payload *string) *string { return Transfer(payload) }

//go:wasmexport token_approve_operator
func exportApproveOperator(payload *string) *string { return ApproveOperator(payload) }

//go:wasmexport token_update_metadata
func exportUpdateMetadata(payload *string) *string { return UpdateMetadata(payload) }

//go:wasmexport token_set_royalty
func exportSetRoyalty(payload *string) *string { return SetRoyalty(payload) }

//go:wasmexport market_list
func exportList(payload *string) *string { return List(payload) }

//go:wasmexport market_update_price
func exportUpdateListPrice(payload *string) *string { return UpdateListPrice(payload) }

//go:wasmexport market_delist
func exportDelist(payload *string) *string { return Delist(payload) }

//go:wasmexport market_purchase
func exportPurchase(payload *string) *string { return Purchase(payload) }

//go:wasmexport market_get_listing
func exportGetListing(payload *string) *string { return GetListing(payload) }

//go:wasmexport market_active_listings
func exportGetActiveListings(payload *string) *string { return GetActiveListings(payload) }

//go:wasmexport market_listings_of
func exportGetListingsOf(payload *string) *string { return GetListingsOf(payload) }

//go:wasmexport token_get
func exportGetToken(payload *string) *string { return GetToken(payload) }

//go:wasmexport token_royalty_info
func exportRoyaltyInfo(payload *string) *string { return RoyaltyInfo(payload) }

//go:wasmexport whitelist_contains
func exportIsWhitelisted(payload *string) *string { return IsWhitelisted(payload) }
