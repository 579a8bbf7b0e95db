package main

import "nft_market/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the settlement assets the market can be initialized with.
var validAssets = []string{
	sdk.AssetHive.String(),
	sdk.AssetHbd.String(),
}

// -----------------------------------------------------------------------------
// Fee / Royalty Arithmetic
// -----------------------------------------------------------------------------

const (
	// BpsDenominator is the basis-point scale: 10000 = 100%.
	BpsDenominator = 10000
	// MaxURILength limits the size of metadata pointers.
	MaxURILength = 500
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// TokensCount holds an integer counter for tokens (used for generating IDs).
	TokensCount = "count:tok"
	// ListingsCount holds an integer counter for listings (used for generating IDs).
	ListingsCount = "count:lst"
)

// -----------------------------------------------------------------------------
// Singleton Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey stores the encoded ContractConfig.
	ContractConfigKey = "cfg:contract"
	// settlementLockKey flags an in-flight purchase; a second entry while the
	// flag is set is a reentrant call and must fail.
	settlementLockKey = "lock:settlement"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kToken stores encoded Token records.
	kToken byte = 0x01
	// kRoyalty stores encoded RoyaltyTerms per token.
	kRoyalty byte = 0x02
	// kWhitelist flags addresses allowed to mint while enforcement is on.
	kWhitelist byte = 0x06
	// kApproval flags operator approvals (owner may delegate transfers).
	kApproval byte = 0x08
	// kListing contains encoded Listing records.
	kListing byte = 0x10
)

// -----------------------------------------------------------------------------
// Revert Symbols
// -----------------------------------------------------------------------------

// Classified rejection symbols; callers branch on these, not the message text.
const (
	symUnauthorized     = "unauthorized"
	symNotWhitelisted   = "not_whitelisted"
	symEmptyMetadata    = "empty_metadata"
	symRoyaltyTooHigh   = "royalty_too_high"
	symFeeTooHigh       = "fee_too_high"
	symNotOwner         = "not_owner"
	symNotCreator       = "not_creator"
	symNotAuthorized    = "not_authorized"
	symNotFound         = "not_found"
	symItemNotForSale   = "item_not_for_sale"
	symIncorrectPayment = "incorrect_payment"
	symTransferDenied   = "transfer_not_authorized"
	symAlreadyInactive  = "already_inactive"
	symFeeOverflow      = "fee_overflow"
	symReentrancy       = "reentrancy"
	symInputError       = "input_error"
)
