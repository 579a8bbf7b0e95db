package main

import (
	"strconv"
	"strings"

	"nft_market/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := decodeContractConfig(*ptr)
	if cfg == nil {
		sdk.Abort("corrupt contract config")
	}
	return cfg
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// isContractOwner returns true if the given address is the contract admin.
func isContractOwner(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Owner == addr
}

// requireContractOwner rejects the call when the sender lacks the admin role.
func requireContractOwner() {
	requireInitialized()
	if !isContractOwner(getSenderAddress()) {
		sdk.Revert("caller is not the contract admin", symUnauthorized)
	}
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner|marketFeeBps|asset|whitelistEnabled
func encodeContractConfig(cfg *ContractConfig) string {
	enabledStr := "0"
	if cfg.WhitelistEnabled {
		enabledStr = "1"
	}
	return cfg.Owner.String() + "|" +
		strconv.FormatUint(cfg.MarketFeeBps, 10) + "|" +
		cfg.Asset.String() + "|" +
		enabledStr
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 4 {
		return nil
	}
	fee, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil
	}
	return &ContractConfig{
		Owner:            sdk.Address(parts[0]),
		MarketFeeBps:     fee,
		Asset:            sdk.Asset(parts[2]),
		WhitelistEnabled: parts[3] == "1",
	}
}
