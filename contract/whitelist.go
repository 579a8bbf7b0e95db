package main

import "nft_market/sdk"

// -----------------------------------------------------------------------------
// Whitelist Gate
//
// Controls who may mint while enforcement is on. All mutations are admin-only
// and idempotent: re-adding a present address or removing an absent one is a
// quiet no-op, matching batch payload semantics.
// -----------------------------------------------------------------------------

// WhitelistAdd approves one or more addresses for minting.
// Payload: addr1;addr2;...
func WhitelistAdd(payload *string) *string {
	requireContractOwner()

	addresses := parseAddressList(unwrapPayload(payload, "whitelist payload requires addresses"))
	if len(addresses) == 0 {
		sdk.Abort("whitelist payload requires addresses")
	}
	added := uint64(0)
	for _, addr := range addresses {
		if setWhitelistEntry(addr) {
			emitWhitelistAddedEvent(addr.String())
			added++
		}
	}
	return strptr("whitelisted " + UInt64ToString(added) + " addresses")
}

// WhitelistRemove clears approvals for one or more addresses.
// Payload: addr1;addr2;...
func WhitelistRemove(payload *string) *string {
	requireContractOwner()

	addresses := parseAddressList(unwrapPayload(payload, "whitelist payload requires addresses"))
	if len(addresses) == 0 {
		sdk.Abort("whitelist payload requires addresses")
	}
	removed := uint64(0)
	for _, addr := range addresses {
		if deleteWhitelistEntry(addr) {
			emitWhitelistRemovedEvent(addr.String())
			removed++
		}
	}
	return strptr("removed " + UInt64ToString(removed) + " addresses")
}

// WhitelistInit batch-seeds the set, skipping addresses already present. Kept
// as its own entrypoint so deploy tooling can distinguish seeding from later
// curation, but it shares the add path.
// Payload: addr1;addr2;...
func WhitelistInit(payload *string) *string {
	return WhitelistAdd(payload)
}

// WhitelistEnable toggles enforcement. While disabled the mint gate treats
// every address as permitted regardless of set membership.
// Payload: 1 or 0
func WhitelistEnable(payload *string) *string {
	requireContractOwner()

	enabled := parseBoolField(unwrapPayload(payload, "whitelist enable payload required"))
	cfg := loadContractConfig()
	if cfg.WhitelistEnabled != enabled {
		cfg.WhitelistEnabled = enabled
		saveContractConfig(cfg)
		emitWhitelistEnabledEvent(enabled)
	}
	if enabled {
		return strptr("whitelist enforcement enabled")
	}
	return strptr("whitelist enforcement disabled")
}

// isMintPermitted is the gate the mint path consults: the enable flag comes
// first, set membership only matters while enforcement is on.
func isMintPermitted(addr sdk.Address) bool {
	cfg := loadContractConfig()
	if cfg == nil || !cfg.WhitelistEnabled {
		return true
	}
	return hasWhitelistEntry(addr)
}
