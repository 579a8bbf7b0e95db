package main

import (
	"fmt"
	"strconv"
	"testing"

	"nft_market/sdk"

	"github.com/stretchr/testify/assert"
)

const ContractID = "contract:market"
const adminAddress = "hive:admin"
const defaultTimestamp = "2025-09-03T00:00:00"

// actions maps host action names onto the contract entrypoints, mirroring the
// wasmexport table for native test dispatch.
var actions = map[string]func(*string) *string{
	"contract_init":          ContractInit,
	"market_set_fee":         SetMarketFee,
	"whitelist_add":          WhitelistAdd,
	"whitelist_remove":       WhitelistRemove,
	"whitelist_init":         WhitelistInit,
	"whitelist_enable":       WhitelistEnable,
	"whitelist_contains":     IsWhitelisted,
	"token_mint":             Mint,
	"token_burn":             Burn,
	"token_transfer":         Transfer,
	"token_approve_operator": ApproveOperator,
	"token_update_metadata":  UpdateMetadata,
	"token_set_royalty":      SetRoyalty,
	"token_get":              GetToken,
	"token_royalty_info":     RoyaltyInfo,
	"market_list":            List,
	"market_update_price":    UpdateListPrice,
	"market_delist":          Delist,
	"market_purchase":        Purchase,
	"market_get_listing":     GetListing,
	"market_active_listings": GetActiveListings,
	"market_listings_of":     GetListingsOf,
}

// ContractTest drives entrypoints against the mock host, snapshotting before
// every call so failed calls leave no trace, exactly like the chain host.
type ContractTest struct {
	txSeq uint64
}

// SetupContractTest resets the mock host and funds the usual suspects.
func SetupContractTest() *ContractTest {
	sdk.ResetMock()
	ct := &ContractTest{}
	ct.Deposit("hive:creator", 200, sdk.AssetHive)
	ct.Deposit("hive:seller", 200, sdk.AssetHive)
	ct.Deposit("hive:buyer", 200, sdk.AssetHive)
	ct.Deposit("hive:outsider", 200, sdk.AssetHive)
	return ct
}

// Deposit credits an account, amount given in whole asset units.
func (ct *ContractTest) Deposit(addr string, amount float64, asset sdk.Asset) {
	sdk.MockDeposit(sdk.Address(addr), int64(FloatToAmount(amount)), asset)
}

// Balance reads the mock ledger in milliunits.
func Balance(addr string, asset sdk.Asset) int64 {
	return sdk.GetBalance(sdk.Address(addr), asset)
}

// TxResult carries the outcome of one simulated contract call.
type TxResult struct {
	Success bool
	Ret     string
	Symbol  string
}

// CallContract executes a contract action and asserts the expected outcome.
func CallContract(t *testing.T, ct *ContractTest, action string, payload string, intents []sdk.Intent, authUser string, expectedResult bool) TxResult {
	t.Helper()
	return callContractAt(t, ct, action, payload, intents, authUser, expectedResult, defaultTimestamp)
}

// callContractAt performs the real invocation with snapshot/rollback on failure.
func callContractAt(t *testing.T, ct *ContractTest, action string, payload string, intents []sdk.Intent, authUser string, expectedResult bool, timestamp string) TxResult {
	t.Helper()
	fn, ok := actions[action]
	if !ok {
		t.Fatalf("unknown contract action %q", action)
	}

	ct.txSeq++
	sdk.SetMockEnv(sdk.Env{
		ContractId: ContractID,
		TxId:       fmt.Sprintf("%s-tx-%d", action, ct.txSeq),
		BlockId:    "block1",
		Timestamp:  timestamp,
		Sender: sdk.Sender{
			Address:       sdk.Address(authUser),
			RequiredAuths: []sdk.Address{sdk.Address(authUser)},
		},
		Intents: intents,
	})

	snap := sdk.TakeMockSnapshot()
	var res TxResult
	func() {
		defer func() {
			if r := recover(); r != nil {
				sdk.RestoreMockSnapshot(snap)
				if he, isHost := r.(*sdk.HostError); isHost {
					res = TxResult{Success: false, Ret: he.Msg, Symbol: he.Symbol}
					return
				}
				panic(r)
			}
		}()
		ret := fn(&payload)
		res = TxResult{Success: true}
		if ret != nil {
			res.Ret = *ret
		}
	}()

	if expectedResult {
		assert.True(t, res.Success, "contract action failed with "+res.Ret)
	} else {
		assert.False(t, res.Success, "contract action did not fail (as expected)")
	}
	return res
}

// transferIntent builds the payment allowance buyers attach to purchases.
func transferIntent(limit string) []sdk.Intent {
	return []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hive", "limit": limit},
	}}
}

// initMarket initializes the contract with the admin as sender.
func initMarket(t *testing.T, ct *ContractTest, feeBps uint64, whitelistOn bool) {
	t.Helper()
	wl := "0"
	if whitelistOn {
		wl = "1"
	}
	payload := fmt.Sprintf("%d|hive|%s", feeBps, wl)
	CallContract(t, ct, "contract_init", payload, nil, adminAddress, true)
}

// mintToken mints for `owner` via `creator` and returns the fresh token id.
func mintToken(t *testing.T, ct *ContractTest, creator, owner, uri string, royaltyBps uint64) uint64 {
	t.Helper()
	payload := fmt.Sprintf("%s|%s", owner, uri)
	if royaltyBps > 0 {
		payload = fmt.Sprintf("%s|%s|%s|%d", owner, uri, creator, royaltyBps)
	}
	res := CallContract(t, ct, "token_mint", payload, nil, creator, true)
	id, err := strconv.ParseUint(res.Ret, 10, 64)
	if err != nil {
		t.Fatalf("mint returned non-numeric id %q", res.Ret)
	}
	return id
}

// listToken approves the market as operator and lists the token, returning the
// listing id.
func listToken(t *testing.T, ct *ContractTest, seller string, tokenID uint64, price string) uint64 {
	t.Helper()
	CallContract(t, ct, "token_approve_operator", ContractID+"|1", nil, seller, true)
	res := CallContract(t, ct, "market_list", fmt.Sprintf("%d|%s", tokenID, price), nil, seller, true)
	id, err := strconv.ParseUint(res.Ret, 10, 64)
	if err != nil {
		t.Fatalf("list returned non-numeric id %q", res.Ret)
	}
	return id
}
