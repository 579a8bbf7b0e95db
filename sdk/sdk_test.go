//go:build !wasip1

package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testEnv(sender string, intents []Intent) Env {
	return Env{
		ContractId: "contract:market",
		TxId:       "tx-1",
		BlockId:    "block1",
		Timestamp:  "2025-09-03T00:00:00",
		Sender: Sender{
			Address:       Address(sender),
			RequiredAuths: []Address{Address(sender)},
		},
		Intents: intents,
	}
}

// expectHostError runs fn and returns the recovered HostError symbol, or "" on
// clean return.
func expectHostError(fn func()) (symbol string) {
	defer func() {
		if r := recover(); r != nil {
			if he, ok := r.(*HostError); ok {
				symbol = he.Symbol
				return
			}
			panic(r)
		}
	}()
	fn()
	return ""
}

func TestEnvRoundTrip(t *testing.T) {
	ResetMock()
	SetMockEnv(testEnv("hive:alice", []Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hive", "limit": "1.000"},
	}}))

	env := GetEnv()
	assert.Equal(t, "contract:market", env.ContractId)
	assert.Equal(t, "tx-1", env.TxId)
	assert.Equal(t, "hive:alice", env.Sender.Address.String())
	assert.Len(t, env.Sender.RequiredAuths, 1)
	assert.Len(t, env.Intents, 1)
	assert.Equal(t, "transfer.allow", env.Intents[0].Type)

	assert.Equal(t, "tx-1", *GetEnvKey("tx.id"))
	assert.Nil(t, GetEnvKey("no.such.key"))
}

func TestDrawEnforcesIntentLimit(t *testing.T) {
	ResetMock()
	MockDeposit("hive:alice", 10000, AssetHive)
	SetMockEnv(testEnv("hive:alice", []Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hive", "limit": "5.000"},
	}}))

	HiveDraw(3000, AssetHive)
	assert.Equal(t, int64(7000), GetBalance("hive:alice", AssetHive))
	assert.Equal(t, int64(3000), GetBalance("contract:market", AssetHive))

	// the limit applies to the running total within one transaction
	sym := expectHostError(func() { HiveDraw(2001, AssetHive) })
	assert.Equal(t, "intent_error", sym)

	// no intent at all
	SetMockEnv(testEnv("hive:alice", nil))
	sym = expectHostError(func() { HiveDraw(1, AssetHive) })
	assert.Equal(t, "intent_error", sym)
}

func TestDrawRequiresSenderFunds(t *testing.T) {
	ResetMock()
	SetMockEnv(testEnv("hive:pauper", []Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hive", "limit": "5.000"},
	}}))

	sym := expectHostError(func() { HiveDraw(1000, AssetHive) })
	assert.Equal(t, "balance_error", sym)
}

func TestTransferRequiresContractFunds(t *testing.T) {
	ResetMock()
	SetMockEnv(testEnv("hive:alice", nil))

	sym := expectHostError(func() { HiveTransfer("hive:bob", 1, AssetHive) })
	assert.Equal(t, "balance_error", sym)

	MockDeposit("contract:market", 500, AssetHive)
	HiveTransfer("hive:bob", 500, AssetHive)
	assert.Equal(t, int64(500), GetBalance("hive:bob", AssetHive))
	assert.Equal(t, int64(0), GetBalance("contract:market", AssetHive))
}

func TestSnapshotRestoreUndoesEverything(t *testing.T) {
	ResetMock()
	MockDeposit("hive:alice", 10000, AssetHive)
	SetMockEnv(testEnv("hive:alice", []Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hive", "limit": "5.000"},
	}}))
	StateSetObject("count:tok", "3")

	snap := TakeMockSnapshot()
	StateSetObject("count:tok", "9")
	StateDeleteObject("count:tok")
	HiveDraw(5000, AssetHive)

	RestoreMockSnapshot(snap)
	assert.Equal(t, "3", *StateGetObject("count:tok"))
	assert.Equal(t, int64(10000), GetBalance("hive:alice", AssetHive))
	assert.Equal(t, int64(0), GetBalance("contract:market", AssetHive))

	// drawn allowance rewinds with the snapshot, the full limit is available again
	HiveDraw(5000, AssetHive)
	assert.Equal(t, int64(5000), GetBalance("contract:market", AssetHive))
}

func TestRevertCarriesSymbol(t *testing.T) {
	ResetMock()
	sym := expectHostError(func() { Revert("nope", "not_owner") })
	assert.Equal(t, "not_owner", sym)
	sym = expectHostError(func() { Abort("boom") })
	assert.Equal(t, "abort", sym)
}

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:market").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:burn").Domain())
	assert.True(t, Address("").IsEmpty())
}
