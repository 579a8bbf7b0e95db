//go:build !wasip1

package sdk

import (
	"encoding/json"
	"math"
	"strconv"
)

// mockHost emulates the vsc execution host for native builds so the contract
// logic can be exercised by plain go test. State and balances live in maps,
// the env is settable per call, and Snapshot/Restore reproduce the host rule
// that an aborted call leaves no trace.
type mockHost struct {
	state    map[string]string
	balances map[string]int64
	env      envBlob
	drawn    int64
	logs     []string
}

var mock = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		state:    map[string]string{},
		balances: map[string]int64{},
	}
}

// HostError is what Abort/Revert surface natively; the test harness recovers
// it and rolls the mock back to its pre-call snapshot.
type HostError struct {
	Msg    string
	Symbol string
}

func (e *HostError) Error() string {
	return e.Symbol + ": " + e.Msg
}

// ResetMock drops all state, balances and logs for a fresh test.
func ResetMock() {
	mock = newMockHost()
}

// SetMockEnv installs the environment for the next contract call and resets
// the per-tx drawn amount used for transfer.allow accounting.
func SetMockEnv(e Env) {
	requiredAuths := make([]string, 0, len(e.Sender.RequiredAuths))
	for _, a := range e.Sender.RequiredAuths {
		requiredAuths = append(requiredAuths, a.String())
	}
	mock.env = envBlob{
		ContractId:           e.ContractId,
		TxId:                 e.TxId,
		BlockId:              e.BlockId,
		BlockHeight:          e.BlockHeight,
		Timestamp:            e.Timestamp,
		Sender:               e.Sender.Address.String(),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: []string{},
		Intents:              e.Intents,
	}
	mock.drawn = 0
}

// MockDeposit credits an account on the mock ledger, amounts in milliunits.
func MockDeposit(addr Address, amount int64, asset Asset) {
	mock.balances[balanceKey(addr.String(), asset.String())] += amount
}

// MockLogs returns every console line emitted since the last reset.
func MockLogs() []string {
	return mock.logs
}

// MockSnapshot captures state and balances so a failed call can be undone.
type MockSnapshot struct {
	state    map[string]string
	balances map[string]int64
	drawn    int64
}

// TakeMockSnapshot deep-copies the mutable host data.
func TakeMockSnapshot() *MockSnapshot {
	snap := &MockSnapshot{
		state:    make(map[string]string, len(mock.state)),
		balances: make(map[string]int64, len(mock.balances)),
		drawn:    mock.drawn,
	}
	for k, v := range mock.state {
		snap.state[k] = v
	}
	for k, v := range mock.balances {
		snap.balances[k] = v
	}
	return snap
}

// RestoreMockSnapshot rewinds state and balances to the captured point.
func RestoreMockSnapshot(snap *MockSnapshot) {
	mock.state = snap.state
	mock.balances = snap.balances
	mock.drawn = snap.drawn
}

func balanceKey(addr, asset string) string {
	return addr + "/" + asset
}

// ledgerScale matches the 3-decimal precision of hive-style assets; intent
// limits arrive as decimal strings and are compared in milliunits.
const ledgerScale = 1000

// --- host function mocks ---

func log(s *string) *string {
	mock.logs = append(mock.logs, *s)
	return s
}

func stateSetObject(key *string, value *string) *string {
	mock.state[*key] = *value
	return nil
}

func stateGetObject(key *string) *string {
	val, ok := mock.state[*key]
	if !ok {
		return nil
	}
	return &val
}

func stateDeleteObject(key *string) *string {
	delete(mock.state, *key)
	return nil
}

func getEnv(arg *string) *string {
	b, err := json.Marshal(&mock.env)
	if err != nil {
		panic(err)
	}
	s := string(b)
	return &s
}

func getEnvKey(arg *string) *string {
	switch *arg {
	case "contract.id":
		return &mock.env.ContractId
	case "tx.id":
		return &mock.env.TxId
	case "block.id":
		return &mock.env.BlockId
	case "block.timestamp":
		return &mock.env.Timestamp
	default:
		return nil
	}
}

func getBalance(arg1 *string, arg2 *string) *string {
	bal := strconv.FormatInt(mock.balances[balanceKey(*arg1, *arg2)], 10)
	return &bal
}

// hiveDraw moves funds from the current sender into the contract account,
// enforcing the caller's transfer.allow intent exactly like the host does.
func hiveDraw(arg1 *string, arg2 *string) *string {
	amount, err := strconv.ParseInt(*arg1, 10, 64)
	if err != nil || amount < 0 {
		panic(&HostError{Msg: "invalid draw amount", Symbol: "host_error"})
	}
	limit := int64(-1)
	for _, intent := range mock.env.Intents {
		if intent.Type != "transfer.allow" || intent.Args["token"] != *arg2 {
			continue
		}
		f, perr := strconv.ParseFloat(intent.Args["limit"], 64)
		if perr != nil {
			panic(&HostError{Msg: "invalid intent limit", Symbol: "host_error"})
		}
		limit = int64(math.Round(f * ledgerScale))
		break
	}
	if limit < 0 || mock.drawn+amount > limit {
		panic(&HostError{Msg: "draw exceeds transfer.allow limit", Symbol: "intent_error"})
	}
	senderKey := balanceKey(mock.env.Sender, *arg2)
	if mock.balances[senderKey] < amount {
		panic(&HostError{Msg: "insufficient sender balance", Symbol: "balance_error"})
	}
	mock.drawn += amount
	mock.balances[senderKey] -= amount
	mock.balances[balanceKey(mock.env.ContractId, *arg2)] += amount
	return nil
}

// hiveTransfer pushes funds out of the contract account.
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string {
	amount, err := strconv.ParseInt(*arg2, 10, 64)
	if err != nil || amount < 0 {
		panic(&HostError{Msg: "invalid transfer amount", Symbol: "host_error"})
	}
	contractKey := balanceKey(mock.env.ContractId, *arg3)
	if mock.balances[contractKey] < amount {
		panic(&HostError{Msg: "insufficient contract balance", Symbol: "balance_error"})
	}
	mock.balances[contractKey] -= amount
	mock.balances[balanceKey(*arg1, *arg3)] += amount
	return nil
}

func abort(msg, file *string, line, column *int32) {
	panic(&HostError{Msg: *msg, Symbol: "abort"})
}

func revert(msg, symbol *string) {
	panic(&HostError{Msg: *msg, Symbol: *symbol})
}
