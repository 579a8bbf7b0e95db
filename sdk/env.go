package sdk

// Env is the per-transaction execution environment handed to the contract by
// the host. Sender is the account whose auths signed the operation.
type Env struct {
	ContractId  string
	TxId        string
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Intents     []Intent
}

// envBlob mirrors the flat JSON layout of the host env payload.
type envBlob struct {
	ContractId           string   `json:"contract.id"`
	TxId                 string   `json:"tx.id"`
	BlockId              string   `json:"block.id"`
	BlockHeight          uint64   `json:"block.height"`
	Timestamp            string   `json:"block.timestamp"`
	Sender               string   `json:"msg.sender"`
	RequiredAuths        []string `json:"msg.required_auths"`
	RequiredPostingAuths []string `json:"msg.required_posting_auths"`
	Intents              []Intent `json:"intents"`
}

// toEnv lifts the flat blob into the typed Env used everywhere else.
func (b *envBlob) toEnv() Env {
	requiredAuths := make([]Address, 0, len(b.RequiredAuths))
	for _, auth := range b.RequiredAuths {
		requiredAuths = append(requiredAuths, Address(auth))
	}
	requiredPostingAuths := make([]Address, 0, len(b.RequiredPostingAuths))
	for _, auth := range b.RequiredPostingAuths {
		requiredPostingAuths = append(requiredPostingAuths, Address(auth))
	}
	return Env{
		ContractId:  b.ContractId,
		TxId:        b.TxId,
		BlockId:     b.BlockId,
		BlockHeight: b.BlockHeight,
		Timestamp:   b.Timestamp,
		Sender: Sender{
			Address:              Address(b.Sender),
			RequiredAuths:        requiredAuths,
			RequiredPostingAuths: requiredPostingAuths,
		},
		Intents: b.Intents,
	}
}
