package main

import (
	"testing"

	"nft_market/sdk"

	"github.com/stretchr/testify/assert"
)

const startBalance = int64(200 * AmountScale)

func TestPurchaseSplitsPaymentExactly(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 500)
	listToken(t, ct, "hive:seller", 1, "10.000")

	CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:buyer", true)

	// 10.000 splits into 0.250 fee + 0.500 royalty + 9.250 proceeds
	assert.Equal(t, int64(250), Balance(adminAddress, sdk.AssetHive))
	assert.Equal(t, startBalance+500, Balance("hive:creator", sdk.AssetHive))
	assert.Equal(t, startBalance+9250, Balance("hive:seller", sdk.AssetHive))
	assert.Equal(t, startBalance-10000, Balance("hive:buyer", sdk.AssetHive))
	// nothing sticks to the contract account
	assert.Equal(t, int64(0), Balance(ContractID, sdk.AssetHive))

	tok, _ := loadToken(1)
	assert.Equal(t, "hive:buyer", tok.Owner.String())

	res := CallContract(t, ct, "market_get_listing", "1", nil, adminAddress, true)
	assert.Contains(t, res.Ret, `"active":false`)
	assert.Contains(t, res.Ret, `"owner":"hive:buyer"`)
}

func TestPurchaseNoRoyaltySendsRemainderToSeller(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 0)
	listToken(t, ct, "hive:seller", 1, "4.000")

	CallContract(t, ct, "market_purchase", "1", transferIntent("4.000"), "hive:buyer", true)

	assert.Equal(t, int64(100), Balance(adminAddress, sdk.AssetHive))
	assert.Equal(t, startBalance, Balance("hive:creator", sdk.AssetHive))
	assert.Equal(t, startBalance+3900, Balance("hive:seller", sdk.AssetHive))
	assert.Equal(t, startBalance-4000, Balance("hive:buyer", sdk.AssetHive))
}

func TestPurchaseRejectsWrongPayment(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 500)
	listToken(t, ct, "hive:seller", 1, "10.000")

	// underpayment
	res := CallContract(t, ct, "market_purchase", "1", transferIntent("9.000"), "hive:buyer", false)
	assert.Equal(t, symIncorrectPayment, res.Symbol)
	// overpayment is just as wrong
	res = CallContract(t, ct, "market_purchase", "1", transferIntent("11.000"), "hive:buyer", false)
	assert.Equal(t, symIncorrectPayment, res.Symbol)
	// missing intent entirely
	res = CallContract(t, ct, "market_purchase", "1", nil, "hive:buyer", false)
	assert.Equal(t, symIncorrectPayment, res.Symbol)
	// wrong settlement asset
	hbdIntent := []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"token": "hbd", "limit": "10.000"},
	}}
	res = CallContract(t, ct, "market_purchase", "1", hbdIntent, "hive:buyer", false)
	assert.Equal(t, symIncorrectPayment, res.Symbol)

	// no money moved, nothing settled
	assert.Equal(t, startBalance, Balance("hive:buyer", sdk.AssetHive))
	assert.Equal(t, startBalance, Balance("hive:seller", sdk.AssetHive))
	tok, _ := loadToken(1)
	assert.Equal(t, "hive:seller", tok.Owner.String())
	lst, _ := loadListing(1)
	assert.True(t, lst.Active)
}

func TestPurchaseRejectsDelistedListing(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 0)
	listToken(t, ct, "hive:seller", 1, "10.000")
	CallContract(t, ct, "market_delist", "1", nil, "hive:seller", true)

	res := CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:buyer", false)
	assert.Equal(t, symItemNotForSale, res.Symbol)
	res = CallContract(t, ct, "market_purchase", "99", transferIntent("10.000"), "hive:buyer", false)
	assert.Equal(t, symItemNotForSale, res.Symbol)

	assert.Equal(t, startBalance, Balance("hive:buyer", sdk.AssetHive))
}

func TestPurchaseNeedsOperatorApproval(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 0)
	listToken(t, ct, "hive:seller", 1, "10.000")

	// seller pulls the market's approval after listing
	CallContract(t, ct, "token_approve_operator", ContractID+"|0", nil, "hive:seller", true)

	res := CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:buyer", false)
	assert.Equal(t, symTransferDenied, res.Symbol)
	assert.Equal(t, startBalance, Balance("hive:buyer", sdk.AssetHive))
}

func TestPurchaseRejectsStaleListing(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 0)
	listToken(t, ct, "hive:seller", 1, "10.000")

	// token walks away after listing; the listing can no longer deliver
	CallContract(t, ct, "token_transfer", "hive:seller|hive:outsider|1", nil, "hive:seller", true)

	res := CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:buyer", false)
	assert.Equal(t, symTransferDenied, res.Symbol)
	assert.Equal(t, startBalance, Balance("hive:buyer", sdk.AssetHive))
	tok, _ := loadToken(1)
	assert.Equal(t, "hive:outsider", tok.Owner.String())
}

func TestPurchaseRejectsConfiscatorySplit(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 9800, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 9900)
	listToken(t, ct, "hive:seller", 1, "10.000")

	// 98% fee plus 99% royalty cannot come out of one payment
	res := CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:buyer", false)
	assert.Equal(t, symFeeOverflow, res.Symbol)
	assert.Equal(t, startBalance, Balance("hive:buyer", sdk.AssetHive))
	lst, _ := loadListing(1)
	assert.True(t, lst.Active)
}

func TestPurchaseReentrancyGuard(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 0)
	listToken(t, ct, "hive:seller", 1, "10.000")

	sdk.StateSetObject(settlementLockKey, "1")
	res := CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:buyer", false)
	assert.Equal(t, symReentrancy, res.Symbol)
	assert.Equal(t, startBalance, Balance("hive:buyer", sdk.AssetHive))

	sdk.StateDeleteObject(settlementLockKey)
	CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:buyer", true)
	assert.Nil(t, sdk.StateGetObject(settlementLockKey))
}

func TestPurchaseRollsBackOnInsufficientFunds(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 0)
	listToken(t, ct, "hive:seller", 1, "10.000")

	// the draw itself fails inside the host; everything unwinds
	CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:pauper", false)

	tok, _ := loadToken(1)
	assert.Equal(t, "hive:seller", tok.Owner.String())
	lst, _ := loadListing(1)
	assert.True(t, lst.Active)
	assert.Nil(t, sdk.StateGetObject(settlementLockKey))
	assert.Equal(t, int64(0), Balance(ContractID, sdk.AssetHive))
}

func TestPurchasedTokenCanBeRelisted(t *testing.T) {
	ct := SetupContractTest()
	initMarket(t, ct, 250, false)
	mintToken(t, ct, "hive:creator", "hive:seller", "ipfs://art-1", 500)
	listToken(t, ct, "hive:seller", 1, "10.000")
	CallContract(t, ct, "market_purchase", "1", transferIntent("10.000"), "hive:buyer", true)

	// the new owner turns around and sells it again, royalty still flows
	lid := listToken(t, ct, "hive:buyer", 1, "20.000")
	assert.Equal(t, uint64(2), lid)
	CallContract(t, ct, "market_purchase", "2", transferIntent("20.000"), "hive:outsider", true)

	// creator received 0.500 then 1.000 royalty across the two sales
	assert.Equal(t, startBalance+500+1000, Balance("hive:creator", sdk.AssetHive))
	tok, _ := loadToken(1)
	assert.Equal(t, "hive:outsider", tok.Owner.String())
}
