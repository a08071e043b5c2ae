package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// MaxMoney is the largest amount the consensus rules allow, in smallest units.
const MaxMoney Coin = 21_000_000 * OneCoin

// NetworkParams carries the amount bounds defined by the target network.
type NetworkParams struct {
	Name         string
	SmallestUnit Coin
	MaxMoney     Coin
}

var (
	// Mainnet is the production network.
	Mainnet = NetworkParams{Name: "mainnet", SmallestUnit: Satoshi, MaxMoney: MaxMoney}
	// Testnet is the public test network.
	Testnet = NetworkParams{Name: "testnet", SmallestUnit: Satoshi, MaxMoney: MaxMoney}
	// Regtest is the local regression test network.
	Regtest = NetworkParams{Name: "regtest", SmallestUnit: Satoshi, MaxMoney: MaxMoney}
)

// Networks lists the known network presets.
func Networks() []NetworkParams {
	return []NetworkParams{Mainnet, Testnet, Regtest}
}

// NetworkByName returns the preset with the given name (case-insensitive).
func NetworkByName(name string) (NetworkParams, error) {
	for _, params := range Networks() {
		if strings.EqualFold(params.Name, name) {
			return params, nil
		}
	}
	return NetworkParams{}, zerr.With(zerr.Wrap(ErrUnknownNetwork, "failed to select network"), "network", name)
}
