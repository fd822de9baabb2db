// Package config loads the HCL table configuration used by the drivers.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// TableConfig describes a table: who sits down, with what balance and
// strategy, and the buy-in every player pays.
type TableConfig struct {
	BuyIn   int            `hcl:"buy_in,optional"`
	Seed    int64          `hcl:"seed,optional"`
	Players []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig describes one seat
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Balance  int    `hcl:"balance,optional"`
	Strategy string `hcl:"strategy,optional"`
}

// DefaultTableConfig returns a four-seat demo table
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		BuyIn: 1,
		Players: []PlayerConfig{
			{Name: "Player 1", Balance: 1000, Strategy: "check"},
			{Name: "Player 2", Balance: 1000, Strategy: "check"},
			{Name: "Player 3", Balance: 1000, Strategy: "check"},
			{Name: "Player 4", Balance: 1000, Strategy: "check"},
		},
	}
}

// LoadTableConfig loads a table configuration from an HCL file, falling back
// to the default table when the file does not exist.
func LoadTableConfig(filename string) (*TableConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultTableConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config TableConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.BuyIn == 0 {
		config.BuyIn = 1
	}
	for i := range config.Players {
		if config.Players[i].Balance == 0 {
			config.Players[i].Balance = 1000
		}
		if config.Players[i].Strategy == "" {
			config.Players[i].Strategy = "check"
		}
	}

	if len(config.Players) == 0 {
		return nil, fmt.Errorf("config %s defines no players", filename)
	}

	return &config, nil
}
