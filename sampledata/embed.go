// Package sampledata holds the sample buyers and suppliers tables used when
// reltable is run without any input files.
package sampledata

import "embed"

//go:embed *.csv
var Content embed.FS

const (
	BuyersFile    = "buyers.csv"
	SuppliersFile = "suppliers.csv"
)
