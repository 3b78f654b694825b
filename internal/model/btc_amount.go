package model

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// FormatBTC renders a satoshi amount in BTC with exactly 8 decimals.
// The conversion is done in integers, so it is exact for any int64 amount.
func FormatBTC(amount btcutil.Amount) string {
	sats := int64(amount)
	sign := ""
	if sats < 0 {
		sign = "-"
	}

	whole := sats / btcutil.SatoshiPerBitcoin
	frac := sats % btcutil.SatoshiPerBitcoin
	if whole < 0 {
		whole = -whole
	}
	if frac < 0 {
		frac = -frac
	}

	return fmt.Sprintf("%s%d.%08d", sign, whole, frac)
}
