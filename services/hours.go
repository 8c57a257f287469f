package services

import (
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Balances are kept to hundredths of an hour. Every write rounds in SQL so a
// balance is always the nearest float to a two-decimal value, and anything
// below hoursEpsilon counts as empty.
const hoursEpsilon = 0.005

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// balanceMinus and balancePlus are the debit and refund expressions for
// remaining_hours. CAST to NUMERIC lets postgres round a double.
func balanceMinus(h float64) clause.Expr {
	return gorm.Expr("ROUND(CAST(remaining_hours - ? AS NUMERIC), 2)", h)
}

func balancePlus(h float64) clause.Expr {
	return gorm.Expr("ROUND(CAST(remaining_hours + ? AS NUMERIC), 2)", h)
}
