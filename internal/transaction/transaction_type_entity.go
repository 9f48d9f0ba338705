package transaction

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	TypeSalary = "Salary"
	TypeBonus  = "Bonus"
	TypeFine   = "Fine"
)

// Types is the closed set accepted at intake. The lookup table carries the
// same values so the column stays constrained at the store level too.
var Types = []string{TypeSalary, TypeBonus, TypeFine}

type TransactionType struct {
	Name string `gorm:"primaryKey"`
}

func IsValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

// SeedTypes inserts the transaction type lookup rows, idempotently.
func SeedTypes(db *gorm.DB) error {
	rows := make([]TransactionType, 0, len(Types))
	for _, name := range Types {
		rows = append(rows, TransactionType{Name: name})
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
