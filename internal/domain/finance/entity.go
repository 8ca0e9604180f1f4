package finance

import "time"

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Record represents the finance_records table. The receipt is optional;
// when present ReceiptFilename names the blob in the finance directory.
type Record struct {
	ID                  string  `gorm:"primaryKey"`
	Kind                string  `gorm:"column:kind;not null;index"`
	Amount              float64 `gorm:"not null"`
	Date                string  `gorm:"not null;index"`
	Description         string  `gorm:"not null"`
	ReceiptFilename     string
	ReceiptOriginalName string
	CreatedBy           int64 `gorm:"index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Record) TableName() string {
	return "finance_records"
}

func ValidKind(k string) bool {
	return k == KindIncome || k == KindExpense
}

// Statistics aggregates all finance records by kind.
type Statistics struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	IncomeCount  int64   `json:"income_count"`
	ExpenseCount int64   `json:"expense_count"`
	Balance      float64 `json:"balance"`
}
