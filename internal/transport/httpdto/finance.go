package httpdto

// FinanceRecordForm is the multipart form for POST and PUT on
// /api/finance/records. The receipt file travels alongside it.
type FinanceRecordForm struct {
	Type        string `form:"type" binding:"required"`
	Amount      float64 `form:"amount" binding:"required"`
	Date        string `form:"date" binding:"required"`
	Description string `form:"description" binding:"required"`
}
