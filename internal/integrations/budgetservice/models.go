package budgetservice

// RemainingHours остаток оплаченных часов пользователя
type RemainingHours struct {
	UserID         int64   `json:"user_id"`
	RemainingHours float64 `json:"remaining_hours"`
}

// ErrorResponse модель ошибки от BudgetService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
