package budgetservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда у пользователя нет пакета часов
	ErrUserNotFound = errors.New("user has no hours package")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("budgetservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("budgetservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что BudgetService недоступен и использован остаток часов по умолчанию
	ErrServiceDegraded = errors.New("budgetservice unavailable: graceful degradation applied")
)
