package models

import "errors"

// Ошибки уровня домена. Слои выше оборачивают их через %w,
// хэндлеры сопоставляют через errors.Is.
var (
	// ErrAlertNotFound - алерт с таким id не существует
	ErrAlertNotFound = errors.New("alert not found")

	// ErrAlertNotPending - попытка подтвердить/отклонить алерт не в статусе pending.
	// Защищает от повторной рассылки по уже подтверждённому алерту.
	ErrAlertNotPending = errors.New("alert is not pending")

	// ErrDuplicateSubscriber - номер телефона уже зарегистрирован
	ErrDuplicateSubscriber = errors.New("subscriber already registered")
)
