package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("cancel_booking: appointment not found")

	// ErrAccessDenied возвращается, когда запись отменяет не её клиент
	// и не бизнес-владелец
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrInconsistentCancellation возвращается, когда интервал уже удален,
	// а запись удалить не удалось: слот освобожден, запись осталась.
	// Требует явной сверки, обычный ретрай клиента это не чинит.
	ErrInconsistentCancellation = errors.New("cancel_booking: interval deleted but appointment delete failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
