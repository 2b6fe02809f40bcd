package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных.
	// Валидация отрабатывает до любого обращения к хранилищу.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrTimeConversion возвращается, когда дату и время запроса
	// невозможно собрать в корректный интервал
	ErrTimeConversion = errors.New("create_booking: cannot convert requested date/time")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время начала вне рабочих часов
	// или не выровнено по сетке слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда запрошенный интервал пересекается
	// с уже занятым (в том числе при проигрыше конкурентной вставки)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrPartialBooking возвращается, когда запись создана, а её интервал
	// записать не удалось. Состояние требует явной сверки: оркестратор сам
	// не ретраит и не удаляет осиротевшую запись.
	ErrPartialBooking = errors.New("create_booking: appointment written but interval write failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
