package slot

import "errors"

var (
	// ErrSlotTaken возвращается, когда интервал с таким началом уже занят
	// (сработало условие уникальности при вставке)
	ErrSlotTaken = errors.New("slot.repository: slot already taken")

	// ErrIntervalNotFound возвращается, когда интервал не найден
	ErrIntervalNotFound = errors.New("slot.repository: booked interval not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
