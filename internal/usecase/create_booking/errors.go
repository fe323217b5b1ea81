package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии или некорректности обязательных полей
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotFull возвращается, когда в слоте не осталось мест
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
