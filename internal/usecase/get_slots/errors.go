package get_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// (в этом usecase - только при ошибках хранилища бронирований)
	ErrInternal = errors.New("get_slots: internal error")
)
