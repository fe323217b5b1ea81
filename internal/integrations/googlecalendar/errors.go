package googlecalendar

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе календаря
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")
)
