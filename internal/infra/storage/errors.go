package storage

import "errors"

// ErrBookingNotFound возвращается любым бэкендом хранилища,
// когда бронирование не найдено
// Общий сентинел, чтобы вызывающие не зависели от конкретного бэкенда
var ErrBookingNotFound = errors.New("storage: booking not found")
