package txmanager

import (
	"context"
	"sync"
)

// MutexManager менеджер для бэкендов без транзакций (in-memory store)
// Вместо транзакции БД сериализует критические секции глобальным мьютексом:
// проверка вместимости слота и запись бронирования выполняются атомарно
// в пределах процесса
type MutexManager struct {
	mu sync.Mutex
}

// NewMutexManager создает менеджер с мьютексной сериализацией
func NewMutexManager() *MutexManager {
	return &MutexManager{}
}

// Do выполняет fn под мьютексом
func (m *MutexManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn под мьютексом
func (m *MutexManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
