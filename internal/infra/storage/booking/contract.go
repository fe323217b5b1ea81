package booking

import "github.com/silkebeauty/SB-BookingService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB и *sql.Tx через txmanager
type DBExecutor = txmanager.Executor
