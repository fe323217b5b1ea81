package notify

import "sync"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Task одна fire-and-forget задача уведомления
type Task struct {
	Name string       // Имя задачи для логов и метрик
	Run  func() error // Выполняется в воркере диспетчера
}

// Dispatcher неблокирующий диспетчер fire-and-forget задач
// Ограниченная очередь + фиксированное число воркеров: admission никогда
// не ждет отправки уведомлений. Ошибки задач видны только в логах и метриках,
// никогда - вызывающему. При переполнении очереди задача отбрасывается
type Dispatcher struct {
	tasks   chan Task
	log     Logger
	observe func(task, result string) // nil, если метрики выключены

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDispatcher создает диспетчер и запускает воркеров
// observe может быть nil
func NewDispatcher(queueSize, workers int, log Logger, observe func(task, result string)) *Dispatcher {
	d := &Dispatcher{
		tasks:   make(chan Task, queueSize),
		log:     log,
		observe: observe,
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Submit ставит задачу в очередь, не блокируясь
// Возвращает false, если очередь переполнена и задача отброшена
func (d *Dispatcher) Submit(task Task) bool {
	select {
	case d.tasks <- task:
		return true
	default:
		d.log.Warn("Notify dispatcher queue full; dropping task %s", task.Name)
		d.report(task.Name, "dropped")
		return false
	}
}

// Stop закрывает очередь и дожидается завершения уже принятых задач
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.tasks)
	})
	d.wg.Wait()
}

// worker выполняет задачи из очереди
func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for task := range d.tasks {
		if err := task.Run(); err != nil {
			d.log.Error("Notify task %s failed: %v", task.Name, err)
			d.report(task.Name, "error")
			continue
		}
		d.report(task.Name, "ok")
	}
}

func (d *Dispatcher) report(task, result string) {
	if d.observe != nil {
		d.observe(task, result)
	}
}
