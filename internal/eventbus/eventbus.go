package eventbus

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Envelope описывает универсальный контейнер события мира.
type Envelope struct {
	ID        string            // Глобально уникальный идентификатор (UUID).
	Timestamp time.Time         // Время создания события (UTC).
	Source    string            // Имя компонента-источника.
	EventType string            // Тип события (BlockPlaced, BlockRemoved…).
	Version   int               // Схема полезной нагрузки.
	Payload   []byte            // Сериализованный JSON.
	Metadata  map[string]string // Произвольные метаданные.
}

// Filter позволяет подписаться только на нужные события.
type Filter struct {
	Types   []string // Если пусто — все типы.
	Sources []string // Если пусто — все источники.
}

// Subscription возвращается при подписке; позволяет отписаться.
type Subscription interface {
	Unsubscribe()
}

// Handler потребляет события.
type Handler func(ctx context.Context, ev *Envelope)

// Stats агрегированные метрики шины.
type Stats struct {
	Published uint64
	Consumed  uint64
	Dropped   uint64
}

// EventBus определяет абстракцию шины событий.
// Реализации: in-memory (по умолчанию) и NATS JetStream.
type EventBus interface {
	Publish(ctx context.Context, ev *Envelope) error
	Subscribe(ctx context.Context, f Filter, h Handler) (Subscription, error)
	Metrics() Stats
}

//================ In-Memory implementation =================//

type subscriber struct {
	filter  Filter
	handler Handler
}

type memoryBus struct {
	mu          sync.RWMutex
	subscribers map[int]subscriber
	nextID      int
	published   uint64
	consumed    uint64
	dropped     uint64
}

// NewMemoryBus создаёт шину событий в памяти
func NewMemoryBus() EventBus {
	return &memoryBus{
		subscribers: make(map[int]subscriber),
	}
}

// Publish синхронно доставляет событие всем подходящим подписчикам.
// Событие с отменённым контекстом не доставляется и считается потерянным.
func (mb *memoryBus) Publish(ctx context.Context, ev *Envelope) error {
	if ctx != nil && ctx.Err() != nil {
		atomic.AddUint64(&mb.dropped, 1)
		return ctx.Err()
	}

	atomic.AddUint64(&mb.published, 1)

	mb.mu.RLock()
	defer mb.mu.RUnlock()

	for _, sub := range mb.subscribers {
		if !matches(sub.filter, ev) {
			continue
		}
		sub.handler(ctx, ev)
		atomic.AddUint64(&mb.consumed, 1)
	}
	return nil
}

// Subscribe регистрирует обработчик с указанным фильтром
func (mb *memoryBus) Subscribe(ctx context.Context, f Filter, h Handler) (Subscription, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	id := mb.nextID
	mb.nextID++
	mb.subscribers[id] = subscriber{filter: f, handler: h}

	return &memorySub{bus: mb, id: id}, nil
}

// Metrics возвращает агрегированные счётчики шины
func (mb *memoryBus) Metrics() Stats {
	return Stats{
		Published: atomic.LoadUint64(&mb.published),
		Consumed:  atomic.LoadUint64(&mb.consumed),
		Dropped:   atomic.LoadUint64(&mb.dropped),
	}
}

type memorySub struct {
	bus *memoryBus
	id  int
}

// Unsubscribe удаляет подписку из шины
func (ms *memorySub) Unsubscribe() {
	ms.bus.mu.Lock()
	defer ms.bus.mu.Unlock()
	delete(ms.bus.subscribers, ms.id)
}

// matches проверяет событие против фильтра подписки
func matches(f Filter, ev *Envelope) bool {
	if len(f.Types) > 0 && !contains(f.Types, ev.EventType) {
		return false
	}
	if len(f.Sources) > 0 && !contains(f.Sources, ev.Source) {
		return false
	}
	return true
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
