package world

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/MuzzammilShah/Minecraft-World/internal/eventbus"
	"github.com/MuzzammilShah/Minecraft-World/internal/logging"
	"github.com/MuzzammilShah/Minecraft-World/internal/scene"
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// WorldManager владеет коллекцией блоков и обрабатывает входные события.
// Все мутации выполняются последовательно из цикла обработки событий;
// мьютекс защищает конкурентное чтение со стороны REST API.
type WorldManager struct {
	mu        sync.RWMutex
	blocks    map[vec.Vec3]Block // Коллекция блоков мира
	heights   HeightMap          // Карта высот, неизменяемая после Build
	generator *TerrainGenerator  // Генератор ландшафта
	table     BlockTypeTable     // Таблица выбора материала по высоте
	graph     scene.Graph        // Граница сцены движка
	selected  block.BlockID      // Активный материал для установки
	bedrockY  int                // Уровень неразрушаемого слоя
	width     int
	depth     int

	inputEvents chan InputEvent
	ctx         context.Context
	cancelFunc  context.CancelFunc
	tracer      trace.Tracer
	log         *logging.Logger // Логгер компонента мира
}

// NewWorldManager создаёт менеджер мира с указанным генератором и сценой
func NewWorldManager(generator *TerrainGenerator, table BlockTypeTable, graph scene.Graph, width, depth, bedrockY int) *WorldManager {
	ctx, cancel := context.WithCancel(context.Background())

	return &WorldManager{
		blocks:      make(map[vec.Vec3]Block),
		generator:   generator,
		table:       table,
		graph:       graph,
		selected:    block.GrassBlockID, // Материал по умолчанию
		bedrockY:    bedrockY,
		width:       width,
		depth:       depth,
		inputEvents: make(chan InputEvent, 256),
		ctx:         ctx,
		cancelFunc:  cancel,
		tracer:      otel.Tracer("sandbox/world"),
		log:         logging.GetLoggerManager().MustGetLogger("world"),
	}
}

// Build генерирует карту высот и заполняет мир блоками.
// Для каждой ячейки ставится поверхностный блок на высоте из карты,
// под ним колонна подземных блоков до бедрока: два слоя земли сразу
// под поверхностью, глубже камень, на уровне bedrockY — бедрок.
func (wm *WorldManager) Build(ctx context.Context) {
	ctx, span := wm.tracer.Start(ctx, "world.Build")
	defer span.End()

	start := time.Now()
	hm := wm.generator.Generate(wm.width, wm.depth)

	wm.mu.Lock()
	wm.heights = hm
	for pos2, height := range hm {
		// Поверхностный блок по таблице материалов
		wm.registerBlockLocked(vec.FromVec2(pos2, height), wm.table.MaterialFor(height))

		// Колонна подземных блоков до бедрока
		for y := height - 1; y > wm.bedrockY; y-- {
			underground := block.StoneBlockID
			if height-y <= 2 {
				underground = block.DirtBlockID
			}
			wm.registerBlockLocked(vec.FromVec2(pos2, y), underground)
		}

		// Неразрушаемое основание
		wm.registerBlockLocked(vec.FromVec2(pos2, wm.bedrockY), block.BedrockBlockID)
	}
	count := len(wm.blocks)
	wm.mu.Unlock()

	span.SetAttributes(
		attribute.Int("world.columns", hm.Size()),
		attribute.Int("world.blocks", count),
	)
	wm.log.Info("🌍 Мир построен: %d колонн, %d блоков за %v", hm.Size(), count, time.Since(start))
}

// registerBlockLocked создаёт блок и регистрирует его в сцене.
// Вызывается только под write lock; занятые позиции пропускаются.
func (wm *WorldManager) registerBlockLocked(pos vec.Vec3, id block.BlockID) {
	if _, occupied := wm.blocks[pos]; occupied {
		return
	}

	texture := ""
	if behavior, exists := block.Get(id); exists {
		texture = behavior.Texture()
	}

	entityID := wm.graph.RegisterEntity(pos, texture)
	wm.blocks[pos] = Block{ID: id, Pos: pos, EntityID: entityID}
	blocksActive.Set(float64(len(wm.blocks)))
}

// Run запускает цикл обработки входных событий.
// События обрабатываются строго по одному, каждое до завершения.
func (wm *WorldManager) Run(parentCtx context.Context) {
	if parentCtx != nil {
		// Освобождаем контекст, созданный конструктором
		wm.cancelFunc()
		childCtx, cancel := context.WithCancel(parentCtx)
		wm.ctx = childCtx
		wm.cancelFunc = cancel
	}

	go wm.processInputEvents()
}

// Stop останавливает цикл обработки событий
func (wm *WorldManager) Stop() {
	wm.cancelFunc()
}

// Submit ставит входное событие в очередь обработки
func (wm *WorldManager) Submit(ev InputEvent) {
	select {
	case wm.inputEvents <- ev:
	default:
		wm.log.Warn("Очередь входных событий переполнена, событие %T отброшено", ev)
	}
}

// processInputEvents обрабатывает входные события из очереди
func (wm *WorldManager) processInputEvents() {
	for {
		select {
		case <-wm.ctx.Done():
			return
		case event := <-wm.inputEvents:
			wm.HandleInput(wm.ctx, event)
		}
	}
}

// HandleInput выполняет одно входное событие до завершения.
// Все отказы (занятая позиция, бедрок, пустая ячейка) — тихие no-op.
func (wm *WorldManager) HandleInput(ctx context.Context, event InputEvent) {
	switch e := event.(type) {
	case LeftClickEvent:
		wm.PlaceAdjacent(ctx, e.Target, e.Normal, wm.SelectedMaterial())
	case RightClickEvent:
		wm.RemoveBlock(ctx, e.Target)
	case MaterialKeyEvent:
		wm.selectMaterial(e.Key)
	default:
		wm.log.Warn("Неизвестный тип входного события: %T", event)
	}
}

// PlaceAdjacent ставит блок в ячейку, соседнюю с pos вдоль нормали
// кликнутой грани. Возвращает false, если клик пришёлся не по блоку
// или целевая позиция уже занята.
func (wm *WorldManager) PlaceAdjacent(ctx context.Context, pos, normal vec.Vec3, material block.BlockID) bool {
	ctx, span := wm.tracer.Start(ctx, "world.PlaceAdjacent")
	defer span.End()

	if !block.IsValidBlockID(material) || material == block.AirBlockID {
		placementsRejectedTotal.Inc()
		return false
	}

	target := pos.Add(normal)

	wm.mu.Lock()
	if _, exists := wm.blocks[pos]; !exists {
		// Клик по несуществующему блоку
		wm.mu.Unlock()
		placementsRejectedTotal.Inc()
		return false
	}
	if _, occupied := wm.blocks[target]; occupied {
		// Позиция занята — тихий no-op
		wm.mu.Unlock()
		placementsRejectedTotal.Inc()
		return false
	}
	wm.registerBlockLocked(target, material)
	wm.mu.Unlock()

	if behavior, exists := block.Get(material); exists {
		behavior.OnPlace(wm, target)
	}

	blocksPlacedTotal.Inc()
	span.SetAttributes(attribute.Int("block.y", target.Y))
	wm.publishBlockEvent(ctx, "BlockPlaced", target, material)
	wm.log.Debug("Блок %d установлен в (%d,%d,%d)", material, target.X, target.Y, target.Z)
	return true
}

// RemoveBlock разрушает блок в указанной позиции. Бедрок и пустые
// позиции не изменяют коллекцию, сколько бы раз их ни кликали.
func (wm *WorldManager) RemoveBlock(ctx context.Context, pos vec.Vec3) bool {
	ctx, span := wm.tracer.Start(ctx, "world.RemoveBlock")
	defer span.End()

	wm.mu.Lock()
	b, exists := wm.blocks[pos]
	if !exists || !b.Breakable() || pos.Y <= wm.bedrockY {
		wm.mu.Unlock()
		removalsRejectedTotal.Inc()
		return false
	}
	delete(wm.blocks, pos)
	blocksActive.Set(float64(len(wm.blocks)))
	wm.mu.Unlock()

	wm.graph.DeregisterEntity(b.EntityID)

	if behavior, ok := b.Behavior(); ok {
		behavior.OnBreak(wm, pos)
	}

	blocksRemovedTotal.Inc()
	span.SetAttributes(attribute.Int("block.y", pos.Y))
	wm.publishBlockEvent(ctx, "BlockRemoved", pos, b.ID)
	wm.log.Debug("Блок %d разрушен в (%d,%d,%d)", b.ID, pos.X, pos.Y, pos.Z)
	return true
}

// selectMaterial меняет активный материал по цифровой клавише.
// Незнакомые клавиши игнорируются, существующие блоки не затрагиваются.
func (wm *WorldManager) selectMaterial(key int) {
	id, exists := block.ForHotkey(key)
	if !exists {
		return
	}

	wm.mu.Lock()
	wm.selected = id
	wm.mu.Unlock()
	wm.log.Debug("Выбран материал %d (клавиша %d)", id, key)
}

// SelectedMaterial возвращает текущий активный материал
func (wm *WorldManager) SelectedMaterial() block.BlockID {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.selected
}

// BlockAt возвращает блок в указанной позиции
func (wm *WorldManager) BlockAt(pos vec.Vec3) (Block, bool) {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	b, exists := wm.blocks[pos]
	return b, exists
}

// GetBlockID реализует block.BlockAPI
func (wm *WorldManager) GetBlockID(pos vec.Vec3) block.BlockID {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	if b, exists := wm.blocks[pos]; exists {
		return b.ID
	}
	return block.AirBlockID
}

// BlockCount возвращает количество блоков в мире
func (wm *WorldManager) BlockCount() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return len(wm.blocks)
}

// BedrockY возвращает уровень неразрушаемого слоя
func (wm *WorldManager) BedrockY() int {
	return wm.bedrockY
}

// HeightMap возвращает карту высот мира
func (wm *WorldManager) HeightMap() HeightMap {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.heights
}

// Snapshot возвращает копию всех блоков мира для экспорта
func (wm *WorldManager) Snapshot() []Block {
	wm.mu.RLock()
	defer wm.mu.RUnlock()

	snapshot := make([]Block, 0, len(wm.blocks))
	for _, b := range wm.blocks {
		snapshot = append(snapshot, b)
	}
	return snapshot
}

// blockEventPayload сериализуется в Envelope.Payload
type blockEventPayload struct {
	X        int           `json:"x"`
	Y        int           `json:"y"`
	Z        int           `json:"z"`
	Material block.BlockID `json:"material"`
}

// publishBlockEvent отправляет событие мутации мира в шину событий
func (wm *WorldManager) publishBlockEvent(ctx context.Context, eventType string, pos vec.Vec3, material block.BlockID) {
	payload, err := json.Marshal(blockEventPayload{X: pos.X, Y: pos.Y, Z: pos.Z, Material: material})
	if err != nil {
		return
	}

	ev := &eventbus.Envelope{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Source:    "world",
		EventType: eventType,
		Version:   1,
		Payload:   payload,
	}
	if err := eventbus.Publish(ctx, ev); err != nil {
		wm.log.Warn("Не удалось опубликовать событие %s: %v", eventType, err)
	}
}
