package world

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuzzammilShah/Minecraft-World/internal/scene"
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
	_ "github.com/MuzzammilShah/Minecraft-World/internal/world/block/implementations"
)

const testBedrockY = -1

func newTestWorld(width, depth int) (*WorldManager, *scene.HeadlessGraph) {
	gen := NewTerrainGenerator(42, 0.05, 8)
	table := DefaultBlockTypeTable(gen.MaxHeight)
	graph := scene.NewHeadlessGraph()
	wm := NewWorldManager(gen, table, graph, width, depth, testBedrockY)
	wm.Build(context.Background())
	return wm, graph
}

func TestWorldManager_Build5x5(t *testing.T) {
	wm, graph := newTestWorld(5, 5)

	hm := wm.HeightMap()
	require.Equal(t, 25, hm.Size(), "Карта высот 5x5 должна содержать 25 записей")

	expectedBlocks := 0
	for z := 0; z < 5; z++ {
		for x := 0; x < 5; x++ {
			pos2 := vec.Vec2{X: x, Z: z}
			height, exists := hm.HeightAt(pos2)
			require.True(t, exists, "Высота для (%d,%d) должна существовать", x, z)
			assert.GreaterOrEqual(t, height, 0)
			assert.LessOrEqual(t, height, 8)

			// Поверхностный блок с материалом из таблицы
			surface, exists := wm.BlockAt(vec.FromVec2(pos2, height))
			require.True(t, exists, "Поверхностный блок в (%d,%d,%d) отсутствует", x, height, z)
			assert.Equal(t, wm.table.MaterialFor(height), surface.ID)

			// Непрерывная колонна до бедрока
			for y := height - 1; y > testBedrockY; y-- {
				_, exists := wm.BlockAt(vec.FromVec2(pos2, y))
				assert.True(t, exists, "Разрыв в колонне (%d,%d,%d)", x, y, z)
			}

			// Основание из бедрока
			bedrock, exists := wm.BlockAt(vec.FromVec2(pos2, testBedrockY))
			require.True(t, exists)
			assert.Equal(t, block.BedrockBlockID, bedrock.ID)
			assert.False(t, bedrock.Breakable(), "Бедрок должен быть неразрушаемым")

			expectedBlocks += height - testBedrockY + 1
		}
	}

	assert.Equal(t, expectedBlocks, wm.BlockCount(), "Количество блоков должно соответствовать колоннам")
	assert.Equal(t, expectedBlocks, graph.EntityCount(), "Каждый блок должен быть зарегистрирован в сцене")
}

func TestWorldManager_PlaceAdjacent(t *testing.T) {
	wm, graph := newTestWorld(5, 5)
	ctx := context.Background()

	pos2 := vec.Vec2{X: 2, Z: 2}
	height, _ := wm.HeightMap().HeightAt(pos2)
	surface := vec.FromVec2(pos2, height)

	countBefore := wm.BlockCount()
	entitiesBefore := graph.EntityCount()

	// Клик по верхней грани ставит блок над поверхностью
	ok := wm.PlaceAdjacent(ctx, surface, vec.FaceUp, block.BrickBlockID)
	require.True(t, ok)

	placed, exists := wm.BlockAt(surface.Add(vec.FaceUp))
	require.True(t, exists, "Новый блок должен появиться над кликнутой гранью")
	assert.Equal(t, block.BrickBlockID, placed.ID)
	assert.Equal(t, countBefore+1, wm.BlockCount(), "Количество блоков должно вырасти ровно на 1")
	assert.Equal(t, entitiesBefore+1, graph.EntityCount())

	// Сущность нового блока зарегистрирована в сцене
	entity, exists := graph.EntityByID(placed.EntityID)
	require.True(t, exists)
	assert.Equal(t, "Brick.png", entity.Texture)
}

func TestWorldManager_PlaceNeverOverwrites(t *testing.T) {
	wm, _ := newTestWorld(5, 5)
	ctx := context.Background()

	pos2 := vec.Vec2{X: 1, Z: 1}
	height, _ := wm.HeightMap().HeightAt(pos2)
	surface := vec.FromVec2(pos2, height)

	// Клик по нижней грани: под поверхностью уже есть подземный блок
	below := surface.Add(vec.FaceDown)
	existing, exists := wm.BlockAt(below)
	require.True(t, exists)

	countBefore := wm.BlockCount()
	ok := wm.PlaceAdjacent(ctx, surface, vec.FaceDown, block.WoodBlockID)

	assert.False(t, ok, "Установка в занятую позицию должна быть отклонена")
	assert.Equal(t, countBefore, wm.BlockCount(), "Коллекция не должна измениться")

	after, _ := wm.BlockAt(below)
	assert.Equal(t, existing.ID, after.ID, "Существующий блок не должен быть перезаписан")
}

func TestWorldManager_PlaceOnMissingBlock(t *testing.T) {
	wm, _ := newTestWorld(5, 5)

	countBefore := wm.BlockCount()
	ok := wm.PlaceAdjacent(context.Background(), vec.Vec3{X: 100, Y: 100, Z: 100}, vec.FaceUp, block.StoneBlockID)

	assert.False(t, ok, "Клик по пустой позиции не должен ставить блок")
	assert.Equal(t, countBefore, wm.BlockCount())
}

func TestWorldManager_RemoveBlock(t *testing.T) {
	wm, graph := newTestWorld(5, 5)
	ctx := context.Background()

	pos2 := vec.Vec2{X: 3, Z: 3}
	height, _ := wm.HeightMap().HeightAt(pos2)
	surface := vec.FromVec2(pos2, height)

	countBefore := wm.BlockCount()
	entitiesBefore := graph.EntityCount()

	ok := wm.RemoveBlock(ctx, surface)
	require.True(t, ok)

	_, exists := wm.BlockAt(surface)
	assert.False(t, exists, "Блок должен быть удалён")
	assert.Equal(t, countBefore-1, wm.BlockCount(), "Количество блоков должно уменьшиться ровно на 1")
	assert.Equal(t, entitiesBefore-1, graph.EntityCount(), "Сущность должна быть удалена из сцены")
}

func TestWorldManager_BedrockRemovalRejected(t *testing.T) {
	wm, _ := newTestWorld(5, 5)
	ctx := context.Background()

	bedrock := vec.Vec3{X: 0, Y: testBedrockY, Z: 0}
	_, exists := wm.BlockAt(bedrock)
	require.True(t, exists)

	countBefore := wm.BlockCount()

	// Повторные попытки разрушить бедрок никогда не меняют коллекцию
	for i := 0; i < 10; i++ {
		ok := wm.RemoveBlock(ctx, bedrock)
		assert.False(t, ok, "Разрушение бедрока должно быть отклонено (попытка %d)", i+1)
	}

	assert.Equal(t, countBefore, wm.BlockCount())
	_, exists = wm.BlockAt(bedrock)
	assert.True(t, exists, "Бедрок должен остаться на месте")
}

func TestWorldManager_RemoveThenBedrockExposed(t *testing.T) {
	wm, _ := newTestWorld(5, 5)
	ctx := context.Background()

	// Строим сценарий: блок на уровне bedrockY+1, бедрок под ним
	pos2 := vec.Vec2{X: 4, Z: 4}
	height, _ := wm.HeightMap().HeightAt(pos2)

	// Удаляем колонну до уровня над бедроком
	for y := height; y > testBedrockY+1; y-- {
		require.True(t, wm.RemoveBlock(ctx, vec.FromVec2(pos2, y)))
	}

	// Последний разрушаемый блок над бедроком
	lowest := vec.FromVec2(pos2, testBedrockY+1)
	countBefore := wm.BlockCount()
	require.True(t, wm.RemoveBlock(ctx, lowest), "Блок над бедроком должен удаляться")
	assert.Equal(t, countBefore-1, wm.BlockCount())

	// Теперь открыт бедрок: удаление отклоняется
	countBefore = wm.BlockCount()
	assert.False(t, wm.RemoveBlock(ctx, vec.FromVec2(pos2, testBedrockY)))
	assert.Equal(t, countBefore, wm.BlockCount())
}

func TestWorldManager_MaterialSelection(t *testing.T) {
	wm, _ := newTestWorld(5, 5)
	ctx := context.Background()

	assert.Equal(t, block.GrassBlockID, wm.SelectedMaterial(), "Материал по умолчанию — трава")

	// Клавиша 2 выбирает землю
	wm.HandleInput(ctx, MaterialKeyEvent{Key: 2})
	assert.Equal(t, block.DirtBlockID, wm.SelectedMaterial())

	// Незнакомая клавиша не меняет выбор
	wm.HandleInput(ctx, MaterialKeyEvent{Key: 9})
	assert.Equal(t, block.DirtBlockID, wm.SelectedMaterial())

	// Выбор не затрагивает существующие блоки
	pos2 := vec.Vec2{X: 0, Z: 0}
	height, _ := wm.HeightMap().HeightAt(pos2)
	surface, _ := wm.BlockAt(vec.FromVec2(pos2, height))
	assert.Equal(t, wm.table.MaterialFor(height), surface.ID)
}

func TestWorldManager_SelectThenPlaceEndToEnd(t *testing.T) {
	wm, _ := newTestWorld(5, 5)
	ctx := context.Background()

	pos2 := vec.Vec2{X: 2, Z: 0}
	height, _ := wm.HeightMap().HeightAt(pos2)
	surface := vec.FromVec2(pos2, height)

	countBefore := wm.BlockCount()

	// Выбираем материал 2 и кликаем по верхней грани
	wm.HandleInput(ctx, MaterialKeyEvent{Key: 2})
	wm.HandleInput(ctx, LeftClickEvent{Target: surface, Normal: vec.FaceUp})

	placed, exists := wm.BlockAt(surface.Add(vec.FaceUp))
	require.True(t, exists, "Новый блок должен появиться в соседней позиции")
	assert.Equal(t, block.DirtBlockID, placed.ID, "Новый блок должен иметь материал 2")
	assert.Equal(t, countBefore+1, wm.BlockCount(), "Количество блоков должно вырасти ровно на 1")
}

func TestWorldManager_InputLoop(t *testing.T) {
	wm, _ := newTestWorld(5, 5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wm.Run(ctx)
	defer wm.Stop()

	pos2 := vec.Vec2{X: 1, Z: 3}
	height, _ := wm.HeightMap().HeightAt(pos2)
	surface := vec.FromVec2(pos2, height)

	// События из очереди обрабатываются по одному до завершения
	wm.Submit(MaterialKeyEvent{Key: 5})
	wm.Submit(LeftClickEvent{Target: surface, Normal: vec.FaceUp})

	assert.Eventually(t, func() bool {
		b, exists := wm.BlockAt(surface.Add(vec.FaceUp))
		return exists && b.ID == block.StoneBlockID
	}, time.Second, 10*time.Millisecond, "Цикл должен обработать выбор материала и установку")
}

func TestWorldManager_RunReplacesConstructorContext(t *testing.T) {
	wm, _ := newTestWorld(3, 3)

	initialCtx := wm.ctx

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wm.Run(ctx)
	defer wm.Stop()

	// Контекст конструктора отменяется при передаче родительского
	require.Error(t, initialCtx.Err(), "Контекст конструктора должен быть отменён после Run")
	assert.NoError(t, wm.ctx.Err(), "Новый контекст должен быть активен")
}

func TestWorldManager_GetBlockID(t *testing.T) {
	wm, _ := newTestWorld(5, 5)

	pos2 := vec.Vec2{X: 0, Z: 0}
	height, _ := wm.HeightMap().HeightAt(pos2)

	assert.Equal(t, wm.table.MaterialFor(height), wm.GetBlockID(vec.FromVec2(pos2, height)))
	assert.Equal(t, block.AirBlockID, wm.GetBlockID(vec.Vec3{X: 50, Y: 50, Z: 50}))
}

func TestWorldManager_Snapshot(t *testing.T) {
	wm, _ := newTestWorld(3, 3)

	snapshot := wm.Snapshot()
	assert.Equal(t, wm.BlockCount(), len(snapshot))

	for _, b := range snapshot {
		assert.True(t, block.IsValidBlockID(b.ID), "Снапшот не должен содержать неизвестных материалов")
	}
}
