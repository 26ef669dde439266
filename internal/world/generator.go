package world

import (
	"errors"

	"github.com/MuzzammilShah/Minecraft-World/internal/util"
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// TerrainGenerator генерирует карту высот ландшафта
type TerrainGenerator struct {
	Seed      int64   // Сид для генерации шума
	Scale     float64 // Масштаб шума (сглаженность ландшафта)
	MaxHeight int     // Максимальная высота поверхности
}

// NewTerrainGenerator создаёт новый генератор ландшафта
func NewTerrainGenerator(seed int64, scale float64, maxHeight int) *TerrainGenerator {
	// Инициализируем генератор шума
	util.InitPerlinNoise(seed)

	if scale <= 0 {
		scale = 0.05
	}
	if maxHeight <= 0 {
		maxHeight = 8
	}

	return &TerrainGenerator{
		Seed:      seed,
		Scale:     scale,
		MaxHeight: maxHeight,
	}
}

// Generate строит карту высот для сетки width x depth.
// Детерминирован для фиксированного сида. Неположительные размеры
// дают пустую карту без ошибки.
func (tg *TerrainGenerator) Generate(width, depth int) HeightMap {
	hm := make(HeightMap)
	if width <= 0 || depth <= 0 {
		return hm
	}

	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			// Координаты для шума (масштабированные)
			noiseX := float64(x) * tg.Scale
			noiseZ := float64(z) * tg.Scale

			// Шум Перлина в диапазоне от 0 до 1
			noise := util.PerlinNoise2D(noiseX, noiseZ, tg.Seed)

			// Нормализуем в целочисленную высоту 0..MaxHeight
			height := int(noise * float64(tg.MaxHeight+1))
			if height > tg.MaxHeight {
				height = tg.MaxHeight
			}

			hm[vec.Vec2{X: x, Z: z}] = height
		}
	}

	return hm
}

// BlockTypeEntry связывает порог высоты с материалом поверхности
type BlockTypeEntry struct {
	Threshold int           // Высоты <= Threshold получают этот материал
	Material  block.BlockID // Материал поверхности
}

// BlockTypeTable упорядоченная таблица выбора материала по высоте.
// Инвариант: пороги строго возрастают.
type BlockTypeTable []BlockTypeEntry

// ErrUnorderedThresholds возвращается при нарушении порядка порогов
var ErrUnorderedThresholds = errors.New("пороги таблицы материалов должны строго возрастать")

// NewBlockTypeTable создаёт таблицу и проверяет монотонность порогов
func NewBlockTypeTable(entries ...BlockTypeEntry) (BlockTypeTable, error) {
	if len(entries) == 0 {
		return nil, errors.New("таблица материалов не может быть пустой")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Threshold <= entries[i-1].Threshold {
			return nil, ErrUnorderedThresholds
		}
	}
	return BlockTypeTable(entries), nil
}

// MaterialFor возвращает материал поверхности для указанной высоты:
// первая запись, под порог которой попадает высота, либо последняя
// запись как fallback. Чистая функция высоты.
func (t BlockTypeTable) MaterialFor(height int) block.BlockID {
	for _, entry := range t {
		if height <= entry.Threshold {
			return entry.Material
		}
	}
	return t[len(t)-1].Material
}

// DefaultBlockTypeTable возвращает таблицу по умолчанию: низины из
// камня, склоны из земли, всё выше покрыто травой.
func DefaultBlockTypeTable(maxHeight int) BlockTypeTable {
	if maxHeight < 4 {
		// Слишком плоский мир: вся поверхность из травы
		table, _ := NewBlockTypeTable(BlockTypeEntry{Threshold: maxHeight, Material: block.GrassBlockID})
		return table
	}
	table, _ := NewBlockTypeTable(
		BlockTypeEntry{Threshold: maxHeight / 4, Material: block.StoneBlockID},
		BlockTypeEntry{Threshold: maxHeight / 2, Material: block.DirtBlockID},
		BlockTypeEntry{Threshold: maxHeight, Material: block.GrassBlockID},
	)
	return table
}
