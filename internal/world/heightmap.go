package world

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
)

// HeightMap хранит высоту поверхности для каждой горизонтальной координаты.
// Заполняется один раз при генерации мира и далее не изменяется.
type HeightMap map[vec.Vec2]int

// HeightAt возвращает высоту в указанной точке
func (hm HeightMap) HeightAt(pos vec.Vec2) (int, bool) {
	h, exists := hm[pos]
	return h, exists
}

// Size возвращает количество ячеек карты высот
func (hm HeightMap) Size() int {
	return len(hm)
}
