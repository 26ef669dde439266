package implementations

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// GrassBehavior реализует поведение блока травы
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "Grass"
}

// Texture возвращает имя файла текстуры
func (b *GrassBehavior) Texture() string {
	return "Grass.png"
}

// Breakable возвращает true, трава разрушаема
func (b *GrassBehavior) Breakable() bool {
	return true
}

// Hotkey возвращает клавишу выбора материала
func (b *GrassBehavior) Hotkey() int {
	return 1
}

// OnPlace вызывается при установке блока
func (b *GrassBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	// Трава не требует инициализации
}

// OnBreak вызывается при разрушении блока
func (b *GrassBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
	// Ничего не делаем при разрушении
}
