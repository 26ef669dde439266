package implementations

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "Stone"
}

// Texture возвращает имя файла текстуры
func (b *StoneBehavior) Texture() string {
	return "Stone.png"
}

// Breakable возвращает true, камень разрушаем
func (b *StoneBehavior) Breakable() bool {
	return true
}

// Hotkey возвращает клавишу выбора материала
func (b *StoneBehavior) Hotkey() int {
	return 5
}

// OnPlace вызывается при установке блока
func (b *StoneBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {}

// OnBreak вызывается при разрушении блока
func (b *StoneBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}
