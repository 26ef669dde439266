package world

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/scene"
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// Block представляет собой блок в игровом мире
type Block struct {
	ID       block.BlockID  // Идентификатор типа блока
	Pos      vec.Vec3       // Позиция в мире
	EntityID scene.EntityID // Ссылка на визуальное представление в сцене
}

// Behavior возвращает поведение для блока
func (b Block) Behavior() (block.BlockBehavior, bool) {
	return block.Get(b.ID)
}

// Breakable возвращает true, если блок можно разрушить
func (b Block) Breakable() bool {
	behavior, exists := b.Behavior()
	if !exists {
		return false
	}
	return behavior.Breakable()
}

// Texture возвращает имя файла текстуры блока
func (b Block) Texture() string {
	behavior, exists := b.Behavior()
	if !exists {
		return ""
	}
	return behavior.Texture()
}
