package implementations

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// BedrockBehavior реализует поведение неразрушаемого основания мира
type BedrockBehavior struct{}

func (b *BedrockBehavior) ID() block.BlockID {
	return block.BedrockBlockID
}

func (b *BedrockBehavior) Name() string {
	return "Bedrock"
}

// Texture возвращает текстуру камня: у бедрока нет собственной
func (b *BedrockBehavior) Texture() string {
	return "Stone.png"
}

// Breakable возвращает false, бедрок вечен
func (b *BedrockBehavior) Breakable() bool {
	return false
}

// Hotkey возвращает 0: бедрок нельзя выбрать для строительства
func (b *BedrockBehavior) Hotkey() int {
	return 0
}

func (b *BedrockBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {}

func (b *BedrockBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}
