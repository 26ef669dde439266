package implementations

import "github.com/MuzzammilShah/Minecraft-World/internal/world/block"

// Регистрируем все типы блоков при импорте пакета
func init() {
	block.Register(block.GrassBlockID, &GrassBehavior{})
	block.Register(block.DirtBlockID, &DirtBehavior{})
	block.Register(block.WoodBlockID, &WoodBehavior{})
	block.Register(block.BrickBlockID, &BrickBehavior{})
	block.Register(block.StoneBlockID, &StoneBehavior{})
	block.Register(block.BedrockBlockID, &BedrockBehavior{})
}
