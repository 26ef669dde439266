package implementations

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// BrickBehavior реализует поведение блока кирпича
type BrickBehavior struct{}

func (b *BrickBehavior) ID() block.BlockID {
	return block.BrickBlockID
}

func (b *BrickBehavior) Name() string {
	return "Brick"
}

func (b *BrickBehavior) Texture() string {
	return "Brick.png"
}

func (b *BrickBehavior) Breakable() bool {
	return true
}

func (b *BrickBehavior) Hotkey() int {
	return 4
}

func (b *BrickBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {}

func (b *BrickBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}
