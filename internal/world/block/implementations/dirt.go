package implementations

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

func (b *DirtBehavior) Name() string {
	return "Dirt"
}

func (b *DirtBehavior) Texture() string {
	return "Dirt.png"
}

func (b *DirtBehavior) Breakable() bool {
	return true
}

func (b *DirtBehavior) Hotkey() int {
	return 2
}

func (b *DirtBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {}

func (b *DirtBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}
