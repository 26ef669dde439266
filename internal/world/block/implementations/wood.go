package implementations

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
	"github.com/MuzzammilShah/Minecraft-World/internal/world/block"
)

// WoodBehavior реализует поведение блока дерева
type WoodBehavior struct{}

func (b *WoodBehavior) ID() block.BlockID {
	return block.WoodBlockID
}

func (b *WoodBehavior) Name() string {
	return "Wood"
}

func (b *WoodBehavior) Texture() string {
	return "Wood.png"
}

func (b *WoodBehavior) Breakable() bool {
	return true
}

func (b *WoodBehavior) Hotkey() int {
	return 3
}

func (b *WoodBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {}

func (b *WoodBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}
