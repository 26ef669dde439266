package block

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
)

// BlockAPI даёт поведениям блоков ограниченный доступ к миру
type BlockAPI interface {
	// GetBlockID возвращает ID блока в указанной позиции (AirBlockID, если пусто)
	GetBlockID(pos vec.Vec3) BlockID
}

// BlockBehavior определяет поведение блока
type BlockBehavior interface {
	ID() BlockID
	Name() string
	// Texture возвращает имя файла текстуры для движка
	Texture() string
	// Breakable сообщает, можно ли разрушить блок правым кликом
	Breakable() bool
	// Hotkey возвращает цифровую клавишу выбора материала (0 — нет привязки)
	Hotkey() int
	OnPlace(api BlockAPI, pos vec.Vec3)
	OnBreak(api BlockAPI, pos vec.Vec3)
}
