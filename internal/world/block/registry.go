package block

var registry = make(map[BlockID]BlockBehavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// ForHotkey возвращает блок, привязанный к цифровой клавише (1..5).
// Клавиша 0 означает отсутствие привязки.
func ForHotkey(key int) (BlockID, bool) {
	if key <= 0 {
		return AirBlockID, false
	}
	for id, behavior := range registry {
		if behavior.Hotkey() == key {
			return id, true
		}
	}
	return AirBlockID, false
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков. Порядок первых пяти соответствует
// таблице текстур оригинального демо (клавиши 1..5).
const (
	AirBlockID     BlockID = iota // 0
	GrassBlockID                  // 1
	DirtBlockID                   // 2
	WoodBlockID                   // 3
	BrickBlockID                  // 4
	StoneBlockID                  // 5
	BedrockBlockID                // 6 - неразрушаемое основание мира
)
