package world

import (
	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
)

// EventType определяет тип входного события
type EventType uint8

const (
	EventTypeLeftClick   EventType = iota // Левый клик — установка блока
	EventTypeRightClick                   // Правый клик — разрушение блока
	EventTypeMaterialKey                  // Цифровая клавиша — выбор материала
)

// InputEvent представляет собой интерфейс для всех входных событий
type InputEvent interface {
	GetType() EventType
}

// LeftClickEvent — клик по блоку для установки нового блока.
// Normal — внешняя нормаль кликнутой грани; новый блок ставится
// в соседнюю ячейку вдоль неё.
type LeftClickEvent struct {
	Target vec.Vec3 // Позиция кликнутого блока
	Normal vec.Vec3 // Нормаль кликнутой грани
}

// GetType возвращает тип события
func (e LeftClickEvent) GetType() EventType {
	return EventTypeLeftClick
}

// RightClickEvent — клик по блоку для его разрушения
type RightClickEvent struct {
	Target vec.Vec3 // Позиция кликнутого блока
}

// GetType возвращает тип события
func (e RightClickEvent) GetType() EventType {
	return EventTypeRightClick
}

// MaterialKeyEvent — выбор активного материала цифровой клавишей
type MaterialKeyEvent struct {
	Key int // Клавиша 1..5
}

// GetType возвращает тип события
func (e MaterialKeyEvent) GetType() EventType {
	return EventTypeMaterialKey
}
