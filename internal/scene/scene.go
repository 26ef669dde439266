package scene

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
)

// EntityID уникальный идентификатор визуальной сущности в сцене
type EntityID = uuid.UUID

// Graph представляет границу сцены движка: регистрация и удаление
// визуальных сущностей. Рендеринг, камера и окно остаются на стороне
// движка; мир оперирует только идентификаторами.
type Graph interface {
	// RegisterEntity добавляет сущность с указанной позицией и текстурой
	RegisterEntity(pos vec.Vec3, texture string) EntityID
	// DeregisterEntity удаляет сущность из сцены
	DeregisterEntity(id EntityID)
}

// Entity хранит данные зарегистрированной сущности
type Entity struct {
	ID      EntityID
	Pos     vec.Vec3
	Texture string
}

// HeadlessGraph реализует Graph в памяти, без рендеринга.
// Используется в headless-режиме запуска и в тестах.
type HeadlessGraph struct {
	mu       sync.RWMutex
	entities map[EntityID]Entity
}

// NewHeadlessGraph создаёт пустую headless-сцену
func NewHeadlessGraph() *HeadlessGraph {
	return &HeadlessGraph{
		entities: make(map[EntityID]Entity),
	}
}

// RegisterEntity добавляет сущность и возвращает её идентификатор
func (g *HeadlessGraph) RegisterEntity(pos vec.Vec3, texture string) EntityID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := uuid.New()
	g.entities[id] = Entity{ID: id, Pos: pos, Texture: texture}
	return id
}

// DeregisterEntity удаляет сущность, если она существует
func (g *HeadlessGraph) DeregisterEntity(id EntityID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.entities, id)
}

// EntityCount возвращает количество зарегистрированных сущностей
func (g *HeadlessGraph) EntityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.entities)
}

// EntityByID возвращает сущность по идентификатору
func (g *HeadlessGraph) EntityByID(id EntityID) (Entity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, exists := g.entities[id]
	return e, exists
}
