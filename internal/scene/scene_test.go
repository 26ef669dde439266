package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuzzammilShah/Minecraft-World/internal/vec"
)

func TestHeadlessGraph_RegisterDeregister(t *testing.T) {
	graph := NewHeadlessGraph()
	assert.Equal(t, 0, graph.EntityCount())

	pos := vec.Vec3{X: 1, Y: 2, Z: 3}
	id := graph.RegisterEntity(pos, "Grass.png")

	require.Equal(t, 1, graph.EntityCount())
	entity, exists := graph.EntityByID(id)
	require.True(t, exists)
	assert.Equal(t, pos, entity.Pos)
	assert.Equal(t, "Grass.png", entity.Texture)

	graph.DeregisterEntity(id)
	assert.Equal(t, 0, graph.EntityCount())

	// Повторное удаление — тихий no-op
	graph.DeregisterEntity(id)
	assert.Equal(t, 0, graph.EntityCount())
}

func TestHeadlessGraph_UniqueIDs(t *testing.T) {
	graph := NewHeadlessGraph()

	id1 := graph.RegisterEntity(vec.Vec3{X: 0, Y: 0, Z: 0}, "Stone.png")
	id2 := graph.RegisterEntity(vec.Vec3{X: 0, Y: 1, Z: 0}, "Stone.png")

	assert.NotEqual(t, id1, id2, "Идентификаторы сущностей должны быть уникальными")
}
