package util

import (
	"sync"

	"github.com/aquilax/go-perlin"
)

var (
	noiseMu     sync.Mutex
	perlinNoise *perlin.Perlin
	perlinSeed  int64
)

// InitPerlinNoise инициализирует генератор шума Перлина с указанным сидом
func InitPerlinNoise(seed int64) {
	noiseMu.Lock()
	defer noiseMu.Unlock()

	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	perlinNoise = perlin.NewPerlin(alpha, beta, n, seed)
	perlinSeed = seed
}

// PerlinNoise2D возвращает значение шума Перлина для указанных координат (от 0 до 1).
// Если генератор не инициализирован или сид отличается, он пересоздаётся.
func PerlinNoise2D(x, z float64, seed int64) float64 {
	noiseMu.Lock()
	if perlinNoise == nil || perlinSeed != seed {
		alpha := 2.0
		beta := 2.0
		n := int32(3)
		perlinNoise = perlin.NewPerlin(alpha, beta, n, seed)
		perlinSeed = seed
	}
	gen := perlinNoise
	noiseMu.Unlock()

	// Значение шума лежит в диапазоне от -1 до 1
	noise := gen.Noise2D(x, z)

	// Преобразуем в диапазон от 0 до 1
	return (noise + 1.0) / 2.0
}
