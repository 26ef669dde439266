package vec

// Vec3 представляет трехмерный вектор с целочисленными координатами
type Vec3 struct {
	X int
	Y int
	Z int
}

// Нормали шести граней блока. Направление размещения нового блока
// выбирается по внешней нормали кликнутой грани.
var (
	FaceUp    = Vec3{X: 0, Y: 1, Z: 0}
	FaceDown  = Vec3{X: 0, Y: -1, Z: 0}
	FaceEast  = Vec3{X: 1, Y: 0, Z: 0}
	FaceWest  = Vec3{X: -1, Y: 0, Z: 0}
	FaceNorth = Vec3{X: 0, Y: 0, Z: 1}
	FaceSouth = Vec3{X: 0, Y: 0, Z: -1}
)

// ToVec2 преобразует Vec3 в Vec2, игнорируя координату Y
func (v Vec3) ToVec2() Vec2 {
	return Vec2{X: v.X, Z: v.Z}
}

// FromVec2 создает Vec3 из Vec2 и заданной высоты
func FromVec2(v Vec2, y int) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Z}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}
