// pkg/arena/layout.go
package arena

// Point: координата на поле.
type Point struct {
	X, Y float64
}

// TowerSlot описывает место башни в начальной расстановке.
type TowerSlot struct {
	King bool
	Pos  Point
}

// PlayerTowers и EnemyTowers: король посередине, принцессы по краям.
var (
	PlayerTowers = []TowerSlot{
		{King: true, Pos: Point{X: 400, Y: 520}},
		{Pos: Point{X: 150, Y: 450}},
		{Pos: Point{X: 650, Y: 450}},
	}
	EnemyTowers = []TowerSlot{
		{King: true, Pos: Point{X: 400, Y: 80}},
		{Pos: Point{X: 150, Y: 150}},
		{Pos: Point{X: 650, Y: 150}},
	}
)

// Зоны высадки юнитов. У соперника зона зеркальна зоне игрока.
const (
	PlayerDeployMinY = 350.0
	PlayerDeployMaxY = 580.0
	EnemyDeployMinY  = Height - PlayerDeployMaxY
	EnemyDeployMaxY  = Height - PlayerDeployMinY
)

// Базовые линии, к которым маршируют юниты без цели.
const (
	PlayerMarchY = 80.0
	EnemyMarchY  = 520.0
)

// InPlayerDeployZone проверяет точку высадки игрока.
func InPlayerDeployZone(x, y float64) bool {
	return x >= 0 && x <= Width && y >= PlayerDeployMinY && y <= PlayerDeployMaxY
}

// InEnemyDeployZone проверяет точку высадки соперника.
func InEnemyDeployZone(x, y float64) bool {
	return x >= 0 && x <= Width && y >= EnemyDeployMinY && y <= EnemyDeployMaxY
}
