// internal/defs/loot_tables.go
package defs

// SpawnEntry: одна строка таблицы случайного выбора.
// Card: ID карты, Weight: её относительный шанс.
type SpawnEntry struct {
	Card   string `json:"card"`
	Weight int    `json:"weight"`
}

// EnemySpawnTable: чем наугад ходит соперник. Сумма весов 1000.
var EnemySpawnTable = []SpawnEntry{
	{Card: string(Tesla), Weight: 100},
	{Card: string(Knight), Weight: 200},
	{Card: string(MiniPekka), Weight: 150},
	{Card: string(MagicArcher), Weight: 100},
	{Card: string(GoldKnight), Weight: 100},
	{Card: string(MegaKnight), Weight: 100},
	{Card: string(Surge), Weight: 125},
	{Card: string(Lily), Weight: 125},
}
