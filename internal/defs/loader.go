// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadUnitDefinitions reads a JSON array of unit stats and overrides the matching
// rows of UnitLibrary. Each row is decoded on top of the built-in stats of its
// kind, so omitted fields keep their defaults. Returns how many rows were replaced.
func LoadUnitDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read unit definitions file: %w", err)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(file, &rows); err != nil {
		return 0, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	// Сначала проверяем всё, чтобы не применить файл наполовину.
	builtin := builtinUnits()
	unitDefs := make([]UnitStats, 0, len(rows))
	for i, row := range rows {
		var head struct {
			Kind UnitKind `json:"kind"`
		}
		if err := json.Unmarshal(row, &head); err != nil {
			return 0, fmt.Errorf("unit definition %d: %w", i, err)
		}
		def, ok := builtin[head.Kind]
		if !ok {
			return 0, fmt.Errorf("unknown unit kind %q", head.Kind)
		}
		if err := json.Unmarshal(row, &def); err != nil {
			return 0, fmt.Errorf("unit %q: %w", head.Kind, err)
		}
		if err := validateUnit(def); err != nil {
			return 0, err
		}
		unitDefs = append(unitDefs, def)
	}

	for _, def := range unitDefs {
		UnitLibrary[def.Kind] = def
	}
	return len(unitDefs), nil
}

func validateUnit(def UnitStats) error {
	if def.AttackSpeed <= 0 || def.Health <= 0 {
		return fmt.Errorf("unit %q: health and attackSpeed must be positive", def.Kind)
	}
	if def.Cost <= 0 || def.Size <= 0 {
		return fmt.Errorf("unit %q: cost and size must be positive", def.Kind)
	}
	if def.Damage < 0 || def.AttackRange < 0 || def.MoveSpeed < 0 {
		return fmt.Errorf("unit %q: damage, attackRange and moveSpeed must not be negative", def.Kind)
	}
	return nil
}
