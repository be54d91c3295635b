package assets

import (
	"reflect"
	"testing"
)

func testGenerator() GeneratorConfig {
	return GeneratorConfig{
		Seed:         7,
		Columns:      78,
		Rows:         14,
		TileSize:     64,
		HazardChance: 0.3,
		SafeZone:     6,
		Ledges:       8,
	}
}

func TestGenerateLevelDeterministic(t *testing.T) {
	a, err := GenerateLevel(testGenerator())
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateLevel(testGenerator())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different levels")
	}

	other := testGenerator()
	other.Seed = 8
	c, err := GenerateLevel(other)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a.Tiles, c.Tiles) {
		t.Error("different seeds produced identical levels")
	}
}

func TestGenerateLevelLayout(t *testing.T) {
	cfg := testGenerator()
	level, err := GenerateLevel(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ground := map[int]bool{}
	hazards := map[int]bool{}
	for _, tile := range level.Tiles {
		col := int(tile.X / cfg.TileSize)
		row := int(tile.Y / cfg.TileSize)
		switch tile.Kind {
		case TileGround:
			if row == 0 {
				ground[col] = true
			}
		case TileHazard:
			if row != 1 {
				t.Errorf("hazard at row %d, want 1", row)
			}
			if col < cfg.SafeZone {
				t.Errorf("hazard at column %d inside the safe zone", col)
			}
			hazards[col] = true
		case TileRoof:
			if row != cfg.Rows-1 {
				t.Errorf("roof at row %d", row)
			}
		case TileLedge:
			if col < cfg.SafeZone || col >= cfg.Columns-1 {
				t.Errorf("ledge at column %d", col)
			}
			if row < 3 || row > cfg.Rows-4 {
				t.Errorf("ledge at row %d", row)
			}
		}
	}

	if len(ground) != cfg.Columns {
		t.Errorf("ground covers %d columns, want %d", len(ground), cfg.Columns)
	}
	for col := range hazards {
		if hazards[col+1] {
			t.Errorf("hazards in neighbouring columns %d and %d", col, col+1)
		}
	}
	if got := level.Count(TileRoof); got != cfg.Columns-2 {
		t.Errorf("roof tiles = %d, want %d", got, cfg.Columns-2)
	}
}

func TestGenerateLevelHazardChance(t *testing.T) {
	tests := []struct {
		name   string
		chance float64
		want   int
	}{
		{"none", 0, 0},
		// Every other column from the safe zone up to the right wall.
		{"all", 1, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testGenerator()
			cfg.HazardChance = tt.chance
			level, err := GenerateLevel(cfg)
			if err != nil {
				t.Fatal(err)
			}
			if got := level.Count(TileHazard); got != tt.want {
				t.Errorf("hazards = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerateLevelRejectsTinyWorlds(t *testing.T) {
	cfg := testGenerator()
	cfg.Columns = 2
	if _, err := GenerateLevel(cfg); err == nil {
		t.Fatal("expected an error")
	}
}
