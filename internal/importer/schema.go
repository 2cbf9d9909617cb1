package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a project import file.
type ImportSchema struct {
	Project ProjectImport `json:"project" yaml:"project"`
	Tiles   []TileImport  `json:"tiles" yaml:"tiles"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	Number   string  `json:"number,omitempty" yaml:"number,omitempty"`
	Name     string  `json:"name" yaml:"name"`
	Client   string  `json:"client,omitempty" yaml:"client,omitempty"`
	Manager  string  `json:"manager,omitempty" yaml:"manager,omitempty"`
	Budget   float64 `json:"budget,omitempty" yaml:"budget,omitempty"`
	Deadline *string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
}

// TileImport defines a tile in the import file. Ref is local to the file
// and only used to express dependencies.
type TileImport struct {
	Ref        string          `json:"ref" yaml:"ref"`
	Name       string          `json:"name" yaml:"name"`
	Status     string          `json:"status,omitempty" yaml:"status,omitempty"`
	Priority   string          `json:"priority,omitempty" yaml:"priority,omitempty"`
	LaborCost  float64         `json:"labor_cost,omitempty" yaml:"labor_cost,omitempty"`
	Designer   string          `json:"designer,omitempty" yaml:"designer,omitempty"`
	Technology string          `json:"technology,omitempty" yaml:"technology,omitempty"`
	Deadline   *string         `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	DependsOn  []string        `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	BOM        []BOMLineImport `json:"bom,omitempty" yaml:"bom,omitempty"`
}

// BOMLineImport defines one bill-of-materials line of a tile.
type BOMLineImport struct {
	Type       string   `json:"type,omitempty" yaml:"type,omitempty"`
	Name       string   `json:"name" yaml:"name"`
	Quantity   float64  `json:"quantity" yaml:"quantity"`
	Unit       string   `json:"unit" yaml:"unit"`
	UnitCost   *float64 `json:"unit_cost,omitempty" yaml:"unit_cost,omitempty"`
	Supplier   string   `json:"supplier,omitempty" yaml:"supplier,omitempty"`
	MaterialID string   `json:"material_id,omitempty" yaml:"material_id,omitempty"`
}

// LoadImportSchema reads and parses a project import file. Files ending in
// .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	}
	return &schema, nil
}
