package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed seed.schema.json
var seedSchemaSource string

//go:embed default_seed.yaml
var defaultSeedSource []byte

// Seed describes the fixed initial entity set
type Seed struct {
	Player ActorSeed  `yaml:"player"`
	NPC    ActorSeed  `yaml:"npc"`
	Tree   PropSeed   `yaml:"tree"`
	Tiles  TileGrid   `yaml:"tiles"`
	Items  []ItemSeed `yaml:"items"`
}

// ActorSeed is a character: the player or an NPC
type ActorSeed struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Position    mgl32.Vec3  `yaml:"position"`
	Half        mgl32.Vec3  `yaml:"half"`
	Heading     float32     `yaml:"heading"`
	Health      int         `yaml:"health"`
	Dialogue    []string    `yaml:"dialogue"`
	Storage     *GridSeed   `yaml:"storage"`
	Camera      *CameraSeed `yaml:"camera"`
}

// PropSeed is a static obstacle
type PropSeed struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Position    mgl32.Vec3 `yaml:"position"`
	Half        mgl32.Vec3 `yaml:"half"`
}

// GridSeed sizes a container
type GridSeed struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// CameraSeed is the initial orbit of the camera following an actor
type CameraSeed struct {
	Distance float32 `yaml:"distance"`
	Yaw      float32 `yaml:"yaw"`
	Pitch    float32 `yaml:"pitch"`
}

// TileGrid lays out square ground tiles; holes are [column, row] pairs left unwalkable
type TileGrid struct {
	Origin  mgl32.Vec3 `yaml:"origin"`
	Columns int        `yaml:"columns"`
	Rows    int        `yaml:"rows"`
	Size    float32    `yaml:"size"`
	Holes   [][2]int   `yaml:"holes"`
}

// ItemSeed is a pickable item; Stored items start in the player's storage
type ItemSeed struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Half        mgl32.Vec3 `yaml:"half"`
	Position    mgl32.Vec3 `yaml:"position"`
	Stored      bool       `yaml:"stored"`
}

var seedSchema = jsonschema.MustCompileString("seed.schema.json", seedSchemaSource)

// DefaultSeed returns the embedded world
func DefaultSeed() (Seed, error) {
	return LoadSeed(bytes.NewReader(defaultSeedSource))
}

// LoadSeed validates a YAML seed against the schema and decodes it
func LoadSeed(r io.Reader) (Seed, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Seed{}, errors.Wrap(err, "read seed")
	}

	if err := ValidateSeed(raw); err != nil {
		return Seed{}, err
	}

	var s Seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Seed{}, errors.Wrap(err, "decode seed")
	}
	return s, nil
}

// ValidateSeed checks raw YAML against the embedded JSON Schema
// YAML is normalized through encoding/json so numbers and maps take JSON shapes
func ValidateSeed(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return errors.Wrap(err, "parse seed")
	}
	normalized, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "normalize seed")
	}
	var v any
	if err := json.Unmarshal(normalized, &v); err != nil {
		return errors.Wrap(err, "normalize seed")
	}
	if err := seedSchema.Validate(v); err != nil {
		return errors.Wrap(err, "seed schema")
	}
	return nil
}
