package rulebook

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed flavor.yaml
var flavorYAML []byte

type flavorData struct {
	EmptyRooms       []string `yaml:"empty_rooms"`
	EncounterOpeners []string `yaml:"encounter_openers"`
	SearchFinds      []string `yaml:"search_finds"`
	SearchNothing    []string `yaml:"search_nothing"`
	RestLines        []string `yaml:"rest_lines"`
}

var flavor flavorData

func init() {
	if err := yaml.Unmarshal(flavorYAML, &flavor); err != nil {
		panic(fmt.Sprintf("parsing flavor YAML: %v", err))
	}
	for name, list := range map[string][]string{
		"empty_rooms":       flavor.EmptyRooms,
		"encounter_openers": flavor.EncounterOpeners,
		"search_finds":      flavor.SearchFinds,
		"search_nothing":    flavor.SearchNothing,
		"rest_lines":        flavor.RestLines,
	} {
		if len(list) == 0 {
			panic(fmt.Sprintf("flavor YAML: %s is empty", name))
		}
	}
}

// EmptyRoomFlavors are log lines for rooms with nothing in them
func EmptyRoomFlavors() []string { return flavor.EmptyRooms }

// EncounterOpeners are log lines that lead into an encounter
func EncounterOpeners() []string { return flavor.EncounterOpeners }

// SearchFindFlavors are log lines for a search that turns something up
func SearchFindFlavors() []string { return flavor.SearchFinds }

// SearchNothingFlavors are log lines for a fruitless search
func SearchNothingFlavors() []string { return flavor.SearchNothing }

// RestFlavors are log lines for a turn spent resting
func RestFlavors() []string { return flavor.RestLines }
