package compile

import (
	"encoding/json"
	"sort"

	"github.com/maruel/natural"
	yaml "gopkg.in/yaml.v3"

	"sbc/common"
	"sbc/naming"
)

// ClassMap is the serializable mapping from semantic names to generated
// class tokens for one compiled block. It is what downstream tooling
// consumes to select classes at render time.
type ClassMap struct {
	Block  string          `yaml:"block" json:"block"`
	Class  string          `yaml:"class" json:"class"`
	States []ClassMapState `yaml:"states,omitempty" json:"states,omitempty"`
}

type ClassMapState struct {
	Name  string `yaml:"name" json:"name"`
	Group string `yaml:"group,omitempty" json:"group,omitempty"`
	Class string `yaml:"class" json:"class"`
}

// BuildClassMap captures block and state tokens. States are ordered
// naturally by group then name so the output does not depend on discovery
// order.
func BuildClassMap(block *Block, strategy *naming.Strategy) ClassMap {
	cm := ClassMap{Block: block.Name(), Class: block.ClassToken(strategy)}

	states := block.States()
	sort.Slice(states, func(i, j int) bool {
		if states[i].Group() != states[j].Group() {
			return natural.Less(states[i].Group(), states[j].Group())
		}
		return natural.Less(states[i].Name(), states[j].Name())
	})
	for _, s := range states {
		cm.States = append(cm.States, ClassMapState{
			Name:  s.Name(),
			Group: s.Group(),
			Class: s.ClassToken(strategy),
		})
	}
	return cm
}

// Marshal serializes the class map in the requested format.
func (m ClassMap) Marshal(format common.MapFmt) ([]byte, error) {
	switch format {
	case common.MapFmtJson:
		return json.MarshalIndent(m, "", "  ")
	default:
		return yaml.Marshal(m)
	}
}
