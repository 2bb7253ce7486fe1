package state

import (
	"time"

	"sbc/common"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:     time.Now(),
		MapFormat: common.MapFmtYaml,
	}
}
