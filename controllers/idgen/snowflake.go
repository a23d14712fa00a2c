package idgen

import (
	"log"
	"sync"

	"school-inventory/types"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

func Init() {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(1)
		if err != nil {
			log.Fatalf("Failed to init Snowflake: %v", err)
		}
	})
}

func GenerateID() types.SnowflakeID {
	if node == nil {
		Init()
	}
	return types.SnowflakeID(node.Generate().Int64())
}
