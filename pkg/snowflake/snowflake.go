package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成系统日志等表使用的主键
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
