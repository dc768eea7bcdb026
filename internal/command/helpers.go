package command

import (
	"fmt"

	"github.com/Nessyi/pumpkin-management/internal/util"
)

// queryParam: 명령어 인자 파라미터 키
const queryParam = "query"

func getStringParam(params map[string]any, key string) string {
	if params == nil {
		return ""
	}
	val, ok := params[key]
	if !ok {
		return ""
	}
	switch v := val.(type) {
	case string:
		return util.TrimSpace(v)
	default:
		return util.TrimSpace(fmt.Sprintf("%v", v))
	}
}
