package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/pkg/utils"
)

// parseIDParam 从路径参数中解析数据库 ID。
// 解析失败时已向客户端返回 400 响应，调用方只需检查 ok。
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	param := c.Param(name)
	if err := utils.ValidateIDParam(param); err != nil {
		utils.RespondValidationError(c, err.Error())
		return 0, false
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		utils.RespondValidationError(c, utils.ErrInvalidIDParam.Error())
		return 0, false
	}
	return id, true
}
