package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/services"
	"github.com/KuntzeM/BoxCopilot/pkg/utils"
)

// BoxNumberHandler 封装了箱号池运营接口的 HTTP 处理逻辑
type BoxNumberHandler struct {
	service services.BoxNumberService
}

// NewBoxNumberHandler 创建一个新的 BoxNumberHandler 实例
func NewBoxNumberHandler(service services.BoxNumberService) *BoxNumberHandler {
	return &BoxNumberHandler{service: service}
}

// GetPoolStatus godoc
// @Summary 获取箱号池状态
// @Description 返回号码池的统计快照（总数、可用数、最大号码、可用号码列表），仅管理员可访问
// @Tags BoxNumbers
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=services.PoolStatus} "号码池状态"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 403 {object} utils.APIErrorResponse "需要管理员权限"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /box-numbers/status [get]
// @Security BearerAuth
func (h *BoxNumberHandler) GetPoolStatus(c *gin.Context) {
	status, err := h.service.GetPoolStatus()
	if err != nil {
		utils.RespondInternalServerError(c, "获取号码池状态失败", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, status, "")
}
