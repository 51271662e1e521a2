package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/services"
	"github.com/KuntzeM/BoxCopilot/pkg/utils"
)

// PublicHandler 封装了无需认证的公开预览接口。
// 箱子标签上的二维码指向这里，扫码的人不需要登录就能看到箱内物品。
type PublicHandler struct {
	boxService services.BoxService
}

// NewPublicHandler 创建一个新的 PublicHandler 实例
func NewPublicHandler(boxService services.BoxService) *PublicHandler {
	return &PublicHandler{boxService: boxService}
}

// BoxPreview 公开预览返回的箱子信息，只暴露贴标签需要的字段
type BoxPreview struct {
	ID          int64         `json:"id"`
	UUID        string        `json:"uuid"`
	CurrentRoom *string       `json:"currentRoom,omitempty"`
	TargetRoom  *string       `json:"targetRoom,omitempty"`
	Description *string       `json:"description,omitempty"`
	IsFragile   bool          `json:"isFragile"`
	NoStack     bool          `json:"noStack"`
	Items       []PreviewItem `json:"items"`
}

// PreviewItem 预览中的物品，只包含名称
type PreviewItem struct {
	Name string `json:"name"`
}

// GetBoxPreview godoc
// @Summary 公开预览箱子内容
// @Description 根据 UUID 返回箱子的基本信息和物品名称列表，无需认证（扫码预览）
// @Tags Public
// @Produce json
// @Param uuid path string true "箱子 UUID"
// @Success 200 {object} utils.SuccessResponse{data=BoxPreview} "箱子预览"
// @Failure 404 {object} utils.APIErrorResponse "箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /public/{uuid} [get]
func (h *PublicHandler) GetBoxPreview(c *gin.Context) {
	boxUUID := c.Param("uuid")
	box, err := h.boxService.GetBoxByUUID(boxUUID)
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			utils.RespondNotFoundError(c, "箱子")
		} else {
			utils.RespondInternalServerError(c, "获取箱子预览失败", err.Error())
		}
		return
	}

	items := make([]PreviewItem, 0, len(box.Items))
	for _, item := range box.Items {
		items = append(items, PreviewItem{Name: item.Name})
	}

	preview := BoxPreview{
		ID:          box.ID,
		UUID:        box.UUID,
		CurrentRoom: box.CurrentRoom,
		TargetRoom:  box.TargetRoom,
		Description: box.Description,
		IsFragile:   box.IsFragile,
		NoStack:     box.NoStack,
		Items:       items,
	}
	utils.RespondSuccess(c, http.StatusOK, preview, "")
}
