package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/services"
	"github.com/KuntzeM/BoxCopilot/pkg/utils"
)

// ItemHandler 封装了物品相关的 HTTP 处理逻辑
type ItemHandler struct {
	service services.ItemService
}

// NewItemHandler 创建一个新的 ItemHandler 实例
func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// CreateItemPayload 定义了创建物品请求的 JSON 结构体
type CreateItemPayload struct {
	BoxID   int64   `json:"boxId" binding:"required"`
	Name    string  `json:"name" binding:"required,max=255"`
	Remarks *string `json:"remarks,omitempty"`
}

// MoveItemPayload 定义了移动单个物品请求的 JSON 结构体
type MoveItemPayload struct {
	TargetBoxID int64 `json:"targetBoxId" binding:"required"`
}

// BulkMoveItemsPayload 定义了批量移动物品请求的 JSON 结构体
type BulkMoveItemsPayload struct {
	ItemIDs     []int64 `json:"itemIds" binding:"required,min=1"`
	TargetBoxID int64   `json:"targetBoxId" binding:"required"`
}

// BulkMoveResult 批量移动的结果
type BulkMoveResult struct {
	Moved     int `json:"moved"`
	Requested int `json:"requested"`
}

// ListItems godoc
// @Summary 获取物品列表
// @Description 返回全部物品；提供 search 参数时按名称模糊查找，可用 boxUuid 限定箱子
// @Tags Items
// @Produce json
// @Param search query string false "名称搜索关键字"
// @Param boxUuid query string false "限定查找的箱子 UUID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Item} "物品列表"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /items [get]
// @Security BearerAuth
func (h *ItemHandler) ListItems(c *gin.Context) {
	search := c.Query("search")
	boxUUID := c.Query("boxUuid")

	var items []models.Item
	var err error
	if search != "" {
		items, err = h.service.SearchItems(search, boxUUID)
	} else if boxUUID != "" {
		items, err = h.service.GetItemsByBoxUUID(boxUUID)
	} else {
		items, err = h.service.GetAllItems()
	}

	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			utils.RespondNotFoundError(c, "箱子")
		} else {
			utils.RespondInternalServerError(c, "获取物品列表失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, items, "")
}

// GetBoxItems godoc
// @Summary 获取箱子内的物品
// @Description 返回指定箱子内的全部物品，按名称排序
// @Tags Items
// @Produce json
// @Param uuid path string true "箱子 UUID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Item} "物品列表"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /boxes/{uuid}/items [get]
// @Security BearerAuth
func (h *ItemHandler) GetBoxItems(c *gin.Context) {
	boxUUID := c.Param("uuid")
	items, err := h.service.GetItemsByBoxUUID(boxUUID)
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			utils.RespondNotFoundError(c, "箱子")
		} else {
			utils.RespondInternalServerError(c, "获取物品列表失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, items, "")
}

// CreateItem godoc
// @Summary 新增一个物品
// @Description 在指定箱子内创建物品记录
// @Tags Items
// @Accept json
// @Produce json
// @Param item body CreateItemPayload true "物品信息"
// @Success 201 {object} utils.SuccessResponse{data=models.Item} "创建成功的物品对象"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /items [post]
// @Security BearerAuth
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var payload CreateItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := utils.ValidateItemName(payload.Name); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	itemToCreate := &models.Item{
		BoxID:   payload.BoxID,
		Name:    payload.Name,
		Remarks: payload.Remarks,
	}

	createdItem, err := h.service.CreateItem(itemToCreate)
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			utils.RespondNotFoundError(c, "箱子")
		} else {
			utils.RespondInternalServerError(c, "创建物品失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, createdItem, "物品创建成功")
}

// UpdateItem godoc
// @Summary 更新物品信息
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "物品数据库 ID"
// @Param item body models.ItemUpdatePayload true "要更新的字段"
// @Success 200 {object} utils.SuccessResponse{data=models.Item} "更新后的物品对象"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "物品未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /items/{id} [put]
// @Security BearerAuth
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload models.ItemUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	updatedItem, err := h.service.UpdateItem(id, payload)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondNotFoundError(c, "物品")
		} else {
			utils.RespondValidationError(c, err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, updatedItem, "物品更新成功")
}

// DeleteItem godoc
// @Summary 删除物品
// @Tags Items
// @Produce json
// @Param id path int true "物品数据库 ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "物品未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /items/{id} [delete]
// @Security BearerAuth
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondNotFoundError(c, "物品")
		} else {
			utils.RespondInternalServerError(c, "删除物品失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "物品删除成功")
}

// MoveItem godoc
// @Summary 移动物品到另一个箱子
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "物品数据库 ID"
// @Param payload body MoveItemPayload true "目标箱子"
// @Success 200 {object} utils.SuccessResponse{data=models.Item} "移动后的物品对象"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "物品或目标箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /items/{id}/move [post]
// @Security BearerAuth
func (h *ItemHandler) MoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload MoveItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	movedItem, err := h.service.MoveItem(id, payload.TargetBoxID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			utils.RespondNotFoundError(c, "物品")
		case errors.Is(err, services.ErrBoxNotFound):
			utils.RespondNotFoundError(c, "目标箱子")
		default:
			utils.RespondInternalServerError(c, "移动物品失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, movedItem, "物品移动成功")
}

// MoveItems godoc
// @Summary 批量移动物品到另一个箱子
// @Description 单个物品移动失败不会中断整批操作，返回成功移动的数量
// @Tags Items
// @Accept json
// @Produce json
// @Param payload body BulkMoveItemsPayload true "物品 ID 列表与目标箱子"
// @Success 200 {object} utils.SuccessResponse{data=BulkMoveResult} "移动结果"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "目标箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /items/move [post]
// @Security BearerAuth
func (h *ItemHandler) MoveItems(c *gin.Context) {
	var payload BulkMoveItemsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	moved, err := h.service.MoveItems(payload.ItemIDs, payload.TargetBoxID)
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			utils.RespondNotFoundError(c, "目标箱子")
		} else {
			utils.RespondInternalServerError(c, "批量移动物品失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, BulkMoveResult{Moved: moved, Requested: len(payload.ItemIDs)}, "")
}
