package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
	"github.com/KuntzeM/BoxCopilot/internal/services"
	"github.com/KuntzeM/BoxCopilot/pkg/utils"
)

// BoxHandler 封装了箱子相关的 HTTP 处理逻辑
type BoxHandler struct {
	service services.BoxService
}

// NewBoxHandler 创建一个新的 BoxHandler 实例
func NewBoxHandler(service services.BoxService) *BoxHandler {
	return &BoxHandler{service: service}
}

// CreateBoxPayload 定义了创建箱子请求的 JSON 结构体
type CreateBoxPayload struct {
	CurrentRoom *string `json:"currentRoom,omitempty" binding:"omitempty,max=255"`
	TargetRoom  *string `json:"targetRoom,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	IsFragile   bool    `json:"isFragile"`
	NoStack     bool    `json:"noStack"`
}

// ListBoxes godoc
// @Summary 获取箱子列表
// @Description 返回全部箱子及其物品，按箱号降序排列
// @Tags Boxes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.Box} "箱子列表"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /boxes [get]
// @Security BearerAuth
func (h *BoxHandler) ListBoxes(c *gin.Context) {
	boxes, err := h.service.GetAllBoxes()
	if err != nil {
		utils.RespondInternalServerError(c, "获取箱子列表失败", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, boxes, "")
}

// GetBox godoc
// @Summary 获取单个箱子详情
// @Description 根据 UUID 返回箱子及其物品
// @Tags Boxes
// @Produce json
// @Param uuid path string true "箱子 UUID"
// @Success 200 {object} utils.SuccessResponse{data=models.Box} "箱子详情"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /boxes/{uuid} [get]
// @Security BearerAuth
func (h *BoxHandler) GetBox(c *gin.Context) {
	boxUUID := c.Param("uuid")
	box, err := h.service.GetBoxByUUID(boxUUID)
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			utils.RespondNotFoundError(c, "箱子")
		} else {
			utils.RespondInternalServerError(c, "获取箱子详情失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, box, "")
}

// CreateBox godoc
// @Summary 新增一个箱子
// @Description 创建箱子记录，箱号由号码池自动分配（优先复用最小的可用号码）
// @Tags Boxes
// @Accept json
// @Produce json
// @Param box body CreateBoxPayload true "箱子信息"
// @Success 201 {object} utils.SuccessResponse{data=models.Box} "创建成功的箱子对象"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /boxes [post]
// @Security BearerAuth
func (h *BoxHandler) CreateBox(c *gin.Context) {
	var payload CreateBoxPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	boxToCreate := &models.Box{
		CurrentRoom: payload.CurrentRoom,
		TargetRoom:  payload.TargetRoom,
		Description: payload.Description,
		IsFragile:   payload.IsFragile,
		NoStack:     payload.NoStack,
	}

	createdBox, err := h.service.CreateBox(boxToCreate)
	if err != nil {
		if errors.Is(err, repositories.ErrBoxUUIDConflict) {
			utils.RespondConflictError(c, repositories.ErrBoxUUIDConflict.Error())
		} else {
			utils.RespondInternalServerError(c, "创建箱子失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, createdBox, "箱子创建成功")
}

// UpdateBox godoc
// @Summary 更新箱子信息
// @Description 更新箱子的房间、描述等字段。箱号不允许修改。
// @Tags Boxes
// @Accept json
// @Produce json
// @Param id path int true "箱子数据库 ID"
// @Param box body models.BoxUpdatePayload true "要更新的字段"
// @Success 200 {object} utils.SuccessResponse{data=models.Box} "更新后的箱子对象"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /boxes/{id} [put]
// @Security BearerAuth
func (h *BoxHandler) UpdateBox(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload models.BoxUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	updatedBox, err := h.service.UpdateBox(id, payload)
	if err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			utils.RespondNotFoundError(c, "箱子")
		} else {
			utils.RespondValidationError(c, err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, updatedBox, "箱子更新成功")
}

// DeleteBox godoc
// @Summary 删除箱子
// @Description 删除箱子及其全部物品，箱号归还到号码池等待复用
// @Tags Boxes
// @Produce json
// @Param id path int true "箱子数据库 ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "箱子未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /boxes/{id} [delete]
// @Security BearerAuth
func (h *BoxHandler) DeleteBox(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBox(id); err != nil {
		if errors.Is(err, services.ErrBoxNotFound) {
			utils.RespondNotFoundError(c, "箱子")
		} else {
			utils.RespondInternalServerError(c, "删除箱子失败", err.Error())
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "箱子删除成功")
}
