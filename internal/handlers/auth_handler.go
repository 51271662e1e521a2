package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/KuntzeM/BoxCopilot/configs"
	"github.com/KuntzeM/BoxCopilot/internal/auth"
	"github.com/KuntzeM/BoxCopilot/internal/services"
	"github.com/KuntzeM/BoxCopilot/pkg/utils"
)

// AuthHandler 封装了认证相关的 HTTP 处理逻辑
type AuthHandler struct {
	userService services.UserService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login godoc
// @Summary 管理员登录
// @Description 验证管理员凭证并返回 JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "登录凭证"
// @Success 200 {object} utils.SuccessResponse{data=LoginResponse} "登录成功，返回 Token 和用户信息"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "无效的用户名或密码"
// @Failure 500 {object} utils.APIErrorResponse "无法生成Token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondUnauthorizedError(c, services.ErrInvalidCredentials.Error())
		} else {
			utils.RespondInternalServerError(c, "登录失败", err.Error())
		}
		return
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &auth.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "boxcopilot",              // 可选，签发者
			Audience:  jwt.ClaimStrings{"admin"}, // 可选，受众
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(configs.AppConfig.JWTSecret))
	if err != nil {
		utils.RespondInternalServerError(c, "无法生成Token", err.Error())
		return
	}

	loginResp := LoginResponse{
		Token: tokenString,
		User: UserInfo{
			Username: user.Username,
			Role:     user.Role,
		},
	}
	utils.RespondSuccess(c, http.StatusOK, loginResp, "登录成功")
}

// Logout godoc
// @Summary 用户登出
// @Description 将当前 Token 加入拒绝列表使其失效
// @Tags auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Success 200 {object} utils.SuccessResponse "成功登出"
// @Failure 400 {object} utils.APIErrorResponse "错误的请求 (例如，上下文中缺少JTI或EXP)"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	jtiVal, jtiExists := c.Get("jti")
	expVal, expExists := c.Get("exp")

	if !jtiExists || !expExists {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: JTI or EXP not found in context", nil)
		return
	}

	jti, okJTI := jtiVal.(string)
	exp, okEXP := expVal.(time.Time)

	if !okJTI || jti == "" {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: Invalid JTI", nil)
		return
	}
	if !okEXP {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: Invalid EXP", nil)
		return
	}

	auth.AddToDenylist(jti, exp)
	utils.RespondSuccess(c, http.StatusOK, nil, "成功登出")
}
