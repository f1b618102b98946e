package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalakal/kalakal-api/internal/core/domain"
	"github.com/kalakal/kalakal-api/internal/core/port"
	"github.com/kalakal/kalakal-api/internal/core/utils"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.UserService
}

func NewUserHandler(service port.UserService, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type userRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Address  string `json:"address"`
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	userReq := userRequest{}
	err := ctx.ShouldBindBodyWithJSON(&userReq)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	role := domain.Role(userReq.Role)
	switch role {
	case domain.RoleBuyer, domain.RoleSeller, domain.RoleRider:
	case "":
		role = domain.RoleBuyer
	default:
		// Admin accounts are provisioned out of band.
		uh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	hashed, err := utils.HashPassword(userReq.Password)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	user := &domain.User{
		Login:    userReq.Login,
		Password: hashed,
		Role:     role,
		Address:  userReq.Address,
	}

	created, err := uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, gin.H{
		"id":        created.ID,
		"login":     created.Login,
		"role":      created.Role,
		"loginCode": created.LoginCode,
	}, http.StatusCreated)
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	userReq := userRequest{}
	err := ctx.ShouldBindBodyWithJSON(&userReq)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, userReq.Login, userReq.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{"token": token})
}
