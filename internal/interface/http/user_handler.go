package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/records-api/internal/application"
	"github.com/oksasatya/records-api/internal/domain/entity"
	"github.com/oksasatya/records-api/pkg/response"
)

type UserHandler struct {
	Svc *application.UserService
	renderer
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		Svc:      svc,
		renderer: renderer{logger: logger, style: fieldErrors, notFound: "User not found"},
	}
}

type userBody struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type loginUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginBody struct {
	AccessToken string    `json:"access_token"`
	User        loginUser `json:"user"`
}

func toUserBody(u *entity.User) userBody {
	return userBody{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func (h *UserHandler) Register(c *gin.Context) {
	var in application.RegisterInput
	if !bindJSON(c, &in) {
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), &in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, toUserBody(u))
}

func (h *UserHandler) Login(c *gin.Context) {
	var in application.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), &in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, loginBody{
		AccessToken: res.AccessToken,
		User:        loginUser{ID: res.User.ID, Email: res.User.Email, Name: res.User.Name},
	})
}

// Me returns the account behind the bearer token.
func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := identity(c)
	if !ok {
		return
	}
	u, err := h.Svc.Me(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toUserBody(u))
}
