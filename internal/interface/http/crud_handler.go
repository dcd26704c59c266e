package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/records-api/pkg/response"
)

// ownedService is the scoped CRUD surface of an application resource.
type ownedService[T any, In any] interface {
	List(ctx context.Context, owner int64) ([]T, error)
	Create(ctx context.Context, owner int64, in In) (int64, error)
	Update(ctx context.Context, owner, id int64, in In) (int64, error)
	Delete(ctx context.Context, owner, id int64) error
}

type crudMessages struct {
	created string
	updated string
	deleted string
}

// crudHandler serves list/create/update/delete for one owned resource.
// Every call runs as the authenticated identity.
type crudHandler[T any, In any] struct {
	svc      ownedService[T, In]
	newInput func() In
	msgs     crudMessages
	renderer
}

func (h *crudHandler[T, In]) List(c *gin.Context) {
	uid, ok := identity(c)
	if !ok {
		return
	}
	rows, err := h.svc.List(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

func (h *crudHandler[T, In]) Create(c *gin.Context) {
	uid, ok := identity(c)
	if !ok {
		return
	}
	in := h.newInput()
	if !bindJSON(c, in) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), uid, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, response.Created{ID: id, Message: h.msgs.created})
}

func (h *crudHandler[T, In]) Update(c *gin.Context) {
	uid, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, h.notFound)
		return
	}
	in := h.newInput()
	if !bindJSON(c, in) {
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), uid, id, in); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Created{ID: id, Message: h.msgs.updated})
}

func (h *crudHandler[T, In]) Delete(c *gin.Context) {
	uid, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, h.notFound)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), uid, id); err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Message{Message: h.msgs.deleted})
}
