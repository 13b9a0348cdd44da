package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melroseheights/portfolio-backend/internal/services"
	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// SingletonHandler serves the two one-document entities (personal info,
// social links). A PUT never implicitly creates the document; seeding
// happens once at startup.
type SingletonHandler[T any, U UpdateRequest] struct {
	svc    services.SingletonService[T]
	entity string
}

func NewSingletonHandler[T any, U UpdateRequest](svc services.SingletonService[T], entity string) *SingletonHandler[T, U] {
	return &SingletonHandler[T, U]{svc: svc, entity: entity}
}

func (h *SingletonHandler[T, U]) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *SingletonHandler[T, U]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, h.entity+"Handler.Update", "invalid request body", err))
		return
	}

	doc, err := h.svc.Update(c.Request.Context(), req.SetFields())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
