package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	mongorepo "github.com/melroseheights/portfolio-backend/internal/repositories/mongo"
	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// CreateRequest and UpdateRequest are satisfied by the per-entity request
// types in models; SetFields returning only the explicitly present fields is
// what gives updates their partial semantics.
type CreateRequest interface{ Fields() bson.M }

type UpdateRequest interface{ SetFields() bson.M }

// CrudHandler serves the uniform list/create/update/delete surface shared by
// every list-shaped entity kind.
type CrudHandler[T any, C CreateRequest, U UpdateRequest] struct {
	repo   mongorepo.Repository[T]
	entity string
	filter func(*gin.Context) bson.M
}

func NewCrudHandler[T any, C CreateRequest, U UpdateRequest](
	repo mongorepo.Repository[T],
	entity string,
	filter func(*gin.Context) bson.M,
) *CrudHandler[T, C, U] {
	return &CrudHandler[T, C, U]{repo: repo, entity: entity, filter: filter}
}

func (h *CrudHandler[T, C, U]) List(c *gin.Context) {
	filter := bson.M{}
	if h.filter != nil {
		filter = h.filter(c)
	}

	docs, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *CrudHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, h.entity+"Handler.Create", "invalid request body", err))
		return
	}

	doc, err := h.repo.Create(c.Request.Context(), req.Fields())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *CrudHandler[T, C, U]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, h.entity+"Handler.Update", "invalid request body", err))
		return
	}

	doc, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.SetFields())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *CrudHandler[T, C, U]) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.entity + " deleted successfully"})
}
