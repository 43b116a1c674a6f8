package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/firehall/personnel-agent/api/v1"
	"github.com/firehall/personnel-agent/internal/models"
)

// ListInventory returns every inventory item joined with its assignee's
// name
// (GET /inventory)
func (h *Handler) ListInventory(c *gin.Context) {
	views, err := h.inventorySrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]v1.InventoryItemView, 0, len(views))
	for _, v := range views {
		out = append(out, v1.NewInventoryItemView(v))
	}
	c.JSON(http.StatusOK, out)
}

// GetInventoryItem returns a single inventory item
// (GET /inventory/:id)
func (h *Handler) GetInventoryItem(c *gin.Context) {
	rec, err := h.inventorySrv.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// AddInventoryItem registers a new piece of equipment
// (POST /inventory)
func (h *Handler) AddInventoryItem(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	rec, err := h.inventorySrv.Add(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// UpdateInventoryItem updates an inventory item in place
// (PUT /inventory/:id)
func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	var input models.Record
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}
	input["id"] = c.Param("id")

	rec, err := h.inventorySrv.Update(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteInventoryItem removes an inventory item
// (DELETE /inventory/:id)
func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	if err := h.inventorySrv.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignInventoryItem assigns the item to a member, or unassigns it when
// personnel_id is zero
// (POST /inventory/:id/assign)
func (h *Handler) AssignInventoryItem(c *gin.Context) {
	var req v1.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	rec, err := h.inventorySrv.Assign(c.Request.Context(), c.Param("id"), req.PersonnelID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
