package api

import (
	"net/http"

	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms queries.RoomQueries
}

func NewRoomHandler(rooms queries.RoomQueries) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// @Summary List rooms
// @Description Full room catalog regardless of availability
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	responses := make([]*resdto.RoomResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromRoomView(v)
	}
	c.JSON(http.StatusOK, responses)
}
