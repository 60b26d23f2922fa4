package response

import (
	"booking-core/internal/usecase/queries"
)

type AvailabilityRowResponse struct {
	RoomNumber    int32  `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	StayCostCents int64  `json:"stayCostCents"`
}

func FromAvailabilityRows(rows []*queries.AvailabilityRow) []*AvailabilityRowResponse {
	out := make([]*AvailabilityRowResponse, len(rows))
	for i, row := range rows {
		out[i] = &AvailabilityRowResponse{
			RoomNumber:    row.RoomNumber,
			RoomType:      row.RoomType,
			StayCostCents: row.StayCostCents,
		}
	}
	return out
}
