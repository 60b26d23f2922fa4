package receipt

import (
	"bytes"
	"fmt"

	"booking-core/internal/usecase/queries"

	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "2006-01-02"

// Render produces the printable receipt for a booked reservation, served
// from the admin reservation detail.
func Render(view *queries.ReservationView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Reservation receipt")
	pdf.Ln(16)

	rows := [][2]string{
		{"Reservation", view.ID.String()},
		{"Guest", view.FirstName + " " + view.LastName},
		{"Email", view.Email},
		{"Room", fmt.Sprintf("%d (%s)", view.RoomNumber, view.RoomType)},
		{"Check-in", view.CheckIn.Format(dateLayout)},
		{"Check-out", view.CheckOut.Format(dateLayout)},
		{"Nights", fmt.Sprintf("%d", view.Nights)},
		{"Card", "**** " + view.CardLast4},
		{"Total", fmt.Sprintf("$%d.%02d", view.TotalCents/100, view.TotalCents%100)},
		{"Booked at", view.CreatedAt.Format("2006-01-02 15:04")},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(40, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
