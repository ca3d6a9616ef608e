// Package invoice turns a finished service history into a printable invoice.
// It only formats data; it never validates or mutates anything.
package invoice

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"bengkel-service/internal/domain/money"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "02 Jan 2006"

type Party struct {
	Name  string
	Email string
}

type VehicleInfo struct {
	Plate string
	Brand string
	Model string
}

type SourceLine struct {
	Kind      string
	Name      string
	Quantity  int
	UnitPrice money.Money
	LineTotal money.Money
}

// Source is a history entry with every reference already resolved.
type Source struct {
	HistoryID   uuid.UUID
	BookingID   uuid.UUID
	QueueNumber int
	ServiceDate time.Time
	IssuedAt    time.Time
	Status      string
	Customer    Party
	Staff       Party
	Vehicle     *VehicleInfo
	Lines       []SourceLine
	Total       money.Money
}

type Line struct {
	No            int
	Kind          string
	Description   string
	Quantity      int
	UnitPrice     money.Money
	LineTotal     money.Money
	UnitPriceText string
	LineTotalText string
}

type Invoice struct {
	Number      string
	HistoryID   uuid.UUID
	BookingID   uuid.UUID
	QueueNumber int
	ServiceDate string
	IssuedAt    string
	Status      string
	Customer    Party
	Staff       Party
	Vehicle     *VehicleInfo
	Lines       []Line
	Total       money.Money
	TotalText   string
}

var printer = message.NewPrinter(language.Indonesian)

func Project(src Source) Invoice {
	lines := make([]Line, len(src.Lines))
	for i, l := range src.Lines {
		lines[i] = Line{
			No:            i + 1,
			Kind:          l.Kind,
			Description:   l.Name,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			LineTotal:     l.LineTotal,
			UnitPriceText: FormatRupiah(l.UnitPrice),
			LineTotalText: FormatRupiah(l.LineTotal),
		}
	}

	return Invoice{
		Number:      Number(src.HistoryID, src.IssuedAt),
		HistoryID:   src.HistoryID,
		BookingID:   src.BookingID,
		QueueNumber: src.QueueNumber,
		ServiceDate: src.ServiceDate.Format(dateLayout),
		IssuedAt:    src.IssuedAt.Format(dateLayout),
		Status:      src.Status,
		Customer:    src.Customer,
		Staff:       src.Staff,
		Vehicle:     src.Vehicle,
		Lines:       lines,
		Total:       src.Total,
		TotalText:   FormatRupiah(src.Total),
	}
}

// Number is deterministic so the same history always prints the same invoice number.
func Number(historyID uuid.UUID, issuedAt time.Time) string {
	return fmt.Sprintf("INV-%s-%s", issuedAt.Format("20060102"), strings.ToUpper(historyID.String()[:8]))
}

// FormatRupiah renders "Rp 150.000", with ",50" style cents only when present.
func FormatRupiah(m money.Money) string {
	d := m.Decimal()
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).Abs().IntPart()

	s := printer.Sprintf("Rp %d", whole.IntPart())
	if cents != 0 {
		s += fmt.Sprintf(",%02d", cents)
	}
	return s
}

func (inv Invoice) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "INVOICE %s\n", inv.Number)
	fmt.Fprintf(&b, "Issued      : %s\n", inv.IssuedAt)
	fmt.Fprintf(&b, "Service date: %s (queue #%d)\n", inv.ServiceDate, inv.QueueNumber)
	fmt.Fprintf(&b, "Customer    : %s <%s>\n", inv.Customer.Name, inv.Customer.Email)
	fmt.Fprintf(&b, "Mechanic    : %s\n", inv.Staff.Name)
	if inv.Vehicle != nil {
		fmt.Fprintf(&b, "Vehicle     : %s %s %s\n", inv.Vehicle.Plate, inv.Vehicle.Brand, inv.Vehicle.Model)
	}
	fmt.Fprintf(&b, "Status      : %s\n\n", inv.Status)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "No\tItem\tQty\tUnit price\tTotal\t")
	for _, l := range inv.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t\n", l.No, l.Description, l.Quantity, l.UnitPriceText, l.LineTotalText)
	}
	_ = tw.Flush()

	fmt.Fprintf(&b, "\nTOTAL: %s\n", inv.TotalText)
	return b.String()
}
