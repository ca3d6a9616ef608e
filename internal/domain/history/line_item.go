package history

import (
	"errors"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoLineItems          = errors.New("at least one line item is required")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrMissingItemReference = errors.New("each line item must reference a service or a sparepart")
)

// LineItemInput is one requested line before it is priced against the catalog.
// A nil UnitPrice means the catalog price applies.
type LineItemInput struct {
	Kind      catalog.Kind
	RefID     uuid.UUID
	Quantity  int
	UnitPrice *decimal.Decimal
}

// LineItemSpec is either Single or Many.
type LineItemSpec interface {
	inputs() []LineItemInput
}

type Single struct {
	Item LineItemInput
}

type Many struct {
	Items []LineItemInput
}

func (s Single) inputs() []LineItemInput { return []LineItemInput{s.Item} }

func (m Many) inputs() []LineItemInput { return m.Items }

// Normalize flattens either shape into one validated list.
func Normalize(spec LineItemSpec) ([]LineItemInput, error) {
	if spec == nil {
		return nil, ErrNoLineItems
	}
	items := spec.inputs()
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}

	out := make([]LineItemInput, 0, len(items))
	for _, in := range items {
		if !in.Kind.IsValid() {
			return nil, catalog.ErrInvalidKind
		}
		if in.RefID == uuid.Nil {
			return nil, ErrMissingItemReference
		}
		if in.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		out = append(out, in)
	}
	return out, nil
}

type LineItem struct {
	id        uuid.UUID
	kind      catalog.Kind
	refID     uuid.UUID
	name      string
	quantity  int
	unitPrice money.Money
	lineTotal money.Money
}

func NewLineItem(kind catalog.Kind, refID uuid.UUID, name string, quantity int, unitPrice money.Money) (LineItem, error) {
	if !kind.IsValid() {
		return LineItem{}, catalog.ErrInvalidKind
	}
	if refID == uuid.Nil {
		return LineItem{}, ErrMissingItemReference
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPrice.Decimal().IsNegative() {
		return LineItem{}, ErrNegativePrice
	}
	return LineItem{
		id:        uuid.New(),
		kind:      kind,
		refID:     refID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		lineTotal: unitPrice.Mul(quantity),
	}, nil
}

func ReconstructLineItem(id uuid.UUID, kind catalog.Kind, refID uuid.UUID, name string, quantity int, unitPrice, lineTotal money.Money) LineItem {
	return LineItem{id: id, kind: kind, refID: refID, name: name, quantity: quantity, unitPrice: unitPrice, lineTotal: lineTotal}
}

func (l LineItem) ID() uuid.UUID          { return l.id }
func (l LineItem) Kind() catalog.Kind     { return l.kind }
func (l LineItem) RefID() uuid.UUID       { return l.refID }
func (l LineItem) Name() string           { return l.name }
func (l LineItem) Quantity() int          { return l.quantity }
func (l LineItem) UnitPrice() money.Money { return l.unitPrice }
func (l LineItem) LineTotal() money.Money { return l.lineTotal }
