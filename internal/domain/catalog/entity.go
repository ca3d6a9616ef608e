package catalog

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"bengkel-service/internal/domain/money"

	"github.com/google/uuid"
)

var partCodeRegex = regexp.MustCompile(`^[A-Z0-9\-]{2,40}$`)

// Item is either a labor service or a sparepart; code is empty for services.
type Item struct {
	id        uuid.UUID
	kind      Kind
	code      string
	name      string
	price     money.Money
	createdAt time.Time
}

func NewService(name string, price money.Money, now time.Time) (*Item, error) {
	return newItem(KindService, "", name, price, now)
}

func NewSparepart(code, name string, price money.Money, now time.Time) (*Item, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !partCodeRegex.MatchString(code) {
		return nil, ErrInvalidPartCode
	}
	return newItem(KindSparepart, code, name, price, now)
}

func newItem(kind Kind, code, name string, price money.Money, now time.Time) (*Item, error) {
	name = strings.Join(strings.Fields(name), " ")
	if n := utf8.RuneCountInString(name); n < 2 || n > 150 {
		return nil, ErrInvalidItemName
	}
	if price.Decimal().IsNegative() {
		return nil, ErrNegativeItemCost
	}
	return &Item{
		id:        uuid.New(),
		kind:      kind,
		code:      code,
		name:      name,
		price:     price,
		createdAt: now,
	}, nil
}

func ReconstructItem(id uuid.UUID, kind Kind, code, name string, price money.Money, createdAt time.Time) *Item {
	return &Item{id: id, kind: kind, code: code, name: name, price: price, createdAt: createdAt}
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Kind() Kind           { return i.kind }
func (i *Item) Code() string         { return i.code }
func (i *Item) Name() string         { return i.name }
func (i *Item) Price() money.Money   { return i.price }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
