package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the aggregate root binding one Vehicle, one Client and the Payment
// it owns.
//
// Storage model (DynamoDB):
//   - PK: id
//   - unique guard: sale_vehicle#<vehicle_id> -> id, held while the sale is
//     not canceled
//
// Vehicle, Client and Payment are hydrated by the repository when the sale is
// loaded; the *ID fields are the persisted references.
type Sale struct {
	Base
	VehicleID  string          `json:"vehicle_id"`
	ClientID   string          `json:"client_id"`
	PaymentID  string          `json:"payment_id"`
	BuyerCpf   Cpf             `json:"-"`
	SaleDate   time.Time       `json:"sale_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Canceled   bool            `json:"canceled"`

	Vehicle *Vehicle `json:"-"`
	Client  *Client  `json:"-"`
	Payment *Payment `json:"-"`
}

// NewSale creates the sale and its pending payment. The vehicle price is
// snapshotted; a zero saleDate means "now".
//
// The returned ChangeSet inserts the sale and its payment and pins the
// vehicle's version, so a vehicle sold or edited in between fails the commit.
func NewSale(vehicle *Vehicle, client *Client, saleDate time.Time) (*Sale, ChangeSet, error) {
	var changes ChangeSet
	if vehicle == nil {
		return nil, changes, ErrVehicleNotFound
	}
	if client == nil {
		return nil, changes, ErrClientNotFound
	}
	if vehicle.IsSold() {
		return nil, changes, ErrVehicleAlreadySold
	}

	s := &Sale{
		Base:       newBase(),
		VehicleID:  vehicle.ID,
		ClientID:   client.ID,
		BuyerCpf:   client.Cpf,
		SaleDate:   now(),
		TotalPrice: vehicle.Price,
		Vehicle:    vehicle,
		Client:     client,
	}
	payment, err := newPayment(s.ID, vehicle.Price)
	if err != nil {
		return nil, changes, err
	}
	s.PaymentID = payment.ID
	s.Payment = payment
	if !saleDate.IsZero() {
		s.SaleDate = saleDate.UTC()
	}

	changes.Insert(payment)
	changes.Insert(s)
	changes.Check(vehicle)
	return s, changes, nil
}

// OwnsVehicle reports whether the sale still holds its vehicle. A canceled
// sale has released it, possibly to a later sale.
func (s *Sale) OwnsVehicle() bool {
	return !s.Canceled
}

// MarkPaid cascades Payment→paid and Vehicle→sold. The returned ChangeSet
// lists only what actually changed; it is empty on a replay.
//
// On a canceled sale only the payment is overwritten: the vehicle is no
// longer this sale's to sell.
func (s *Sale) MarkPaid(provider string) ChangeSet {
	var changes ChangeSet
	if s.Payment.ApplyStatus(PaymentStatusPaid, provider) {
		changes.Update(s.Payment)
	}
	if s.OwnsVehicle() && s.Vehicle.MarkSold() {
		changes.Update(s.Vehicle)
	}
	return s.seal(changes)
}

// MarkCanceled cascades Payment→canceled and Vehicle→available and flags the
// sale as canceled, which releases the vehicle for a new sale. Canceling an
// already canceled sale leaves the vehicle alone.
func (s *Sale) MarkCanceled(provider string) ChangeSet {
	var changes ChangeSet
	if s.Payment.ApplyStatus(PaymentStatusCanceled, provider) {
		changes.Update(s.Payment)
	}
	if s.OwnsVehicle() {
		if s.Vehicle.MarkAvailable() {
			changes.Update(s.Vehicle)
		}
		s.Canceled = true
		changes.Update(s)
	}
	return s.seal(changes)
}

// ApplyPaymentStatus dispatches a terminal payment status to MarkPaid or
// MarkCanceled.
func (s *Sale) ApplyPaymentStatus(status PaymentStatus, provider string) (ChangeSet, error) {
	switch status {
	case PaymentStatusPaid:
		return s.MarkPaid(provider), nil
	case PaymentStatusCanceled:
		return s.MarkCanceled(provider), nil
	default:
		return ChangeSet{}, ErrInvalidPaymentStatus
	}
}

// seal touches the sale and adds it to a non-empty change set.
func (s *Sale) seal(changes ChangeSet) ChangeSet {
	if changes.IsEmpty() {
		return changes
	}
	s.touch()
	changes.Update(s)
	return changes
}
