package repository

import (
	"fmt"

	"revenda_veiculos/internal/domain/entities"
)

type vehicleItem struct {
	ID        string `dynamodbav:"id"`
	Version   int    `dynamodbav:"version"`
	Brand     string `dynamodbav:"brand"`
	Model     string `dynamodbav:"model"`
	Year      int    `dynamodbav:"year"`
	Color     string `dynamodbav:"color"`
	Price     string `dynamodbav:"price"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Version   int    `dynamodbav:"version"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Cpf       string `dynamodbav:"cpf"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type paymentItem struct {
	ID        string `dynamodbav:"id"`
	Version   int    `dynamodbav:"version"`
	SaleID    string `dynamodbav:"sale_id"`
	Code      string `dynamodbav:"code"`
	Amount    string `dynamodbav:"amount"`
	Status    string `dynamodbav:"status"`
	Provider  string `dynamodbav:"provider,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type saleItem struct {
	ID         string `dynamodbav:"id"`
	Version    int    `dynamodbav:"version"`
	VehicleID  string `dynamodbav:"vehicle_id"`
	ClientID   string `dynamodbav:"client_id"`
	PaymentID  string `dynamodbav:"payment_id"`
	BuyerCpf   string `dynamodbav:"buyer_cpf"`
	SaleDate   string `dynamodbav:"sale_date"`
	TotalPrice string `dynamodbav:"total_price"`
	Canceled   bool   `dynamodbav:"canceled"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// uniqueItem is a guard row in the uniques table.
type uniqueItem struct {
	Key     string `dynamodbav:"key"`
	OwnerID string `dynamodbav:"owner_id"`
}

func baseOf(id string, version int, createdAt, updatedAt string) (entities.Base, error) {
	created, err := parseTime("created_at", createdAt)
	if err != nil {
		return entities.Base{}, err
	}
	updated, err := parseTime("updated_at", updatedAt)
	if err != nil {
		return entities.Base{}, err
	}
	return entities.Base{
		ID:        id,
		Version:   version,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

func toVehicleItem(v *entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:        v.ID,
		Version:   v.Version,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		Price:     v.Price.String(),
		Status:    string(v.Status),
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func fromVehicleItem(it vehicleItem) (*entities.Vehicle, error) {
	base, err := baseOf(it.ID, it.Version, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s: %w", it.ID, err)
	}
	price, err := parseDecimal("price", it.Price)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s: %w", it.ID, err)
	}
	status, err := entities.ParseVehicleStatus(it.Status)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s: stored status %q: %w", it.ID, it.Status, err)
	}
	return &entities.Vehicle{
		Base:   base,
		Brand:  it.Brand,
		Model:  it.Model,
		Year:   it.Year,
		Color:  it.Color,
		Price:  price,
		Status: status,
	}, nil
}

func toClientItem(c *entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Version:   c.Version,
		Name:      c.Name,
		Email:     c.Email,
		Cpf:       c.Cpf.String(),
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) (*entities.Client, error) {
	cpf, err := entities.ParseCpf(it.Cpf)
	if err != nil {
		return nil, err
	}
	base, err := baseOf(it.ID, it.Version, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", it.ID, err)
	}
	return &entities.Client{
		Base:  base,
		Name:  it.Name,
		Email: it.Email,
		Cpf:   cpf,
	}, nil
}

func toPaymentItem(p *entities.Payment) paymentItem {
	return paymentItem{
		ID:        p.ID,
		Version:   p.Version,
		SaleID:    p.SaleID,
		Code:      p.Code,
		Amount:    p.Amount.String(),
		Status:    string(p.Status),
		Provider:  p.Provider,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) (*entities.Payment, error) {
	base, err := baseOf(it.ID, it.Version, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", it.ID, err)
	}
	amount, err := parseDecimal("amount", it.Amount)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", it.ID, err)
	}
	return &entities.Payment{
		Base:     base,
		SaleID:   it.SaleID,
		Code:     it.Code,
		Amount:   amount,
		Status:   entities.PaymentStatus(it.Status),
		Provider: it.Provider,
	}, nil
}

func toSaleItem(s *entities.Sale) saleItem {
	return saleItem{
		ID:         s.ID,
		Version:    s.Version,
		VehicleID:  s.VehicleID,
		ClientID:   s.ClientID,
		PaymentID:  s.PaymentID,
		BuyerCpf:   s.BuyerCpf.String(),
		SaleDate:   formatTime(s.SaleDate),
		TotalPrice: s.TotalPrice.String(),
		Canceled:   s.Canceled,
		CreatedAt:  formatTime(s.CreatedAt),
		UpdatedAt:  formatTime(s.UpdatedAt),
	}
}

func fromSaleItem(it saleItem) (*entities.Sale, error) {
	cpf, err := entities.ParseCpf(it.BuyerCpf)
	if err != nil {
		return nil, err
	}
	base, err := baseOf(it.ID, it.Version, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("sale %s: %w", it.ID, err)
	}
	saleDate, err := parseTime("sale_date", it.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("sale %s: %w", it.ID, err)
	}
	total, err := parseDecimal("total_price", it.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("sale %s: %w", it.ID, err)
	}
	return &entities.Sale{
		Base:       base,
		VehicleID:  it.VehicleID,
		ClientID:   it.ClientID,
		PaymentID:  it.PaymentID,
		BuyerCpf:   cpf,
		SaleDate:   saleDate,
		TotalPrice: total,
		Canceled:   it.Canceled,
	}, nil
}
