package store

import (
	"context"

	"github.com/artpar/gardencenter/internal/core/domain"
)

// customerRow is a customer joined with its address.
type customerRow struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	AddressID int64  `db:"address_id"`
	Street    string `db:"street"`
	City      string `db:"city"`
	State     string `db:"state"`
	Zipcode   string `db:"zipcode"`
}

const customerSelect = `
	SELECT c.id, c.name, c.email,
		COALESCE(a.id, 0) AS address_id,
		COALESCE(a.street, '') AS street,
		COALESCE(a.city, '') AS city,
		COALESCE(a.state, '') AS state,
		COALESCE(a.zipcode, '') AS zipcode
	FROM customers c
	LEFT JOIN addresses a ON a.customer_id = c.id`

func createCustomer(ctx context.Context, exec executor, customer *domain.Customer) error {
	query := `INSERT INTO customers (name, email) VALUES (:name, :email)`

	result, err := exec.NamedExecContext(ctx, query, map[string]any{
		"name":  customer.Name,
		"email": customer.Email,
	})
	if err != nil {
		return writeError("CreateCustomer", "customer", 0, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return NewStoreError("CreateCustomer", "customer", "", err.Error(), err)
	}

	addressID, err := putAddress(ctx, exec, "CreateCustomer", id, customer.Address)
	if err != nil {
		return err
	}

	customer.ID = id
	customer.Address.ID = addressID
	return nil
}

func getCustomer(ctx context.Context, exec executor, id int64) (*domain.Customer, error) {
	var row customerRow
	if err := getOne(ctx, exec, &row, "GetCustomer", "customer", customerSelect+` WHERE c.id = ?`, id); err != nil {
		return nil, err
	}
	customer := rowToCustomer(row)
	return &customer, nil
}

func updateCustomer(ctx context.Context, exec executor, customer *domain.Customer) error {
	query := `UPDATE customers SET name = :name, email = :email WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, map[string]any{
		"id":    customer.ID,
		"name":  customer.Name,
		"email": customer.Email,
	})
	if err != nil {
		return writeError("UpdateCustomer", "customer", customer.ID, err)
	}
	if err := updatedRow(result, "UpdateCustomer", "customer", customer.ID); err != nil {
		return err
	}

	addressID, err := putAddress(ctx, exec, "UpdateCustomer", customer.ID, customer.Address)
	if err != nil {
		return err
	}
	customer.Address.ID = addressID
	return nil
}

func deleteCustomer(ctx context.Context, exec executor, id int64) error {
	return deleteByID(ctx, exec, "DeleteCustomer", "customer", "customers", id)
}

func listCustomers(ctx context.Context, exec executor) ([]domain.Customer, error) {
	var rows []customerRow
	if err := exec.SelectContext(ctx, &rows, customerSelect+` ORDER BY c.id`); err != nil {
		return nil, NewStoreError("ListCustomers", "customer", "", err.Error(), err)
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, rowToCustomer(row))
	}
	return customers, nil
}

// putAddress inserts or replaces the single address owned by customerID and
// returns its id.
func putAddress(ctx context.Context, exec executor, op string, customerID int64, address domain.Address) (int64, error) {
	query := `
		INSERT INTO addresses (customer_id, street, city, state, zipcode)
		VALUES (:customer_id, :street, :city, :state, :zipcode)
		ON CONFLICT(customer_id) DO UPDATE SET
			street = excluded.street,
			city = excluded.city,
			state = excluded.state,
			zipcode = excluded.zipcode`

	_, err := exec.NamedExecContext(ctx, query, map[string]any{
		"customer_id": customerID,
		"street":      address.Street,
		"city":        address.City,
		"state":       address.State,
		"zipcode":     address.Zipcode,
	})
	if err != nil {
		return 0, writeError(op, "address", customerID, err)
	}

	var id int64
	if err := exec.GetContext(ctx, &id, `SELECT id FROM addresses WHERE customer_id = ?`, customerID); err != nil {
		return 0, NewStoreError(op, "address", idString(customerID), err.Error(), err)
	}
	return id, nil
}

func rowToCustomer(row customerRow) domain.Customer {
	return domain.Customer{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Address: domain.Address{
			ID:      row.AddressID,
			Street:  row.Street,
			City:    row.City,
			State:   row.State,
			Zipcode: row.Zipcode,
		},
	}
}
