package store

import (
	"context"

	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// orderRow is an order joined with its item.
type orderRow struct {
	ID         int64  `db:"id"`
	CustomerID int64  `db:"customer_id"`
	Date       string `db:"date"`
	OrderTotal string `db:"order_total"`
	ItemID     int64  `db:"item_id"`
	ProductID  int64  `db:"product_id"`
	Quantity   int    `db:"quantity"`
}

const orderSelect = `
	SELECT o.id, o.customer_id, o.date, o.order_total,
		COALESCE(i.id, 0) AS item_id,
		COALESCE(i.product_id, 0) AS product_id,
		COALESCE(i.quantity, 0) AS quantity
	FROM orders o
	LEFT JOIN items i ON i.order_id = o.id`

func orderParams(order *domain.Order) map[string]any {
	return map[string]any{
		"id":          order.ID,
		"customer_id": order.CustomerID,
		"date":        order.Date,
		"order_total": order.OrderTotal.String(),
	}
}

func createOrder(ctx context.Context, exec executor, order *domain.Order) error {
	query := `
		INSERT INTO orders (customer_id, date, order_total)
		VALUES (:customer_id, :date, :order_total)`

	result, err := exec.NamedExecContext(ctx, query, orderParams(order))
	if err != nil {
		return writeError("CreateOrder", "order", 0, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return NewStoreError("CreateOrder", "order", "", err.Error(), err)
	}

	itemID, err := putItem(ctx, exec, "CreateOrder", id, order.Item)
	if err != nil {
		return err
	}

	order.ID = id
	order.Item.ID = itemID
	return nil
}

func getOrder(ctx context.Context, exec executor, id int64) (*domain.Order, error) {
	var row orderRow
	if err := getOne(ctx, exec, &row, "GetOrder", "order", orderSelect+` WHERE o.id = ?`, id); err != nil {
		return nil, err
	}
	return rowToOrder(&row)
}

func updateOrder(ctx context.Context, exec executor, order *domain.Order) error {
	query := `
		UPDATE orders SET
			customer_id = :customer_id,
			date = :date,
			order_total = :order_total
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, orderParams(order))
	if err != nil {
		return writeError("UpdateOrder", "order", order.ID, err)
	}
	if err := updatedRow(result, "UpdateOrder", "order", order.ID); err != nil {
		return err
	}

	itemID, err := putItem(ctx, exec, "UpdateOrder", order.ID, order.Item)
	if err != nil {
		return err
	}
	order.Item.ID = itemID
	return nil
}

func deleteOrder(ctx context.Context, exec executor, id int64) error {
	return deleteByID(ctx, exec, "DeleteOrder", "order", "orders", id)
}

func listOrders(ctx context.Context, exec executor) ([]domain.Order, error) {
	var rows []orderRow
	if err := exec.SelectContext(ctx, &rows, orderSelect+` ORDER BY o.id`); err != nil {
		return nil, NewStoreError("ListOrders", "order", "", err.Error(), err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := rowToOrder(&row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// putItem inserts or replaces the single item owned by orderID and returns its id.
func putItem(ctx context.Context, exec executor, op string, orderID int64, item domain.Item) (int64, error) {
	query := `
		INSERT INTO items (order_id, product_id, quantity)
		VALUES (:order_id, :product_id, :quantity)
		ON CONFLICT(order_id) DO UPDATE SET
			product_id = excluded.product_id,
			quantity = excluded.quantity`

	_, err := exec.NamedExecContext(ctx, query, map[string]any{
		"order_id":   orderID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})
	if err != nil {
		return 0, writeError(op, "item", orderID, err)
	}

	var id int64
	if err := exec.GetContext(ctx, &id, `SELECT id FROM items WHERE order_id = ?`, orderID); err != nil {
		return 0, NewStoreError(op, "item", idString(orderID), err.Error(), err)
	}
	return id, nil
}

func rowToOrder(row *orderRow) (*domain.Order, error) {
	total, err := decimal.NewFromString(row.OrderTotal)
	if err != nil {
		return nil, NewStoreError("rowToOrder", "order", idString(row.ID), "failed to parse order total", ErrInvalidData)
	}

	return &domain.Order{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Date:       row.Date,
		OrderTotal: total,
		Item: domain.Item{
			ID:        row.ItemID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
		},
	}, nil
}
