package store

import (
	"context"

	"github.com/artpar/gardencenter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// productRow represents a product row in the database.
type productRow struct {
	ID           int64  `db:"id"`
	SKU          string `db:"sku"`
	Type         string `db:"type"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	Manufacturer string `db:"manufacturer"`
	Price        string `db:"price"`
}

func productParams(product *domain.Product) map[string]any {
	return map[string]any{
		"id":           product.ID,
		"sku":          product.SKU,
		"type":         product.Type,
		"name":         product.Name,
		"description":  product.Description,
		"manufacturer": product.Manufacturer,
		"price":        product.Price.String(),
	}
}

func createProduct(ctx context.Context, exec executor, product *domain.Product) error {
	query := `
		INSERT INTO products (sku, type, name, description, manufacturer, price)
		VALUES (:sku, :type, :name, :description, :manufacturer, :price)`

	result, err := exec.NamedExecContext(ctx, query, productParams(product))
	if err != nil {
		return writeError("CreateProduct", "product", 0, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return NewStoreError("CreateProduct", "product", "", err.Error(), err)
	}
	product.ID = id
	return nil
}

func getProduct(ctx context.Context, exec executor, id int64) (*domain.Product, error) {
	var row productRow
	if err := getOne(ctx, exec, &row, "GetProduct", "product", `SELECT * FROM products WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return rowToProduct(&row)
}

func updateProduct(ctx context.Context, exec executor, product *domain.Product) error {
	query := `
		UPDATE products SET
			sku = :sku,
			type = :type,
			name = :name,
			description = :description,
			manufacturer = :manufacturer,
			price = :price
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, productParams(product))
	if err != nil {
		return writeError("UpdateProduct", "product", product.ID, err)
	}
	return updatedRow(result, "UpdateProduct", "product", product.ID)
}

func deleteProduct(ctx context.Context, exec executor, id int64) error {
	return deleteByID(ctx, exec, "DeleteProduct", "product", "products", id)
}

func listProducts(ctx context.Context, exec executor) ([]domain.Product, error) {
	var rows []productRow
	if err := exec.SelectContext(ctx, &rows, `SELECT * FROM products ORDER BY id`); err != nil {
		return nil, NewStoreError("ListProducts", "product", "", err.Error(), err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := rowToProduct(&row)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

func rowToProduct(row *productRow) (*domain.Product, error) {
	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return nil, NewStoreError("rowToProduct", "product", idString(row.ID), "failed to parse price", ErrInvalidData)
	}

	return &domain.Product{
		ID:           row.ID,
		SKU:          row.SKU,
		Type:         row.Type,
		Name:         row.Name,
		Description:  row.Description,
		Manufacturer: row.Manufacturer,
		Price:        price,
	}, nil
}
