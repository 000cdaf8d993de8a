package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hmorales/wedplan/internal/models"
	"github.com/hmorales/wedplan/internal/storage"
)

const vendorColumns = `id, name, category, contact_name, contact_email, contact_phone,
	pricing_model, base_cost, payment_status, amount_paid, notes, created_at, updated_at`

func scanVendor(scanner interface{ Scan(...any) error }) (*models.Vendor, error) {
	v := &models.Vendor{}
	var contactName, contactEmail, contactPhone, notes sql.NullString
	err := scanner.Scan(
		&v.ID, &v.Name, &v.Category, &contactName, &contactEmail, &contactPhone,
		&v.PricingModel, &v.BaseCost, &v.PaymentStatus, &v.AmountPaid, &notes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.ContactName = strPtr(contactName)
	v.ContactEmail = strPtr(contactEmail)
	v.ContactPhone = strPtr(contactPhone)
	v.Notes = strPtr(notes)
	return v, nil
}

// CreateVendor persists a new vendor, assigning ID and timestamps.
func (s *PostgresStore) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	_, err := s.exec(ctx,
		`INSERT INTO vendors (`+vendorColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		vendor.ID, vendor.Name, vendor.Category,
		nullStr(vendor.ContactName), nullStr(vendor.ContactEmail), nullStr(vendor.ContactPhone),
		vendor.PricingModel, vendor.BaseCost, vendor.PaymentStatus, vendor.AmountPaid,
		nullStr(vendor.Notes), vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vendor: %w", err)
	}
	return nil
}

// GetVendor retrieves a vendor by ID.
func (s *PostgresStore) GetVendor(ctx context.Context, id string) (*models.Vendor, error) {
	vendor, err := scanVendor(s.queryRow(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vendor %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return vendor, nil
}

// ListVendors retrieves vendors matching the filter, ordered by category
// then name.
func (s *PostgresStore) ListVendors(ctx context.Context, filter models.VendorFilter) ([]models.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	var conditions []string
	var args []any

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.PricingModel != "" {
		conditions = append(conditions, "pricing_model = ?")
		args = append(args, filter.PricingModel)
	}
	if filter.PaymentStatus != "" {
		conditions = append(conditions, "payment_status = ?")
		args = append(args, filter.PaymentStatus)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY category, name"

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []models.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendors: %w", err)
	}
	return vendors, nil
}

// UpdateVendor writes the full vendor record back.
func (s *PostgresStore) UpdateVendor(ctx context.Context, vendor *models.Vendor) error {
	vendor.UpdatedAt = time.Now().Unix()

	res, err := s.exec(ctx,
		`UPDATE vendors SET name = ?, category = ?, contact_name = ?, contact_email = ?,
		 contact_phone = ?, pricing_model = ?, base_cost = ?, payment_status = ?,
		 amount_paid = ?, notes = ?, updated_at = ? WHERE id = ?`,
		vendor.Name, vendor.Category,
		nullStr(vendor.ContactName), nullStr(vendor.ContactEmail), nullStr(vendor.ContactPhone),
		vendor.PricingModel, vendor.BaseCost, vendor.PaymentStatus, vendor.AmountPaid,
		nullStr(vendor.Notes), vendor.UpdatedAt, vendor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("vendor %s: %w", vendor.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteVendor removes a vendor by ID.
func (s *PostgresStore) DeleteVendor(ctx context.Context, id string) error {
	res, err := s.exec(ctx, "DELETE FROM vendors WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("vendor %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// CountVendors returns the total number of vendors.
func (s *PostgresStore) CountVendors(ctx context.Context) (int, error) {
	var count int
	err := s.queryRow(ctx, "SELECT COUNT(*) FROM vendors").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vendors: %w", err)
	}
	return count, nil
}

// CountVendorsByStatus returns the number of vendors with the given payment status.
func (s *PostgresStore) CountVendorsByStatus(ctx context.Context, status models.PaymentStatus) (int, error) {
	var count int
	err := s.queryRow(ctx,
		"SELECT COUNT(*) FROM vendors WHERE payment_status = ?", status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vendors by status: %w", err)
	}
	return count, nil
}
