// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"warebill/internal/core/id"
	"warebill/internal/infrastructure/storage/postgres"
	"warebill/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedDemoData(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	log.Info("seeding completed successfully")
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	// 1. Customers
	customers := []struct {
		name  string
		email string
	}{
		{"Acme Retail Ltd", "billing@acme-retail.example"},
		{"Northwind Traders", "accounts@northwind.example"},
		{"Blue Harbor Foods", "finance@blueharbor.example"},
	}

	customerIDs := make([]id.ID, 0, len(customers))

	for i, c := range customers {
		custID := id.New()
		code := fmt.Sprintf("CUS-%05d", i+1)
		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_customers (id, code, name, email, active, version, deletion_mark)
			VALUES ($1, $2, $3, $4, true, 1, false)
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, custID, code, c.name, c.email)
		if err != nil {
			log.Warnw("failed to seed customer", "name", c.name, "error", err)
			continue
		}

		// If the code already exists, reuse the existing row.
		if commandTag.RowsAffected() == 0 {
			err = pool.Pool.QueryRow(ctx, `
				SELECT id FROM cat_customers WHERE code = $1 AND deletion_mark = FALSE
			`, code).Scan(&custID)
			if err != nil {
				log.Warnw("failed to fetch existing customer id", "code", code, "error", err)
				continue
			}
		}

		customerIDs = append(customerIDs, custID)
	}

	// 2. Service types
	serviceTypes := []struct {
		name  string
		basis string // flat, per_order, per_unit
		rate  string
	}{
		{"Storage (monthly)", "flat", "250.00"},
		{"Order Handling", "per_order", "4.50"},
		{"Pick and Pack", "per_unit", "0.35"},
		{"Shipping Surcharge", "per_order", "12.00"},
	}

	serviceTypeIDs := make([]id.ID, 0, len(serviceTypes))

	for i, st := range serviceTypes {
		stID := id.New()
		code := fmt.Sprintf("SVC-%05d", i+1)
		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_service_types (id, code, name, basis, default_rate, active, version, deletion_mark)
			VALUES ($1, $2, $3, $4, $5, true, 1, false)
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, stID, code, st.name, st.basis, st.rate)
		if err != nil {
			log.Warnw("failed to seed service type", "name", st.name, "error", err)
			continue
		}

		if commandTag.RowsAffected() == 0 {
			err = pool.Pool.QueryRow(ctx, `
				SELECT id FROM cat_service_types WHERE code = $1 AND deletion_mark = FALSE
			`, code).Scan(&stID)
			if err != nil {
				log.Warnw("failed to fetch existing service type id", "code", code, "error", err)
				continue
			}
		}

		serviceTypeIDs = append(serviceTypeIDs, stID)
	}

	// 3. Products
	products := []struct {
		name     string
		sku      string
		price    string
		weightKg float64
	}{
		{"Cardboard Box (small)", "BOX-S", "1.20", 0.15},
		{"Cardboard Box (large)", "BOX-L", "2.80", 0.40},
		{"Thermal Label Roll", "LBL-THERM", "8.90", 0.55},
		{"Stretch Wrap 500mm", "WRAP-500", "14.50", 2.10},
	}

	productIDs := make([]id.ID, 0, len(products))

	for i, p := range products {
		prodID := id.New()
		code := fmt.Sprintf("PRD-%05d", i+1)
		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_products (id, code, name, sku, unit_price, weight_kg, active, version, deletion_mark)
			VALUES ($1, $2, $3, $4, $5, $6, true, 1, false)
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, prodID, code, p.name, p.sku, p.price, p.weightKg)
		if err != nil {
			log.Warnw("failed to seed product", "name", p.name, "error", err)
			continue
		}

		if commandTag.RowsAffected() == 0 {
			err = pool.Pool.QueryRow(ctx, `
				SELECT id FROM cat_products WHERE code = $1 AND deletion_mark = FALSE
			`, code).Scan(&prodID)
			if err != nil {
				log.Warnw("failed to fetch existing product id", "code", code, "error", err)
				continue
			}
		}

		productIDs = append(productIDs, prodID)
	}

	// 4. Materials
	materials := []struct {
		name string
		unit string
		cost string
	}{
		{"Bubble Wrap", "m", "0.45"},
		{"Packing Tape", "roll", "1.10"},
		{"Foam Peanuts", "kg", "3.20"},
	}

	for i, m := range materials {
		matID := id.New()
		code := fmt.Sprintf("MAT-%05d", i+1)
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_materials (id, code, name, unit, unit_cost, active, version, deletion_mark)
			VALUES ($1, $2, $3, $4, $5, true, 1, false)
			ON CONFLICT (code) WHERE deletion_mark = FALSE DO NOTHING
		`, matID, code, m.name, m.unit, m.cost)
		if err != nil {
			log.Warnw("failed to seed material", "name", m.name, "error", err)
		}
	}

	// 5. Rate assignments: every customer gets every service type at its
	// default rate so billing reports have something to calculate.
	for _, custID := range customerIDs {
		for _, stID := range serviceTypeIDs {
			var rate string
			err := pool.Pool.QueryRow(ctx, `
				SELECT default_rate FROM cat_service_types WHERE id = $1
			`, stID).Scan(&rate)
			if err != nil {
				log.Warnw("failed to fetch default rate", "service_type_id", stID, "error", err)
				continue
			}

			_, err = pool.Pool.Exec(ctx, `
				INSERT INTO billing_customer_services (id, customer_id, service_type_id, rate, active, version, deletion_mark)
				VALUES ($1, $2, $3, $4, true, 1, false)
				ON CONFLICT (customer_id, service_type_id) WHERE deletion_mark = FALSE DO NOTHING
			`, id.New(), custID, stID, rate)
			if err != nil {
				log.Warnw("failed to seed rate assignment", "customer_id", custID, "error", err)
			}
		}
	}

	// 6. Orders with lines, spread over the current month
	if len(customerIDs) > 0 && len(productIDs) > 0 {
		if err := seedOrders(ctx, pool, log, customerIDs, productIDs); err != nil {
			return err
		}
	}

	log.Info("demo data seeded successfully")
	return nil
}

func seedOrders(ctx context.Context, pool *postgres.Pool, log *logger.Logger, customerIDs, productIDs []id.ID) error {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	type lineSeed struct {
		productIdx int
		quantity   int64 // scaled by 1e4, e.g. 50000 = 5 units
		unitPrice  string
	}

	orders := []struct {
		customerIdx int
		dayOffset   int
		status      string
		lines       []lineSeed
	}{
		{0, 2, "confirmed", []lineSeed{{0, 100000, "1.20"}, {2, 20000, "8.90"}}},
		{0, 9, "shipped", []lineSeed{{1, 50000, "2.80"}}},
		{1, 5, "confirmed", []lineSeed{{3, 30000, "14.50"}, {0, 250000, "1.20"}}},
		{2, 12, "draft", []lineSeed{{2, 10000, "8.90"}}},
	}

	for i, o := range orders {
		if o.customerIdx >= len(customerIDs) {
			continue
		}

		orderID := id.New()
		number := fmt.Sprintf("ORD-%d-%05d", now.Year(), i+1)
		date := monthStart.AddDate(0, 0, o.dayOffset)

		totalQty := int64(0)
		totalAmount := decimal.Zero
		for _, l := range o.lines {
			if l.productIdx >= len(productIDs) {
				continue
			}
			totalQty += l.quantity
			price, err := decimal.NewFromString(l.unitPrice)
			if err != nil {
				continue
			}
			qty := decimal.New(l.quantity, -4)
			totalAmount = totalAmount.Add(price.Mul(qty).Round(2))
		}

		commandTag, err := pool.Pool.Exec(ctx, `
			INSERT INTO doc_orders (id, number, date, customer_id, status, total_quantity, total_amount, version, deletion_mark)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 1, false)
			ON CONFLICT (number) WHERE deletion_mark = FALSE DO NOTHING
		`, orderID, number, date, customerIDs[o.customerIdx], o.status, totalQty, totalAmount.StringFixed(2))
		if err != nil {
			log.Warnw("failed to seed order", "number", number, "error", err)
			continue
		}
		if commandTag.RowsAffected() == 0 {
			continue // already seeded on a previous run
		}

		if o.status == "shipped" {
			tracking := fmt.Sprintf("TRK%d%07d", now.Year(), i+1)
			_, err = pool.Pool.Exec(ctx, `
				INSERT INTO doc_shipments (id, number, date, order_id, carrier, tracking_number, weight_kg, shipped_at, version, deletion_mark)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, false)
				ON CONFLICT (number) WHERE deletion_mark = FALSE DO NOTHING
			`, id.New(), fmt.Sprintf("SHP-%d-%05d", now.Year(), i+1), date.AddDate(0, 0, 1),
				orderID, "DHL", tracking, 4.2, date.AddDate(0, 0, 1))
			if err != nil {
				log.Warnw("failed to seed shipment", "order_number", number, "error", err)
			}
		}

		for lineNo, l := range o.lines {
			if l.productIdx >= len(productIDs) {
				continue
			}
			price, err := decimal.NewFromString(l.unitPrice)
			if err != nil {
				continue
			}
			qty := decimal.New(l.quantity, -4)
			amount := price.Mul(qty).Round(2)

			_, err = pool.Pool.Exec(ctx, `
				INSERT INTO doc_order_lines (line_id, document_id, line_no, product_id, quantity, unit_price, amount)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, id.New(), orderID, lineNo+1, productIDs[l.productIdx], l.quantity, l.unitPrice, amount.StringFixed(2))
			if err != nil {
				log.Warnw("failed to seed order line", "number", number, "line", lineNo+1, "error", err)
			}
		}
	}

	return nil
}
