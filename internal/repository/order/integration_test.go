//go:build integration

package order_test

import (
	"context"
	"testing"

	"dispatch/internal/entities"
	"dispatch/internal/repository/integration_test"
	"dispatch/internal/repository/order"
	service "dispatch/internal/service/order"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clientFixture = `
	INSERT INTO clients (id, national_id, first_name, last_name, phone, address, zone)
	VALUES (1, '40221133', 'Marta', 'Quiroga', '+59891234567', '12 Harbor Street', 'north');
	SELECT setval('clients_id_seq', 1);
`

func TestRepository_Create_Success(t *testing.T) {
	integration_test.SetupDB(t, clientFixture)
	defer integration_test.TeardownDB(t)

	q := integration_test.GetQuerier()
	repo := order.New(q)
	ctx := context.Background()

	t.Run("order row is inserted with generated timestamps", func(t *testing.T) {
		status := entities.OrderPending
		priority := entities.PriorityNormal
		zone := entities.ZoneNorth

		created, err := repo.Create(ctx, entities.OrderModify{
			ClientID:         pointer.To(int64(1)),
			Status:           &status,
			Priority:         &priority,
			DeliveryAddress:  pointer.To("12 Harbor Street"),
			DeliveryZone:     &zone,
			EstimatedMinutes: pointer.To(25),
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Greater(t, created.ID, int64(0))
		assert.Equal(t, entities.OrderPending, created.Status)
		assert.Nil(t, created.CourierID)
		assert.False(t, created.CreatedAt.IsZero())

		var statusDB string
		err = q.QueryRow(ctx, "SELECT status FROM orders WHERE id = $1", created.ID).Scan(&statusDB)
		require.NoError(t, err)
		assert.Equal(t, "pending", statusDB)
	})
}

func TestRepository_Create_UnknownClient(t *testing.T) {
	integration_test.SetupDB(t, "")
	defer integration_test.TeardownDB(t)

	q := integration_test.GetQuerier()
	repo := order.New(q)
	ctx := context.Background()

	t.Run("missing client violates the foreign key", func(t *testing.T) {
		status := entities.OrderPending
		priority := entities.PriorityNormal
		zone := entities.ZoneNorth

		created, err := repo.Create(ctx, entities.OrderModify{
			ClientID:         pointer.To(int64(99)),
			Status:           &status,
			Priority:         &priority,
			DeliveryAddress:  pointer.To("12 Harbor Street"),
			DeliveryZone:     &zone,
			EstimatedMinutes: pointer.To(25),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrClientNotFound)
		assert.Nil(t, created)
	})
}

func TestRepository_GetPendingUnassigned(t *testing.T) {
	setupSql := clientFixture + `
		INSERT INTO orders (id, client_id, status, delivery_address, delivery_zone, created_at)
		VALUES
			(1, 1, 'pending', '12 Harbor Street', 'north', '2026-03-14 09:00:00+00'),
			(2, 1, 'pending', '3 Mill Road', 'north', '2026-03-14 08:00:00+00'),
			(3, 1, 'delivered', '7 Oak Lane', 'north', '2026-03-14 07:00:00+00');
		SELECT setval('orders_id_seq', 3);
	`

	integration_test.SetupDB(t, setupSql)
	defer integration_test.TeardownDB(t)

	q := integration_test.GetQuerier()
	repo := order.New(q)
	ctx := context.Background()

	t.Run("oldest pending order comes first", func(t *testing.T) {
		orders, err := repo.GetPendingUnassigned(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Equal(t, int64(2), orders[0].ID)
		assert.Equal(t, int64(1), orders[1].ID)
	})
}

func TestRepository_GetAll_Filtered(t *testing.T) {
	setupSql := clientFixture + `
		INSERT INTO orders (id, client_id, status, delivery_address, delivery_zone)
		VALUES
			(1, 1, 'pending', '12 Harbor Street', 'north'),
			(2, 1, 'delivered', '3 Mill Road', 'south'),
			(3, 1, 'pending', '7 Oak Lane', 'south');
		SELECT setval('orders_id_seq', 3);
	`

	integration_test.SetupDB(t, setupSql)
	defer integration_test.TeardownDB(t)

	q := integration_test.GetQuerier()
	repo := order.New(q)
	ctx := context.Background()

	t.Run("status and zone filters combine", func(t *testing.T) {
		status := entities.OrderPending
		zone := entities.ZoneSouth

		orders, err := repo.GetAll(ctx, service.Filter{Status: &status, Zone: &zone})
		require.NoError(t, err)
		require.Len(t, orders, 1)

		assert.Equal(t, int64(3), orders[0].ID)
	})
}

func TestRepository_Update_Success(t *testing.T) {
	setupSql := clientFixture + `
		INSERT INTO orders (id, client_id, status, delivery_address, delivery_zone)
		VALUES (1, 1, 'pending', '12 Harbor Street', 'north');
		SELECT setval('orders_id_seq', 1);
	`

	integration_test.SetupDB(t, setupSql)
	defer integration_test.TeardownDB(t)

	q := integration_test.GetQuerier()
	repo := order.New(q)
	ctx := context.Background()

	t.Run("status transition is persisted", func(t *testing.T) {
		status := entities.OrderCancelled

		updated, err := repo.Update(ctx, entities.OrderModify{
			ID:     pointer.To(int64(1)),
			Status: &status,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, entities.OrderCancelled, updated.Status)

		var statusDB string
		err = q.QueryRow(ctx, "SELECT status FROM orders WHERE id = 1").Scan(&statusDB)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", statusDB)
	})

	t.Run("unknown order surfaces not found", func(t *testing.T) {
		status := entities.OrderCancelled

		_, err := repo.Update(ctx, entities.OrderModify{
			ID:     pointer.To(int64(99)),
			Status: &status,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})
}
