package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct docker pool: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=inventory_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=postgres password=postgres dbname=inventory_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	if err = pool.Retry(func() error {
		testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}

		sqlDB, err := testDB.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func resetTables(t *testing.T) *InventoryDAO {
	t.Helper()

	require.NoError(t, testDB.Exec("TRUNCATE TABLE inventories RESTART IDENTITY").Error)

	return NewInventoryDAO(testDB)
}

func seedItem(t *testing.T, d *InventoryDAO, name string, quantity int, condition, stockLevel string) Inventory {
	t.Helper()

	created, err := d.Insert(context.Background(), Inventory{
		Name:       name,
		Quantity:   quantity,
		Condition:  condition,
		StockLevel: stockLevel,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	return created
}

func intPtr(v int) *int {
	return &v
}

func TestInventoryDAO_InsertAndFindByID(t *testing.T) {
	d := resetTables(t)

	created := seedItem(t, d, "CocaCola", 0, "NEW", "OUT_OF_STOCK")

	found, err := d.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "CocaCola", found.Name)
	assert.Equal(t, 0, found.Quantity)
	assert.Equal(t, "NEW", found.Condition)
	assert.Equal(t, "OUT_OF_STOCK", found.StockLevel)
}

func TestInventoryDAO_InsertNegativeQuantity(t *testing.T) {
	d := resetTables(t)

	_, err := d.Insert(context.Background(), Inventory{
		Name:       "Broken",
		Quantity:   -1,
		Condition:  "NEW",
		StockLevel: "IN_STOCK",
	})
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestInventoryDAO_FindByIDMissing(t *testing.T) {
	d := resetTables(t)

	_, err := d.FindByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryDAO_Update(t *testing.T) {
	d := resetTables(t)

	created := seedItem(t, d, "CocaCola", 10, "NEW", "IN_STOCK")

	created.Name = "Coke"
	created.Quantity = 20
	created.Condition = "OPENBOX"
	created.StockLevel = "LOW_STOCK"

	updated, err := d.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, "Coke", updated.Name)
	assert.Equal(t, 20, updated.Quantity)
	assert.Equal(t, "OPENBOX", updated.Condition)
	assert.Equal(t, "LOW_STOCK", updated.StockLevel)

	found, err := d.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coke", found.Name)
	assert.Equal(t, 20, found.Quantity)
}

func TestInventoryDAO_UpdateMissing(t *testing.T) {
	d := resetTables(t)

	_, err := d.Update(context.Background(), Inventory{
		ID:         999,
		Name:       "Ghost",
		Quantity:   1,
		Condition:  "NEW",
		StockLevel: "IN_STOCK",
	})
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryDAO_DeleteIsIdempotent(t *testing.T) {
	d := resetTables(t)

	created := seedItem(t, d, "Water", 5, "NEW", "LOW_STOCK")

	require.NoError(t, d.Delete(context.Background(), created.ID))
	require.NoError(t, d.Delete(context.Background(), created.ID))

	_, err := d.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryDAO_List(t *testing.T) {
	d := resetTables(t)

	seedItem(t, d, "CocaCola", 0, "NEW", "OUT_OF_STOCK")
	seedItem(t, d, "Water", 5, "NEW", "LOW_STOCK")
	seedItem(t, d, "Monster", 10, "NEW", "IN_STOCK")
	seedItem(t, d, "iPad", 15, "USED", "IN_STOCK")

	names := func(items []Inventory) []string {
		result := make([]string, 0, len(items))
		for _, item := range items {
			result = append(result, item.Name)
		}
		return result
	}

	t.Run("no filters returns everything once", func(t *testing.T) {
		all, err := d.List(context.Background(), InventoryFilter{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"CocaCola", "Water", "Monster", "iPad"}, names(all))
	})

	t.Run("by condition", func(t *testing.T) {
		matches, err := d.List(context.Background(), InventoryFilter{Condition: "NEW"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"CocaCola", "Water", "Monster"}, names(matches))
	})

	t.Run("by stock level", func(t *testing.T) {
		matches, err := d.List(context.Background(), InventoryFilter{StockLevel: "IN_STOCK"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Monster", "iPad"}, names(matches))
	})

	t.Run("by name", func(t *testing.T) {
		matches, err := d.List(context.Background(), InventoryFilter{Name: "Water"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Water"}, names(matches))
	})

	t.Run("by quantity range", func(t *testing.T) {
		matches, err := d.List(context.Background(), InventoryFilter{
			QuantityMin: intPtr(5),
			QuantityMax: intPtr(10),
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Water", "Monster"}, names(matches))
	})

	t.Run("lower bound only", func(t *testing.T) {
		matches, err := d.List(context.Background(), InventoryFilter{QuantityMin: intPtr(10)})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Monster", "iPad"}, names(matches))
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		matches, err := d.List(context.Background(), InventoryFilter{
			Condition:  "NEW",
			StockLevel: "IN_STOCK",
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Monster"}, names(matches))
	})

	t.Run("no matches is an empty slice", func(t *testing.T) {
		matches, err := d.List(context.Background(), InventoryFilter{Name: "Pepsi"})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}
