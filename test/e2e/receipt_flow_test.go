package e2e

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/handlers"
	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/Bigsouley03/cat-payment-app/internal/render"
	"github.com/Bigsouley03/cat-payment-app/internal/repository"
	"github.com/Bigsouley03/cat-payment-app/internal/services"
	"github.com/Bigsouley03/cat-payment-app/pkg/pg"
	"github.com/Bigsouley03/cat-payment-app/pkg/redis"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testDB = pg.DB

type TestEnvironment struct {
	DB             *pg.DB
	Redis          *miniredis.Miniredis
	RedisClient    goredis.UniversalClient
	ReceiptRepo    *repository.ReceiptRepository
	SessionRepo    *repository.SessionRepository
	ReceiptService *services.ReceiptService
	AuthService    *services.AuthService
	ReceiptHandler *handlers.ReceiptHandler
	AuthHandler    *handlers.AuthHandler
}

func setupE2EEnvironment(t *testing.T) *TestEnvironment {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&repository.ReceiptEntity{})
	require.NoError(t, err)

	pgDB := &testDB{}
	pgDBValue := reflect.ValueOf(pgDB).Elem()

	readField := pgDBValue.FieldByName("read")
	writeField := pgDBValue.FieldByName("write")

	readField = reflect.NewAt(readField.Type(), readField.Addr().UnsafePointer()).Elem()
	writeField = reflect.NewAt(writeField.Type(), writeField.Addr().UnsafePointer()).Elem()

	readField.Set(reflect.ValueOf(db))
	writeField.Set(reflect.ValueOf(db))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs: []string{mr.Addr()},
	})
	t.Cleanup(func() { _ = client.Close() })

	connName := fmt.Sprintf("e2e-%d", time.Now().UnixNano())
	redisAdapter := redis.WrapAdapter(connName, "", client)

	catalog := model.NewCatalog(
		[]string{"cash", "cheque", "virement", "mobile_money"},
		[]string{"Espèces", "Chèque", "Virement", "Mobile Money"},
		[]string{"Licence 1", "Licence 2", "Licence 3", "Master 1", "Master 2"},
		[]string{"Frais de scolarité", "Frais d'inscription", "Autre"},
	)

	renderer, err := render.NewRenderer(catalog, "École Supérieure de Commerce", "MAD", "fr")
	require.NoError(t, err)

	receiptRepo := repository.NewReceiptRepository(pgDB)
	sessionRepo := repository.NewSessionRepository(redisAdapter, "receipt_app_user")

	receiptService := services.NewReceiptService(receiptRepo, catalog)
	authService := services.NewAuthService(sessionRepo, "admin", "admin123")

	return &TestEnvironment{
		DB:             pgDB,
		Redis:          mr,
		RedisClient:    client,
		ReceiptRepo:    receiptRepo,
		SessionRepo:    sessionRepo,
		ReceiptService: receiptService,
		AuthService:    authService,
		ReceiptHandler: handlers.NewReceiptHandler(receiptService, renderer),
		AuthHandler:    handlers.NewAuthHandler(authService),
	}
}

func createRequest(name, dossier, date string, amount float64) model.ReceiptCreateRequest {
	return model.ReceiptCreateRequest{
		NomComplet:    name,
		PaymentType:   "cash",
		Amount:        amount,
		DossierNumber: dossier,
		Date:          date,
		Classe:        "Licence 1",
		PhoneNumber:   "+212 600 123 456",
		PaymentReason: "Frais de scolarité",
	}
}

func TestE2E_ReceiptLifecycle(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	created, err := env.ReceiptService.Create(ctx, createRequest("Ahmed Benali", "DOS-2024-001", "2024-01-15", 3500))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := env.ReceiptService.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Benali", got.NomComplet)
	assert.Equal(t, float64(3500), got.Amount)

	update := createRequest("Ahmed Benali", "DOS-2024-001", "2024-01-15", 6000)
	update.PaymentType = "cheque"
	update.ChequeDetails = "Chèque N° 1234567 - Banque Populaire"
	updated, err := env.ReceiptService.Update(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, float64(6000), updated.Amount)
	assert.Equal(t, "cheque", updated.PaymentType)

	require.NoError(t, env.ReceiptService.Delete(ctx, created.ID))

	_, err = env.ReceiptService.Get(ctx, created.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, env.ReceiptService.Delete(ctx, created.ID), services.ErrNotFound)
}

func TestE2E_ValidationBlocksStorage(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	bad := createRequest("A", "DOS-2024-001", "2024-01-15", 0)
	bad.Classe = ""
	bad.PaymentReason = "Rançon"

	_, err := env.ReceiptService.Create(ctx, bad)

	var verrs model.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	byField := verrs.ByField()
	assert.Contains(t, byField, "nomComplet")
	assert.Contains(t, byField, "amount")
	assert.Contains(t, byField, "classe")
	assert.Contains(t, byField, "paymentReason")

	receipts, err := env.ReceiptService.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestE2E_FilterAndSummary(t *testing.T) {
	env := setupE2EEnvironment(t)
	ctx := context.Background()

	fixtures := []model.ReceiptCreateRequest{
		createRequest("Ahmed Benali", "DOS-2024-001", "2024-01-15", 100),
		createRequest("Fatima Zahra Alaoui", "DOS-2024-002", "2024-02-10", 250),
		createRequest("Ahmed Benali", "DOS-2024-003", "2024-02-20", 50),
	}
	fixtures[1].PaymentType = "cheque"
	fixtures[1].Classe = "Master 1"

	for _, f := range fixtures {
		_, err := env.ReceiptService.Create(ctx, f)
		require.NoError(t, err)
	}

	receipts, err := env.ReceiptService.List(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 3)

	byType := services.Filter(receipts, model.ReceiptFilter{PaymentType: "cheque"})
	require.Len(t, byType, 1)
	assert.Equal(t, "Fatima Zahra Alaoui", byType[0].NomComplet)

	february := services.Filter(receipts, model.ReceiptFilter{DateFrom: "2024-02-01", DateTo: "2024-02-29"})
	assert.Len(t, february, 2)

	s := services.Summarize(receipts, time.Date(2024, time.February, 25, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, float64(400), s.TotalAmount)
	assert.Equal(t, 2, s.UniquePayers)
	assert.Equal(t, 2, s.MonthCount)
	assert.Equal(t, float64(300), s.MonthAmount)
}

func TestE2E_AuthSessionSurvivesRestart(t *testing.T) {
	env := setupE2EEnvironment(t)

	_, err := env.AuthService.Login("admin", "nope")
	assert.ErrorIs(t, err, services.ErrAuthenticationFailed)

	user, err := env.AuthService.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	// a fresh service over the same store restores the session
	restored := services.NewAuthService(env.SessionRepo, "admin", "admin123")
	assert.True(t, restored.IsAuthenticated())

	require.NoError(t, restored.Logout())

	cold := services.NewAuthService(env.SessionRepo, "admin", "admin123")
	assert.False(t, cold.IsAuthenticated())
}
