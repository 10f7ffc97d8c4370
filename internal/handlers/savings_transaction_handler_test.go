package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hucha/internal/errors"
	"hucha/internal/models"
	"hucha/internal/money"
	"hucha/internal/services"
)

// --- mock savings transaction service ---

type mockSavingsTransactionService struct {
	applyFn                      func(userID, fundID uint, entryType models.SavingsTransactionType, amount money.Amount, description string, date time.Time) (*models.SavingsTransaction, *models.SavingsFund, error)
	getUserSavingsTransactionsFn func(userID uint) ([]models.SavingsTransaction, error)
}

func (m *mockSavingsTransactionService) Apply(userID, fundID uint, entryType models.SavingsTransactionType, amount money.Amount, description string, date time.Time) (*models.SavingsTransaction, *models.SavingsFund, error) {
	if m.applyFn != nil {
		return m.applyFn(userID, fundID, entryType, amount, description, date)
	}
	return &models.SavingsTransaction{}, &models.SavingsFund{}, nil
}

func (m *mockSavingsTransactionService) GetUserSavingsTransactions(userID uint) ([]models.SavingsTransaction, error) {
	if m.getUserSavingsTransactionsFn != nil {
		return m.getUserSavingsTransactionsFn(userID)
	}
	return []models.SavingsTransaction{}, nil
}

var _ services.SavingsTransactionServicer = (*mockSavingsTransactionService)(nil)

func setupLedgerRouter(handler *SavingsTransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/savings-transactions", handler.GetUserSavingsTransactions)
	auth.POST("/savings-transactions", handler.CreateSavingsTransaction)
	return r
}

func TestSavingsTransactionHandler_CreateSavingsTransaction(t *testing.T) {
	t.Run("returns_201_with_new_fund_balance", func(t *testing.T) {
		ledgerSvc := &mockSavingsTransactionService{
			applyFn: func(_ uint, fundID uint, entryType models.SavingsTransactionType, amount money.Amount, _ string, date time.Time) (*models.SavingsTransaction, *models.SavingsFund, error) {
				entry := &models.SavingsTransaction{
					Base:          models.Base{ID: 1},
					SavingsFundID: fundID,
					Type:          entryType,
					Amount:        amount,
					Date:          date,
				}
				fund := &models.SavingsFund{Base: models.Base{ID: fundID}, Balance: 15000}
				return entry, fund, nil
			},
		}
		r := setupLedgerRouter(NewSavingsTransactionHandler(ledgerSvc))

		rec := doRequest(r, "POST", "/savings-transactions",
			`{"savings_fund_id":3,"type":"deposit","amount":50.00,"date":"2025-03-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		assertEnvelope(t, result, "success", "Transacción de ahorro creada exitosamente")
		data := result["data"].(map[string]interface{})
		if data["amount"] != float64(50) {
			t.Errorf("expected amount 50.00, got %v", data["amount"])
		}
		if data["fund_balance"] != float64(150) {
			t.Errorf("expected fund_balance 150.00, got %v", data["fund_balance"])
		}
	})

	t.Run("returns_422_on_insufficient_funds", func(t *testing.T) {
		ledgerSvc := &mockSavingsTransactionService{
			applyFn: func(uint, uint, models.SavingsTransactionType, money.Amount, string, time.Time) (*models.SavingsTransaction, *models.SavingsFund, error) {
				return nil, nil, apperrors.ErrInsufficientFunds
			},
		}
		r := setupLedgerRouter(NewSavingsTransactionHandler(ledgerSvc))

		rec := doRequest(r, "POST", "/savings-transactions",
			`{"savings_fund_id":3,"type":"withdrawal","amount":200.00,"date":"2025-03-15"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertEnvelope(t, parseJSON(t, rec), "error", "No hay suficiente saldo en el fondo de ahorro")
	})

	t.Run("returns_404_when_fund_not_owned", func(t *testing.T) {
		ledgerSvc := &mockSavingsTransactionService{
			applyFn: func(uint, uint, models.SavingsTransactionType, money.Amount, string, time.Time) (*models.SavingsTransaction, *models.SavingsFund, error) {
				return nil, nil, apperrors.ErrFundNotFound
			},
		}
		r := setupLedgerRouter(NewSavingsTransactionHandler(ledgerSvc))

		rec := doRequest(r, "POST", "/savings-transactions",
			`{"savings_fund_id":99,"type":"deposit","amount":50.00,"date":"2025-03-15"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertEnvelope(t, parseJSON(t, rec), "error", "El fondo de ahorro no existe o no pertenece al usuario")
	})

	t.Run("returns_422_on_bad_type", func(t *testing.T) {
		r := setupLedgerRouter(NewSavingsTransactionHandler(&mockSavingsTransactionService{}))

		rec := doRequest(r, "POST", "/savings-transactions",
			`{"savings_fund_id":3,"type":"expense","amount":50.00,"date":"2025-03-15"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		if _, ok := fieldErrors(t, parseJSON(t, rec))["type"]; !ok {
			t.Error("expected validation error on type field")
		}
	})

	t.Run("returns_401_without_user", func(t *testing.T) {
		r := gin.New()
		handler := NewSavingsTransactionHandler(&mockSavingsTransactionService{})
		r.POST("/savings-transactions", handler.CreateSavingsTransaction)

		rec := doRequest(r, "POST", "/savings-transactions",
			`{"savings_fund_id":3,"type":"deposit","amount":50.00,"date":"2025-03-15"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestSavingsTransactionHandler_GetUserSavingsTransactions(t *testing.T) {
	ledgerSvc := &mockSavingsTransactionService{
		getUserSavingsTransactionsFn: func(uint) ([]models.SavingsTransaction, error) {
			return []models.SavingsTransaction{
				{
					Base:          models.Base{ID: 1},
					SavingsFundID: 3,
					Type:          models.SavingsTransactionTypeDeposit,
					Amount:        5000,
					SavingsFund:   models.SavingsFund{Base: models.Base{ID: 3}, Name: "Vacaciones", Color: "#33c1ff"},
				},
			}, nil
		},
	}
	r := setupLedgerRouter(NewSavingsTransactionHandler(ledgerSvc))

	rec := doRequest(r, "GET", "/savings-transactions", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(data))
	}
	entry := data[0].(map[string]interface{})
	if entry["fund_name"] != "Vacaciones" || entry["fund_color"] != "#33c1ff" {
		t.Errorf("expected fund name/color to be flattened into the entry, got %v", entry)
	}
}
