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

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn  func(userID uint, txType models.TransactionType, amount money.Amount, category, description string, date time.Time, savingsFundID *uint) (*models.Transaction, error)
	getUserTransactionsFn func(userID uint) ([]models.Transaction, error)
	getTransactionByIDFn func(userID, transactionID uint) (*models.Transaction, error)
	updateTransactionFn  func(userID, transactionID uint, fields services.TransactionUpdateFields) (*models.Transaction, error)
	deleteTransactionFn  func(userID, transactionID uint) error
}

func (m *mockTransactionService) CreateTransaction(userID uint, txType models.TransactionType, amount money.Amount, category, description string, date time.Time, savingsFundID *uint) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, txType, amount, category, description, date, savingsFundID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID uint) ([]models.Transaction, error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(userID, transactionID uint, fields services.TransactionUpdateFields) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, fields)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID uint) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/transactions", handler.GetUserTransactions)
	auth.POST("/transactions", handler.CreateTransaction)
	auth.POST("/transactions/update", handler.UpdateTransaction)
	auth.POST("/transactions/delete", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns_201_on_success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ uint, txType models.TransactionType, amount money.Amount, category, _ string, date time.Time, _ *uint) (*models.Transaction, error) {
				return &models.Transaction{
					Base:     models.Base{ID: 1},
					Type:     txType,
					Amount:   amount,
					Category: category,
					Date:     date,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":30.50,"category":"Comida","date":"2025-03-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		assertEnvelope(t, result, "success", "Transacción creada exitosamente")
		data := result["data"].(map[string]interface{})
		if data["amount"] != float64(30.5) {
			t.Errorf("expected amount 30.50, got %v", data["amount"])
		}
	})

	t.Run("returns_422_on_bad_type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"transfer","amount":30.50,"category":"Comida","date":"2025-03-15"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		if _, ok := fieldErrors(t, parseJSON(t, rec))["type"]; !ok {
			t.Error("expected validation error on type field")
		}
	})

	t.Run("returns_422_on_bad_date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":30.50,"category":"Comida","date":"15/03/2025"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		if _, ok := fieldErrors(t, parseJSON(t, rec))["date"]; !ok {
			t.Error("expected validation error on date field")
		}
	})

	t.Run("returns_422_on_three_decimal_amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":30.505,"category":"Comida","date":"2025-03-15"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("returns_404_when_linked_fund_not_owned", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(uint, models.TransactionType, money.Amount, string, string, time.Time, *uint) (*models.Transaction, error) {
				return nil, apperrors.ErrFundNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":30.50,"category":"Ahorro","date":"2025-03-15","savings_fund_id":99}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetUserTransactions(t *testing.T) {
	txSvc := &mockTransactionService{
		getUserTransactionsFn: func(uint) ([]models.Transaction, error) {
			return []models.Transaction{
				{Base: models.Base{ID: 1}, Type: models.TransactionTypeExpense, Amount: 3050, Category: "Comida"},
				{Base: models.Base{ID: 2}, Type: models.TransactionTypeIncome, Amount: 150000, Category: "Sueldo"},
			}, nil
		},
	}
	r := setupTransactionRouter(NewTransactionHandler(txSvc))

	rec := doRequest(r, "GET", "/transactions", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(data))
	}
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("passes_only_present_fields", func(t *testing.T) {
		var got services.TransactionUpdateFields
		txSvc := &mockTransactionService{
			updateTransactionFn: func(_ uint, _ uint, fields services.TransactionUpdateFields) (*models.Transaction, error) {
				got = fields
				return &models.Transaction{Base: models.Base{ID: 1}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions/update", `{"id":1,"amount":99.99}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Amount == nil || *got.Amount != 9999 {
			t.Errorf("expected amount 9999 cents, got %v", got.Amount)
		}
		if got.Category != nil || got.Type != nil || got.Date != nil {
			t.Error("absent fields must stay nil")
		}
	})

	t.Run("returns_404_when_not_owned", func(t *testing.T) {
		txSvc := &mockTransactionService{
			updateTransactionFn: func(uint, uint, services.TransactionUpdateFields) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc))

		rec := doRequest(r, "POST", "/transactions/update", `{"id":42,"category":"Ocio"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertEnvelope(t, parseJSON(t, rec), "error", "Transacción no encontrada o no pertenece al usuario")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

	rec := doRequest(r, "POST", "/transactions/delete", `{"id":1}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	assertEnvelope(t, parseJSON(t, rec), "success", "Transacción eliminada exitosamente")
}
