package accounts_http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"centralbank/internal/app/bank"
	"centralbank/internal/repository/accounts_repo/jsonfile"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "data.json"))
	service := bank.NewBankService(store, zap.NewNop())

	r := chi.NewRouter()
	RegisterRoutes(r, service, zap.NewNop())
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeAccount(t *testing.T, rec *httptest.ResponseRecorder) AccountResponse {
	t.Helper()
	var resp AccountResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateAccountHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       CreateAccountRequest
		wantStatus int
	}{
		{
			name:       "valid",
			body:       CreateAccountRequest{OwnerName: "Alice", Email: "alice@example.com", OpeningBalance: "100.00"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "zero opening balance by default",
			body:       CreateAccountRequest{OwnerName: "Bob"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing owner name",
			body:       CreateAccountRequest{OpeningBalance: "10"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative opening balance",
			body:       CreateAccountRequest{OwnerName: "Eve", OpeningBalance: "-5"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed opening balance",
			body:       CreateAccountRequest{OwnerName: "Eve", OpeningBalance: "lots"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)
			rec := doJSON(t, router, http.MethodPost, "/api/accounts", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				resp := decodeAccount(t, rec)
				assert.Len(t, resp.AccountNo, 10)
				assert.Equal(t, tt.body.OwnerName, resp.OwnerName)
			}
		})
	}
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/accounts",
		CreateAccountRequest{OwnerName: "Alice", OpeningBalance: "100.00"})
	require.Equal(t, http.StatusCreated, rec.Code)
	no := decodeAccount(t, rec).AccountNo

	rec = doJSON(t, router, http.MethodPost, "/api/accounts/"+no+"/deposit",
		AmountRequest{Amount: "50.00", Note: "payday"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "150.00", decodeAccount(t, rec).Balance)

	rec = doJSON(t, router, http.MethodPost, "/api/accounts/"+no+"/withdraw",
		AmountRequest{Amount: "200.00"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/accounts/"+no, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "150.00", decodeAccount(t, rec).Balance)

	rec = doJSON(t, router, http.MethodPost, "/api/accounts/"+no+"/withdraw",
		AmountRequest{Amount: "150.00"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.00", decodeAccount(t, rec).Balance)

	rec = doJSON(t, router, http.MethodGet, "/api/accounts/"+no+"/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []TransactionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&history))
	require.Len(t, history, 2)
	assert.Equal(t, "deposit", history[0].Type)
	assert.Equal(t, "150.00", history[0].BalanceAfter)
	assert.Equal(t, "withdrawal", history[1].Type)
	assert.Equal(t, "0.00", history[1].BalanceAfter)

	rec = doJSON(t, router, http.MethodDelete, "/api/accounts/"+no, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/accounts/"+no, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateDetailsHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/accounts",
		CreateAccountRequest{OwnerName: "Alice", Email: "alice@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	no := decodeAccount(t, rec).AccountNo

	rec = doJSON(t, router, http.MethodPatch, "/api/accounts/"+no,
		UpdateDetailsRequest{OwnerName: "Alice Cooper"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAccount(t, rec)
	assert.Equal(t, "Alice Cooper", resp.OwnerName)
	assert.Equal(t, "alice@example.com", resp.Email)

	rec = doJSON(t, router, http.MethodPatch, "/api/accounts/MISSING000",
		UpdateDetailsRequest{OwnerName: "Nobody"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAccountsHandler(t *testing.T) {
	router := newTestRouter(t)

	for _, req := range []CreateAccountRequest{
		{OwnerName: "Alice", Email: "alice@example.com", OpeningBalance: "10.00"},
		{OwnerName: "Bob", Email: "bob@example.com", OpeningBalance: "500.00"},
	} {
		rec := doJSON(t, router, http.MethodPost, "/api/accounts", req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	tests := []struct {
		name       string
		path       string
		wantOwners []string
	}{
		{"all in creation order", "/api/accounts", []string{"Alice", "Bob"}},
		{"substring match", "/api/accounts?q=ali", []string{"Alice"}},
		{"min balance", "/api/accounts?min_balance=100.00", []string{"Bob"}},
		{"max balance", "/api/accounts?max_balance=100.00", []string{"Alice"}},
		{"no match is empty not error", "/api/accounts?q=nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp ListAccountsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			owners := make([]string, 0, len(resp.Accounts))
			for _, a := range resp.Accounts {
				owners = append(owners, a.OwnerName)
			}
			assert.Equal(t, tt.wantOwners, owners)
		})
	}

	rec := doJSON(t, router, http.MethodGet, "/api/accounts?min_balance=junk", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMutationErrorMapping(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/accounts/MISSING000/deposit",
		AmountRequest{Amount: "10.00"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/accounts",
		CreateAccountRequest{OwnerName: "Alice"})
	require.Equal(t, http.StatusCreated, rec.Code)
	no := decodeAccount(t, rec).AccountNo

	for _, amount := range []string{"0", "-1", "abc", ""} {
		rec = doJSON(t, router, http.MethodPost, "/api/accounts/"+no+"/deposit",
			AmountRequest{Amount: amount})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "amount %q", amount)
	}
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
