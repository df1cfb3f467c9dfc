package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

func TestHandleRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockUserService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name":"Player_01","password":"hunter2"}`,
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, "Player_01", "hunter2").
					Return(&domain.Player{Name: "Player_01", Gold: domain.StartingGold}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Name Taken",
			body: `{"name":"Player_01","password":"hunter2"}`,
			setupMock: func(m *MockUserService) {
				m.On("Register", mock.Anything, "Player_01", "hunter2").
					Return(nil, fmt.Errorf("player %q: %w", "Player_01", domain.ErrDuplicatePlayer))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Missing Password",
			body:           `{"name":"Player_01"}`,
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown Field",
			body:           `{"name":"a","password":"b","is_admin":true}`,
			setupMock:      func(m *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserService{}
			tt.setupMock(users)
			h := NewPlayerHandler(users, &MockLedgerService{})

			rec := httptest.NewRecorder()
			h.HandleRegister(rec, newJSONRequest(http.MethodPost, "/api/v1/players/register", tt.body))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			users.AssertExpectations(t)
		})
	}
}

func TestHandleRegister_HidesPasswordHash(t *testing.T) {
	users := &MockUserService{}
	users.On("Register", mock.Anything, "p", "pw").
		Return(&domain.Player{Name: "p", PasswordHash: "$2a$secret"}, nil)
	h := NewPlayerHandler(users, &MockLedgerService{})

	rec := httptest.NewRecorder()
	h.HandleRegister(rec, newJSONRequest(http.MethodPost, "/", `{"name":"p","password":"pw"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestHandleSignIn(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := &MockUserService{}
		users.On("SignIn", mock.Anything, "p", "pw").Return(&domain.Player{Name: "p", Gold: 10}, nil)
		h := NewPlayerHandler(users, &MockLedgerService{})

		rec := httptest.NewRecorder()
		h.HandleSignIn(rec, newJSONRequest(http.MethodPost, "/", `{"name":"p","password":"pw"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		var player domain.Player
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &player))
		assert.Equal(t, 10, player.Gold)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		users := &MockUserService{}
		users.On("SignIn", mock.Anything, "p", "nope").Return(nil, domain.ErrInvalidCredentials)
		h := NewPlayerHandler(users, &MockLedgerService{})

		rec := httptest.NewRecorder()
		h.HandleSignIn(rec, newJSONRequest(http.MethodPost, "/", `{"name":"p","password":"nope"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidCredentialsError)
	})
}

func TestHandleGetPlayer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ledgerSvc := &MockLedgerService{}
		ledgerSvc.On("GetPlayerWithInventory", mock.Anything, "Player_01").Return(&domain.PlayerInventory{
			Player: domain.Player{Name: "Player_01", Gold: 10, Gems: 4},
			Items:  []domain.InventoryEntry{{Item: domain.Item{Name: "Шнур", Price: 1, Currency: domain.CurrencyGold}, Amount: 2}},
		}, nil)
		h := NewPlayerHandler(&MockUserService{}, ledgerSvc)

		rec := httptest.NewRecorder()
		h.HandleGetPlayer(rec, newJSONRequest(http.MethodGet, "/", "", "name", "Player_01"))

		require.Equal(t, http.StatusOK, rec.Code)
		var snapshot domain.PlayerInventory
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
		assert.Equal(t, 4, snapshot.Player.Gems)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, 2, snapshot.Items[0].Amount)
	})

	t.Run("Unknown Player", func(t *testing.T) {
		ledgerSvc := &MockLedgerService{}
		ledgerSvc.On("GetPlayerWithInventory", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)
		h := NewPlayerHandler(&MockUserService{}, ledgerSvc)

		rec := httptest.NewRecorder()
		h.HandleGetPlayer(rec, newJSONRequest(http.MethodGet, "/", "", "name", "ghost"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Missing Param", func(t *testing.T) {
		h := NewPlayerHandler(&MockUserService{}, &MockLedgerService{})

		rec := httptest.NewRecorder()
		h.HandleGetPlayer(rec, newJSONRequest(http.MethodGet, "/", ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
