package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"revenda_veiculos/internal/adapter/http/dto/response"
	"revenda_veiculos/internal/adapter/http/handlers/mocks"
	"revenda_veiculos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func vehicleRouter(uc *mocks.MockIVehicleUseCase) *gin.Engine {
	h := NewVehicleHandler(uc)
	r := gin.New()
	r.POST("/v1/vehicles", h.CreateVehicle)
	r.PUT("/v1/vehicles/:id", h.UpdateVehicle)
	r.GET("/v1/vehicles/:id", h.GetVehicle)
	r.GET("/v1/vehicles", h.ListVehicles)
	return r
}

func sampleVehicle(id, price string, status entities.VehicleStatus) *entities.Vehicle {
	return &entities.Vehicle{
		Base:   entities.Base{ID: id, Version: 1},
		Brand:  "Toyota",
		Model:  "Corolla",
		Year:   2022,
		Color:  "Prata",
		Price:  decimal.RequireFromString(price),
		Status: status,
	}
}

func TestVehicleHandler_CreateVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)

		w := doRequest(vehicleRouter(uc), http.MethodPost, "/v1/vehicles", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, entities.ErrInvalidYear)

		w := doRequest(vehicleRouter(uc), http.MethodPost, "/v1/vehicles", `{"brand":"Toyota","model":"Corolla","year":1900,"color":"Prata","price":"1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %s", body.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, data entities.VehicleData) (*entities.Vehicle, error) {
			if !data.Price.Equal(decimal.NewFromInt(50000)) || data.Year != 2022 {
				t.Fatalf("unexpected data %+v", data)
			}
			return sampleVehicle("v-1", "50000", entities.VehicleStatusAvailable), nil
		})

		w := doRequest(vehicleRouter(uc), http.MethodPost, "/v1/vehicles", `{"brand":"Toyota","model":"Corolla","year":2022,"color":"Prata","price":50000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res response.VehicleResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "v-1" || res.Price != "50000.00" {
			t.Fatalf("unexpected body %+v", res)
		}
	})
}

func TestVehicleHandler_UpdateVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sold vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "v-1", gomock.Any()).Return(nil, entities.ErrVehicleSoldReadOnly)

		w := doRequest(vehicleRouter(uc), http.MethodPut, "/v1/vehicles/v-1", `{"brand":"Toyota","model":"Corolla","year":2022,"color":"Preto","price":"1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "v-1", gomock.Any()).Return(sampleVehicle("v-1", "48000", entities.VehicleStatusAvailable), nil)

		w := doRequest(vehicleRouter(uc), http.MethodPut, "/v1/vehicles/v-1", `{"brand":"Toyota","model":"Corolla","year":2022,"color":"Preto","price":"48000"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_GetVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVehicleUseCase(ctrl)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, entities.ErrVehicleNotFound)

	w := doRequest(vehicleRouter(uc), http.MethodGet, "/v1/vehicles/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Code != "VEHICLE_NOT_FOUND" {
		t.Fatalf("expected VEHICLE_NOT_FOUND, got %s", body.Code)
	}
}

func TestVehicleHandler_ListVehicles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().ListByStatus(gomock.Any(), entities.VehicleStatusAvailable).Return([]*entities.Vehicle{
			sampleVehicle("a", "10", entities.VehicleStatusAvailable),
			sampleVehicle("b", "20", entities.VehicleStatusAvailable),
		}, nil)

		w := doRequest(vehicleRouter(uc), http.MethodGet, "/v1/vehicles", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []response.VehicleResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "a" {
			t.Fatalf("unexpected body %+v", res)
		}
	})

	t.Run("sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		uc.EXPECT().ListByStatus(gomock.Any(), entities.VehicleStatusSold).Return(nil, nil)

		w := doRequest(vehicleRouter(uc), http.MethodGet, "/v1/vehicles?status=SOLD", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %s", w.Body.String())
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)

		w := doRequest(vehicleRouter(uc), http.MethodGet, "/v1/vehicles?status=reserved", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
