package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"stlucia/internal/catalog/validator"
	apperrors "stlucia/pkg/errors"
	"stlucia/pkg/logger"
	"stlucia/pkg/model"
)

// ────────────────────────────────────────────────
// In-memory repositories for testing
// ────────────────────────────────────────────────

type mockTourRepository struct {
	tours      []*model.Tour
	createFunc func(ctx context.Context, tour *model.Tour) error
	countFunc  func(ctx context.Context) (int64, error)
	findFunc   func(ctx context.Context) ([]*model.Tour, error)
	created    int
}

func (m *mockTourRepository) Create(ctx context.Context, tour *model.Tour) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, tour)
	}
	m.created++
	tour.ID = fmt.Sprintf("tour-%d", m.created)
	stored := *tour
	m.tours = append(m.tours, &stored)
	return nil
}

func (m *mockTourRepository) FindAll(ctx context.Context) ([]*model.Tour, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx)
	}
	out := make([]*model.Tour, 0, len(m.tours))
	out = append(out, m.tours...)
	return out, nil
}

func (m *mockTourRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return int64(len(m.tours)), nil
}

type mockVehicleRepository struct {
	vehicles   []*model.Vehicle
	createFunc func(ctx context.Context, vehicle *model.Vehicle) error
	countFunc  func(ctx context.Context) (int64, error)
	created    int
}

func (m *mockVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, vehicle)
	}
	m.created++
	vehicle.ID = fmt.Sprintf("vehicle-%d", m.created)
	stored := *vehicle
	m.vehicles = append(m.vehicles, &stored)
	return nil
}

func (m *mockVehicleRepository) FindAll(ctx context.Context) ([]*model.Vehicle, error) {
	out := make([]*model.Vehicle, 0, len(m.vehicles))
	out = append(out, m.vehicles...)
	return out, nil
}

func (m *mockVehicleRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return int64(len(m.vehicles)), nil
}

func newTestService(tours *mockTourRepository, vehicles *mockVehicleRepository) CatalogService {
	log := logger.Discard()
	return NewCatalogService(tours, vehicles, validator.NewCatalogValidator(log), log)
}

// ────────────────────────────────────────────────
// Seed
// ────────────────────────────────────────────────

func TestSeed_FromEmpty(t *testing.T) {
	tours := &mockTourRepository{}
	vehicles := &mockVehicleRepository{}
	svc := newTestService(tours, vehicles)

	result, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tours != 3 || result.Vehicles != 3 {
		t.Fatalf("expected 3/3 created, got %d/%d", result.Tours, result.Vehicles)
	}

	listed, err := svc.ListTours(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 tours, got %d", len(listed))
	}

	var featured *model.Tour
	for _, tour := range listed {
		if tour.Featured {
			featured = tour
		}
	}
	if featured == nil || featured.Title != "Gros Piton Hike" {
		t.Errorf("expected featured Gros Piton Hike, got %+v", featured)
	}

	for _, vehicle := range vehicles.vehicles {
		if !vehicle.Available {
			t.Errorf("seeded vehicle %q should be available", vehicle.Name)
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	tours := &mockTourRepository{}
	vehicles := &mockVehicleRepository{}
	svc := newTestService(tours, vehicles)

	if _, err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	second, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second.Tours != 0 || second.Vehicles != 0 {
		t.Errorf("expected 0/0 on second seed, got %d/%d", second.Tours, second.Vehicles)
	}
	if len(tours.tours) != 3 || len(vehicles.vehicles) != 3 {
		t.Errorf("expected 3/3 stored, got %d/%d", len(tours.tours), len(vehicles.vehicles))
	}
}

func TestSeed_PartiallyPopulated(t *testing.T) {
	tours := &mockTourRepository{tours: []*model.Tour{{ID: "existing", Title: "Existing"}}}
	vehicles := &mockVehicleRepository{}
	svc := newTestService(tours, vehicles)

	result, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tours != 0 {
		t.Errorf("expected no tours created, got %d", result.Tours)
	}
	if result.Vehicles != 3 {
		t.Errorf("expected 3 vehicles created, got %d", result.Vehicles)
	}
}

func TestSeed_StoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name     string
		tours    *mockTourRepository
		vehicles *mockVehicleRepository
	}{
		{
			name: "tour count fails",
			tours: &mockTourRepository{countFunc: func(ctx context.Context) (int64, error) {
				return 0, storeErr
			}},
			vehicles: &mockVehicleRepository{},
		},
		{
			name: "tour insert fails",
			tours: &mockTourRepository{createFunc: func(ctx context.Context, tour *model.Tour) error {
				return storeErr
			}},
			vehicles: &mockVehicleRepository{},
		},
		{
			name:  "vehicle count fails",
			tours: &mockTourRepository{},
			vehicles: &mockVehicleRepository{countFunc: func(ctx context.Context) (int64, error) {
				return 0, storeErr
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.tours, tt.vehicles)

			_, err := svc.Seed(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.StatusCode() != http.StatusInternalServerError {
				t.Errorf("expected 500, got %d", appErr.StatusCode())
			}
			if appErr.Cause() != storeErr.Error() {
				t.Errorf("expected cause %q, got %q", storeErr.Error(), appErr.Cause())
			}
		})
	}
}

// ────────────────────────────────────────────────
// Create / List
// ────────────────────────────────────────────────

func TestCreateTour_RoundTrip(t *testing.T) {
	tours := &mockTourRepository{}
	svc := newTestService(tours, &mockVehicleRepository{})

	imageURL := "https://example.com/piton.jpg"
	tour := &model.Tour{
		Title:         "Gros Piton Hike",
		Description:   "Guided hike",
		Price:         95,
		DurationHours: 5,
		Location:      "Soufrière",
		ImageURL:      &imageURL,
		Featured:      true,
	}

	if err := svc.CreateTour(context.Background(), tour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tour.ID == "" {
		t.Fatal("expected id to be assigned")
	}

	listed, err := svc.ListTours(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 tour, got %d", len(listed))
	}
	got := listed[0]
	if got.ID != tour.ID || got.Title != tour.Title || got.Price != tour.Price ||
		got.DurationHours != tour.DurationHours || got.Location != tour.Location ||
		got.Featured != tour.Featured || got.ImageURL == nil || *got.ImageURL != imageURL {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, tour)
	}
}

func TestCreateTour_PriceValidation(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		wantErr    bool
		wantStored int
	}{
		{"negative price rejected", -1, true, 0},
		{"zero price accepted", 0, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tours := &mockTourRepository{}
			svc := newTestService(tours, &mockVehicleRepository{})

			err := svc.CreateTour(context.Background(), &model.Tour{
				Title:         "Free walk",
				Description:   "Town walk",
				Price:         tt.price,
				DurationHours: 1,
				Location:      "Castries",
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateTour() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				appErr := apperrors.AsAppError(err)
				if appErr.Code != apperrors.CodeValidation {
					t.Errorf("expected %s, got %s", apperrors.CodeValidation, appErr.Code)
				}
				if _, ok := appErr.Details["price"]; !ok {
					t.Errorf("expected price detail, got %v", appErr.Details)
				}
			}
			if len(tours.tours) != tt.wantStored {
				t.Errorf("expected %d stored, got %d", tt.wantStored, len(tours.tours))
			}
		})
	}
}

func TestCreateVehicle_InvalidSeats(t *testing.T) {
	vehicles := &mockVehicleRepository{}
	svc := newTestService(&mockTourRepository{}, vehicles)

	err := svc.CreateVehicle(context.Background(), &model.Vehicle{
		Name: "Mini", Type: "Car", Seats: 0, PricePerDay: 30, Transmission: "Manual",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(vehicles.vehicles) != 0 {
		t.Errorf("invalid vehicle must not reach the store")
	}
}

func TestListTours_Empty(t *testing.T) {
	svc := newTestService(&mockTourRepository{}, &mockVehicleRepository{})

	tours, err := svc.ListTours(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tours == nil || len(tours) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", tours)
	}
}

func TestListTours_StoreError(t *testing.T) {
	tours := &mockTourRepository{findFunc: func(ctx context.Context) ([]*model.Tour, error) {
		return nil, errors.New("store unavailable")
	}}
	svc := newTestService(tours, &mockVehicleRepository{})

	_, err := svc.ListTours(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if apperrors.AsAppError(err).StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", apperrors.AsAppError(err).StatusCode())
	}
}
