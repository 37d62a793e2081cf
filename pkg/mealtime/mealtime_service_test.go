package mealtime

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type mockMealTimeRepository struct {
	Config  *entities.MealTimeConfig
	Created *entities.MealTimeConfig
	Updated *entities.MealTimeConfig
}

var _ MealTimeRepository = (*mockMealTimeRepository)(nil)

func (m *mockMealTimeRepository) GetMealTimeConfig(ctx context.Context, patientID string) (*entities.MealTimeConfig, error) {
	return m.Config, nil
}

func (m *mockMealTimeRepository) CreateMealTimeConfig(ctx context.Context, config *entities.MealTimeConfig) error {
	m.Created = config
	m.Config = config
	return nil
}

func (m *mockMealTimeRepository) UpdateMealTimeConfig(ctx context.Context, config *entities.MealTimeConfig) error {
	m.Updated = config
	return nil
}

func TestGetMealTimesCreatesDefaultsOnFirstRead(t *testing.T) {
	repo := &mockMealTimeRepository{}
	service := NewMealTimeService(repo)

	res, err := service.GetMealTimes(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	assert.Equal(t, domain.MealTimesResponse{
		Breakfast:    DefaultBreakfast,
		Lunch:        DefaultLunch,
		Dinner:       DefaultDinner,
		Snack:        DefaultSnack,
		SnackEnabled: false,
	}, res)
	assert.NotNil(t, repo.Created)
}

func TestGetMealTimesReturnsExistingConfig(t *testing.T) {
	repo := &mockMealTimeRepository{Config: &entities.MealTimeConfig{
		ID:        uuid.New(),
		PatientID: uuid.New(),
		Breakfast: "07:15",
		Lunch:     "13:00",
		Dinner:    "20:30",
		Snack:     "16:00",
	}}
	service := NewMealTimeService(repo)

	res, err := service.GetMealTimes(context.Background(), repo.Config.PatientID.String())

	assert.NoError(t, err)
	assert.Equal(t, "07:15", res.Breakfast)
	assert.Nil(t, repo.Created)
}

func TestUpdateMealTimesPartialUpdate(t *testing.T) {
	repo := &mockMealTimeRepository{}
	service := NewMealTimeService(repo)
	enabled := true

	res, err := service.UpdateMealTimes(context.Background(), domain.UpdateMealTimesRequest{
		Dinner:       "20:00",
		SnackEnabled: &enabled,
	}, uuid.NewString())

	assert.NoError(t, err)
	assert.Equal(t, "20:00", res.Dinner)
	assert.Equal(t, DefaultBreakfast, res.Breakfast)
	assert.True(t, res.SnackEnabled)
	assert.NotNil(t, repo.Updated)
}

func TestUpdateMealTimesRejectsMalformedClock(t *testing.T) {
	repo := &mockMealTimeRepository{}
	service := NewMealTimeService(repo)

	for _, bad := range []string{"25:00", "12:99", "noon"} {
		_, err := service.UpdateMealTimes(context.Background(), domain.UpdateMealTimesRequest{
			Lunch: bad,
		}, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrInvalidMealTime, "value %q", bad)
		assert.Nil(t, repo.Updated)
	}
}

func TestUpdateMealTimesRejectsBadPatientID(t *testing.T) {
	service := NewMealTimeService(&mockMealTimeRepository{})

	_, err := service.UpdateMealTimes(context.Background(), domain.UpdateMealTimesRequest{}, "not-a-uuid")

	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
