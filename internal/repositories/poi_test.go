package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPOIReadRepository_ListByCity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPOIReadRepository(db, zap.NewNop().Sugar())

	typeCode := "110000"
	rows := sqlmock.NewRows([]string{"id", "name", "type", "type_code", "search_type", "lon", "lat", "address", "tel", "business_area", "properties"}).
		AddRow("B001", "夫子庙", "景点", typeCode, nil, 118.79, 32.02, "秦淮区贡院街", nil, nil, []byte(`{"rating":4.7}`))

	mock.ExpectQuery("FROM poi").WithArgs("nj", "景点").WillReturnRows(rows)

	pois, err := repo.ListByCity(context.Background(), "nj", "景点")
	assert.NoError(t, err)
	assert.Len(t, pois, 1)

	assert.Equal(t, "B001", pois[0].ID)
	assert.Equal(t, "夫子庙", pois[0].Name)
	assert.Equal(t, "110000", *pois[0].TypeCode)
	assert.Nil(t, pois[0].SearchType)
	assert.Equal(t, 4.7, pois[0].Properties["rating"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPOIReadRepository_ListByCity_NoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPOIReadRepository(db, zap.NewNop().Sugar())

	rows := sqlmock.NewRows([]string{"id", "name", "type", "type_code", "search_type", "lon", "lat", "address", "tel", "business_area", "properties"})

	// An empty type argument disables the category filter server-side.
	mock.ExpectQuery("FROM poi").WithArgs("nj", "").WillReturnRows(rows)

	pois, err := repo.ListByCity(context.Background(), "nj", "")
	assert.NoError(t, err)
	assert.Empty(t, pois)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPOIReadRepository_ListNearby(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPOIReadRepository(db, zap.NewNop().Sugar())

	rows := sqlmock.NewRows([]string{"id", "name", "type", "type_code", "lon", "lat", "address", "tel", "business_area", "distance"}).
		AddRow("B001", "近点", "餐饮", nil, 118.781, 32.041, nil, nil, nil, 12.3456).
		AddRow("B002", "远点", "餐饮", nil, 118.785, 32.045, nil, nil, nil, 287.9)

	mock.ExpectQuery("ST_DWithin").
		WithArgs(118.78, 32.04, "nj", 300).
		WillReturnRows(rows)

	pois, err := repo.ListNearby(context.Background(), "nj", 118.78, 32.04, 300)
	assert.NoError(t, err)
	assert.Len(t, pois, 2)

	assert.Equal(t, "近点", pois[0].Name)
	assert.Equal(t, 12.3456, pois[0].Distance)
	assert.Equal(t, 287.9, pois[1].Distance)

	assert.NoError(t, mock.ExpectationsWereMet())
}
