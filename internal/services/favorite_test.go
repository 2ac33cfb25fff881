package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
	"github.com/metroapp/metro-map-backend/internal/services"
)

func newFavoriteService(t *testing.T) (*services.FavoriteService, *services.MockFavoriteReader, *services.MockFavoriteWriter) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReader := services.NewMockFavoriteReader(ctrl)
	mockWriter := services.NewMockFavoriteWriter(ctrl)
	svc := services.NewFavoriteService(mockReader, mockWriter, zap.NewNop().Sugar())
	return svc, mockReader, mockWriter
}

func TestFavoriteService_Add(t *testing.T) {
	existing := &models.FavoriteDB{FavID: 11, UserID: 1, CityCode: "nj", StationID: "新街口"}
	inserted := &models.FavoriteDB{FavID: 12, UserID: 1, CityCode: "nj", StationID: "鼓楼"}

	tests := []struct {
		name        string
		stationID   string
		existing    *models.FavoriteDB
		readerErr   error
		insertErr   error
		wantFav     *models.FavoriteDB
		wantCreated bool
		wantErr     error
	}{
		{
			name:        "new favorite created",
			stationID:   "鼓楼",
			wantFav:     inserted,
			wantCreated: true,
		},
		{
			name:        "existing favorite returned unchanged",
			stationID:   "新街口",
			existing:    existing,
			wantFav:     existing,
			wantCreated: false,
		},
		{
			name:      "reader error",
			stationID: "鼓楼",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "insert error",
			stationID: "鼓楼",
			insertErr: errors.New("insert error"),
			wantErr:   errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, mockWriter := newFavoriteService(t)

			mockReader.EXPECT().
				Get(gomock.Any(), int64(1), "nj", tt.stationID).
				Return(tt.existing, tt.readerErr)

			if tt.existing == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Insert(gomock.Any(), int64(1), "nj", tt.stationID).
					Return(inserted, tt.insertErr)
			}

			fav, created, err := svc.Add(context.Background(), 1, "nj", tt.stationID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, fav)
				assert.False(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantFav, fav)
				assert.Equal(t, tt.wantCreated, created)
			}
		})
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	tests := []struct {
		name      string
		deleted   bool
		deleteErr error
		wantErr   error
	}{
		{
			name:    "removed",
			deleted: true,
		},
		{
			name:    "not found",
			deleted: false,
			wantErr: services.ErrFavoriteNotFound,
		},
		{
			name:      "delete error",
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockWriter := newFavoriteService(t)

			mockWriter.EXPECT().
				Delete(gomock.Any(), int64(1), "nj", "新街口").
				Return(tt.deleted, tt.deleteErr)

			err := svc.Remove(context.Background(), 1, "nj", "新街口")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFavoriteService_List(t *testing.T) {
	svc, mockReader, _ := newFavoriteService(t)

	favorites := []models.FavoriteWithStationDB{
		{FavID: 2, CityCode: "nj", StationID: "鼓楼", StationName: "鼓楼", LineName: "1号线", Lon: 118.77, Lat: 32.06, CreatedAt: time.Now()},
		{FavID: 1, CityCode: "nj", StationID: "某废弃站", StationName: "某废弃站", LineName: models.UnknownLine, CreatedAt: time.Now().Add(-time.Hour)},
	}
	mockReader.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(favorites, nil)

	got, err := svc.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, favorites, got)
}

func TestFavoriteService_Check(t *testing.T) {
	tests := []struct {
		name string
		fav  *models.FavoriteDB
	}{
		{
			name: "favorited",
			fav:  &models.FavoriteDB{FavID: 9, UserID: 1, CityCode: "nj", StationID: "新街口"},
		},
		{
			name: "not favorited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockReader, _ := newFavoriteService(t)

			mockReader.EXPECT().
				Get(gomock.Any(), int64(1), "nj", "新街口").
				Return(tt.fav, nil)

			fav, err := svc.Check(context.Background(), 1, "nj", "新街口")
			assert.NoError(t, err)
			assert.Equal(t, tt.fav, fav)
		})
	}
}
