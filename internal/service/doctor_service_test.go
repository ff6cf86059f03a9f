package service_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medical-directory/internal/model"
	"medical-directory/internal/service"
)

const avatarTTL = time.Hour

func newTestDoctorService(withStorage bool) (*service.DoctorService, *MockDoctorRepository, *MockCacheRepository, *MockStorage) {
	repo := new(MockDoctorRepository)
	cache := new(MockCacheRepository)
	storage := new(MockStorage)

	if !withStorage {
		return service.NewDoctorService(repo, cache, nil, avatarTTL), repo, cache, storage
	}
	return service.NewDoctorService(repo, cache, storage, avatarTTL), repo, cache, storage
}

func TestListDoctors_CacheMissPopulatesCache(t *testing.T) {
	svc, repo, cache, _ := newTestDoctorService(false)
	ctx := context.Background()
	filter := model.DoctorFilter{Specialty: "Cardiologie", Search: "bou"}
	doctors := []model.Doctor{{ID: "d1", LastName: "Boukhelifa"}}

	cache.On("GetDoctors", ctx, filter).Return(nil, nil)
	repo.On("List", ctx, filter).Return(doctors, nil)
	cache.On("SetDoctors", ctx, filter, doctors).Return(nil)

	got, err := svc.ListDoctors(ctx, " Cardiologie", "bou ")

	require.NoError(t, err)
	assert.Equal(t, doctors, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestListDoctors_CacheHitSkipsDatabase(t *testing.T) {
	svc, repo, cache, _ := newTestDoctorService(false)
	ctx := context.Background()
	doctors := []model.Doctor{{ID: "d1"}}

	cache.On("GetDoctors", ctx, model.DoctorFilter{}).Return(doctors, nil)

	got, err := svc.ListDoctors(ctx, "all", "")

	require.NoError(t, err)
	assert.Equal(t, doctors, got)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListDoctors_CacheFailureFallsBackToDatabase(t *testing.T) {
	svc, repo, cache, _ := newTestDoctorService(false)
	doctors := []model.Doctor{}

	cache.On("GetDoctors", mock.Anything, model.DoctorFilter{}).Return(nil, errors.New("redis down"))
	repo.On("List", mock.Anything, model.DoctorFilter{}).Return(doctors, nil)
	cache.On("SetDoctors", mock.Anything, model.DoctorFilter{}, doctors).Return(errors.New("redis down"))

	got, err := svc.ListDoctors(context.Background(), "", "")

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestListDoctors_DatabaseError(t *testing.T) {
	svc, repo, cache, _ := newTestDoctorService(false)

	cache.On("GetDoctors", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.ListDoctors(context.Background(), "", "")

	assert.Error(t, err)
	cache.AssertNotCalled(t, "SetDoctors", mock.Anything, mock.Anything, mock.Anything)
}

func TestListDoctors_PresignsAvatarKeys(t *testing.T) {
	svc, _, cache, storage := newTestDoctorService(true)
	cached := []model.Doctor{
		{ID: "d1", Avatar: "avatars/d1.jpg"},
		{ID: "d2", Avatar: "https://randomuser.me/api/portraits/men/32.jpg"},
		{ID: "d3", Avatar: ""},
		{ID: "d4", Avatar: "avatars/d4.jpg"},
	}

	cache.On("GetDoctors", mock.Anything, model.DoctorFilter{}).Return(cached, nil)
	storage.On("GeneratePresignedGetURL", mock.Anything, "avatars/d1.jpg", avatarTTL).
		Return("https://s3.local/doctor-avatars/avatars/d1.jpg?X-Amz-Signature=abc", nil)
	storage.On("GeneratePresignedGetURL", mock.Anything, "avatars/d4.jpg", avatarTTL).
		Return("", errors.New("presign failed"))

	got, err := svc.ListDoctors(context.Background(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/doctor-avatars/avatars/d1.jpg?X-Amz-Signature=abc", got[0].Avatar)
	assert.Equal(t, "https://randomuser.me/api/portraits/men/32.jpg", got[1].Avatar)
	assert.Equal(t, "", got[2].Avatar)
	assert.Equal(t, "avatars/d4.jpg", got[3].Avatar)
	storage.AssertNumberOfCalls(t, "GeneratePresignedGetURL", 2)
}

func TestListDoctors_PresignFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	svc, _, cache, storage := newTestDoctorService(true)
	cache.On("GetDoctors", mock.Anything, model.DoctorFilter{}).
		Return([]model.Doctor{{ID: "d7", Avatar: "avatars/d7.jpg"}}, nil)
	storage.On("GeneratePresignedGetURL", mock.Anything, "avatars/d7.jpg", avatarTTL).
		Return("", errors.New("signer unavailable"))

	got, err := svc.ListDoctors(context.Background(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "avatars/d7.jpg", got[0].Avatar)
	assert.Contains(t, logs.String(), "d7")
	assert.Contains(t, logs.String(), "signer unavailable")
}

func TestListSpecialties(t *testing.T) {
	t.Run("miss", func(t *testing.T) {
		svc, repo, cache, _ := newTestDoctorService(false)
		specialties := []string{"Cardiologie", "Dermatologie"}

		cache.On("GetSpecialties", mock.Anything).Return(nil, nil)
		repo.On("Specialties", mock.Anything).Return(specialties, nil)
		cache.On("SetSpecialties", mock.Anything, specialties).Return(nil)

		got, err := svc.ListSpecialties(context.Background())

		require.NoError(t, err)
		assert.Equal(t, specialties, got)
		cache.AssertExpectations(t)
	})

	t.Run("hit", func(t *testing.T) {
		svc, repo, cache, _ := newTestDoctorService(false)
		cache.On("GetSpecialties", mock.Anything).Return([]string{"Neurologie"}, nil)

		got, err := svc.ListSpecialties(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"Neurologie"}, got)
		repo.AssertNotCalled(t, "Specialties", mock.Anything)
	})
}
