package service

import (
	"context"
	"log"
	"strings"
	"time"

	"medical-directory/internal/model"
	"medical-directory/internal/ports"
)

// allSpecialties : specialty value meaning "no filter"
const allSpecialties = "all"

// DoctorService : read-through cache in front of the doctors table
type DoctorService struct {
	doctorRepository ports.DoctorRepository
	cache            ports.CacheRepository
	avatars          ports.S3Storage
	avatarURLTTL     time.Duration
}

// NewDoctorService : avatars may be nil, avatar values are then returned as stored
func NewDoctorService(
	doctorRepository ports.DoctorRepository,
	cache ports.CacheRepository,
	avatars ports.S3Storage,
	avatarURLTTL time.Duration,
) *DoctorService {
	return &DoctorService{
		doctorRepository: doctorRepository,
		cache:            cache,
		avatars:          avatars,
		avatarURLTTL:     avatarURLTTL,
	}
}

func (s *DoctorService) ListDoctors(ctx context.Context, specialty, search string) ([]model.Doctor, error) {
	filter := model.DoctorFilter{
		Specialty: strings.TrimSpace(specialty),
		Search:    strings.TrimSpace(search),
	}
	if filter.Specialty == allSpecialties {
		filter.Specialty = ""
	}

	doctors, err := s.cache.GetDoctors(ctx, filter)
	if err != nil {
		log.Printf("[DoctorService] cache read failed, falling back to database: %v", err)
	}

	if doctors == nil {
		doctors, err = s.doctorRepository.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetDoctors(ctx, filter, doctors); err != nil {
			log.Printf("[DoctorService] cache write failed: %v", err)
		}
	}

	return s.withAvatarURLs(ctx, doctors), nil
}

func (s *DoctorService) ListSpecialties(ctx context.Context) ([]string, error) {
	specialties, err := s.cache.GetSpecialties(ctx)
	if err != nil {
		log.Printf("[DoctorService] cache read failed, falling back to database: %v", err)
	}
	if specialties != nil {
		return specialties, nil
	}

	specialties, err = s.doctorRepository.Specialties(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetSpecialties(ctx, specialties); err != nil {
		log.Printf("[DoctorService] cache write failed: %v", err)
	}

	return specialties, nil
}

// withAvatarURLs : avatars stored as bucket keys are replaced by presigned URLs.
// Cached entries keep the keys, the URLs expire.
func (s *DoctorService) withAvatarURLs(ctx context.Context, doctors []model.Doctor) []model.Doctor {
	if s.avatars == nil {
		return doctors
	}

	for i := range doctors {
		avatar := doctors[i].Avatar
		if avatar == "" || isAbsoluteURL(avatar) {
			continue
		}

		url, err := s.avatars.GeneratePresignedGetURL(ctx, avatar, s.avatarURLTTL)
		if err != nil {
			log.Printf("[DoctorService] presigning avatar of doctor %s failed, keeping stored value: %v", doctors[i].ID, err)
			continue
		}
		doctors[i].Avatar = url
	}
	return doctors
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
