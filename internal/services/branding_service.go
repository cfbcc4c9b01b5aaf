package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/cache"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/models"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/repositories"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/storage"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/timeutil"
)

const brandingCacheTTL = 10 * time.Minute

// Logo uploads are capped at 2 MB
const MaxLogoSize = 2 << 20

type BrandingService struct {
	settingRepo *repositories.SettingRepository
	uploader    *storage.Uploader
}

func NewBrandingService(settingRepo *repositories.SettingRepository, uploader *storage.Uploader) *BrandingService {
	return &BrandingService{
		settingRepo: settingRepo,
		uploader:    uploader,
	}
}

// GetProfile assembles the branding profile from settings, serving from
// cache when possible
func (s *BrandingService) GetProfile(ctx context.Context) (*models.BrandingProfile, error) {
	if data, ok := cache.GetCached(ctx, cache.BrandingKey); ok {
		var profile models.BrandingProfile
		if err := json.Unmarshal(data, &profile); err == nil {
			return &profile, nil
		}
	}

	settings, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	profile := &models.BrandingProfile{}
	for _, setting := range settings {
		switch setting.SettingKey {
		case models.BrandingKeyDealerName:
			profile.DealerName = setting.SettingValue
		case models.BrandingKeyAddress:
			profile.Address = setting.SettingValue
		case models.BrandingKeyPhone:
			profile.Phone = setting.SettingValue
		case models.BrandingKeyEmail:
			profile.Email = setting.SettingValue
		case models.BrandingKeyLogoURL:
			profile.LogoURL = setting.SettingValue
		case models.BrandingKeyFooterText:
			profile.FooterText = setting.SettingValue
		}
	}

	if data, err := json.Marshal(profile); err == nil {
		cache.SetCached(ctx, cache.BrandingKey, data, brandingCacheTTL)
	}
	return profile, nil
}

// UpdateProfile writes the supplied branding fields; empty fields are left alone
func (s *BrandingService) UpdateProfile(ctx context.Context, profile *models.BrandingProfile, updatedBy int) (*models.BrandingProfile, error) {
	updates := map[string]string{
		models.BrandingKeyDealerName: profile.DealerName,
		models.BrandingKeyAddress:    profile.Address,
		models.BrandingKeyPhone:      profile.Phone,
		models.BrandingKeyEmail:      profile.Email,
		models.BrandingKeyFooterText: profile.FooterText,
	}
	for key, value := range updates {
		if value == "" {
			continue
		}
		if err := s.settingRepo.Upsert(ctx, key, value, updatedBy); err != nil {
			return nil, err
		}
	}

	cache.InvalidateBranding(ctx)
	return s.GetProfile(ctx)
}

// UploadLogo stores the logo in object storage and records its public URL
func (s *BrandingService) UploadLogo(ctx context.Context, data []byte, contentType string, updatedBy int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrValidation)
	}
	if len(data) > MaxLogoSize {
		return "", fmt.Errorf("%w: logo exceeds 2MB", ErrValidation)
	}
	switch contentType {
	case "image/png", "image/jpeg", "image/webp":
	default:
		return "", fmt.Errorf("%w: unsupported content type %s", ErrValidation, contentType)
	}

	ext := "png"
	switch contentType {
	case "image/jpeg":
		ext = "jpg"
	case "image/webp":
		ext = "webp"
	}
	key := fmt.Sprintf("branding/logo_%s.%s", timeutil.Now().Format("20060102_150405"), ext)

	url, err := s.uploader.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.settingRepo.Upsert(ctx, models.BrandingKeyLogoURL, url, updatedBy); err != nil {
		return "", err
	}
	cache.InvalidateBranding(ctx)
	return url, nil
}
