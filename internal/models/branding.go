package models

import "time"

// BrandingSetting is one key-value row of dealer branding configuration.
type BrandingSetting struct {
	ID              int       `json:"id"`
	SettingKey      string    `json:"setting_key"`
	SettingValue    string    `json:"setting_value"`
	Description     string    `json:"description"`
	UpdatedAt       time.Time `json:"updated_at"`
	UpdatedByUserID int       `json:"updated_by_user_id"`
}

// BrandingProfile is the assembled branding configuration used on bills,
// quotations and generated PDFs.
type BrandingProfile struct {
	DealerName string `json:"dealer_name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	LogoURL    string `json:"logo_url"`
	FooterText string `json:"footer_text"`
}

// Branding setting keys
const (
	BrandingKeyDealerName = "branding_dealer_name"
	BrandingKeyAddress    = "branding_address"
	BrandingKeyPhone      = "branding_phone"
	BrandingKeyEmail      = "branding_email"
	BrandingKeyLogoURL    = "branding_logo_url"
	BrandingKeyFooterText = "branding_footer_text"
)
