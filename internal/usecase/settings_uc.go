package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
)

const subjectSettings = "settings"

type ProfileSettings struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type NotificationSettings struct {
	EmailNewUser     bool `json:"emailNewUser"`
	EmailNewProperty bool `json:"emailNewProperty"`
	PushTransaction  bool `json:"pushTransaction"`
}

type PlatformSettings struct {
	UnlockFee       string `json:"unlockFee"`
	CommissionRate  string `json:"commissionRate"`
	MaintenanceMode bool   `json:"maintenanceMode"`
	AutoApprove     bool   `json:"autoApprove"`
}

type Settings struct {
	Profile       ProfileSettings      `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Platform      PlatformSettings     `json:"platform"`
}

// DefaultSettings are the values the settings page starts from.
func DefaultSettings() Settings {
	return Settings{
		Profile: ProfileSettings{Name: "Admin Bonti", Email: "admin@bonti.com", Phone: "+224620000000"},
		Notifications: NotificationSettings{
			EmailNewUser:     true,
			EmailNewProperty: true,
			PushTransaction:  true,
		},
		Platform: PlatformSettings{UnlockFee: "10000", CommissionRate: "5"},
	}
}

// section key -> display label
var settingsSections = map[string]string{
	"profile":       "Profil",
	"notifications": "Notifications",
	"platform":      "Plateforme",
}

type SettingsUsecase struct {
	actions *ActionRunner
	logger  *logger.Logger
}

func NewSettingsUsecase(actions *ActionRunner, log *logger.Logger) *SettingsUsecase {
	return &SettingsUsecase{actions: actions, logger: log.Named("SettingsUsecase")}
}

func (uc *SettingsUsecase) Get(context.Context) Settings {
	return DefaultSettings()
}

// Save simulates saving one section. The payload must decode into that
// section but is not stored.
func (uc *SettingsUsecase) Save(ctx context.Context, section string, payload []byte) (*domain.Notification, error) {
	label, ok := settingsSections[section]
	if !ok {
		return nil, fmt.Errorf("%w: unknown settings section %q", domain.ErrNotFound, section)
	}
	if len(payload) > 0 {
		target := sectionValue(section)
		if err := json.Unmarshal(payload, target); err != nil {
			return nil, fmt.Errorf("%w: %s settings: %v", domain.ErrInvalidInput, section, err)
		}
	}
	return uc.actions.Run(ctx, "save", subjectSettings, section, func(context.Context) (*domain.Notification, error) {
		return &domain.Notification{
			Title:       label + " mis à jour",
			Description: "Les paramètres ont été sauvegardés.",
			Variant:     domain.VariantDefault,
		}, nil
	})
}

func sectionValue(section string) interface{} {
	switch section {
	case "profile":
		return &ProfileSettings{}
	case "notifications":
		return &NotificationSettings{}
	default:
		return &PlatformSettings{}
	}
}
