package repository

import "github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"

// ScreeningReportRepository is the persistence port for background checks.
type ScreeningReportRepository interface {
	Create(report *entity.ScreeningReport) error
	GetByID(id string) (*entity.ScreeningReport, error)
	GetByApplicationID(applicationID string) (*entity.ScreeningReport, error)
	GetByProviderRef(providerRef string) (*entity.ScreeningReport, error)
	Update(report *entity.ScreeningReport) error
}

// IdentityVerificationRepository is the persistence port for identity sessions.
type IdentityVerificationRepository interface {
	Create(v *entity.IdentityVerification) error
	GetByProviderRef(providerRef string) (*entity.IdentityVerification, error)
	GetLatestByAccount(accountID string) (*entity.IdentityVerification, error)
	Update(v *entity.IdentityVerification) error
}
