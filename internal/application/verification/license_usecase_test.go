package verification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/repository"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

type fakeContractorRepo struct {
	repository.ContractorRepository
	profile *entity.ContractorProfile
	stale   []*entity.ContractorProfile
	updated int
}

func (f *fakeContractorRepo) GetByAccountID(string) (*entity.ContractorProfile, error) {
	return f.profile, nil
}

func (f *fakeContractorRepo) ListLicensesCheckedBefore(time.Time) ([]*entity.ContractorProfile, error) {
	return f.stale, nil
}

func (f *fakeContractorRepo) Update(p *entity.ContractorProfile) error {
	f.profile = p
	f.updated++
	return nil
}

type fakeRegistry struct {
	record *verification.LicenseRecord
	err    error
	calls  int
}

func (f *fakeRegistry) Lookup(_ context.Context, _, _ string) (*verification.LicenseRecord, error) {
	f.calls++
	return f.record, f.err
}

func licensedProfile() *entity.ContractorProfile {
	return &entity.ContractorProfile{
		ID:            "profile-1",
		AccountID:     "acct-1",
		BusinessName:  "Reyes Plumbing",
		Trade:         "plumbing",
		LicenseNumber: "PL-12345",
		LicenseState:  "CA",
		LicenseStatus: entity.LicensePending,
	}
}

func newLicenseUC(repo *fakeContractorRepo, reg *fakeRegistry) *verification.LicenseUseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return verification.NewLicenseUseCase(repo, reg, log)
}

func TestVerify_ActiveRegistryStatus(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)
	repo := &fakeContractorRepo{profile: licensedProfile()}
	reg := &fakeRegistry{record: &verification.LicenseRecord{
		Found:     true,
		Status:    "current",
		ExpiresAt: &future,
	}}

	status, err := newLicenseUC(repo, reg).Verify(context.Background(), "acct-1")
	require.NoError(t, err)

	assert.Equal(t, entity.LicenseActive, status)
	assert.Equal(t, &future, repo.profile.LicenseExpiresAt)
	require.NotNil(t, repo.profile.LicenseCheckedAt)
}

func TestVerify_RegistryStatusMapping(t *testing.T) {
	cases := []struct {
		registryStatus string
		want           string
	}{
		{"active", entity.LicenseActive},
		{"valid", entity.LicenseActive},
		{"lapsed", entity.LicenseExpired},
		{"suspended", entity.LicenseSuspended},
		{"revoked", entity.LicenseSuspended},
		{"under_review", entity.LicensePending},
	}
	for _, tc := range cases {
		t.Run(tc.registryStatus, func(t *testing.T) {
			repo := &fakeContractorRepo{profile: licensedProfile()}
			reg := &fakeRegistry{record: &verification.LicenseRecord{Found: true, Status: tc.registryStatus}}

			status, err := newLicenseUC(repo, reg).Verify(context.Background(), "acct-1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
		})
	}
}

func TestVerify_ExpiryDateOverridesActiveStatus(t *testing.T) {
	past := time.Now().AddDate(0, -2, 0)
	repo := &fakeContractorRepo{profile: licensedProfile()}
	reg := &fakeRegistry{record: &verification.LicenseRecord{
		Found:     true,
		Status:    "active",
		ExpiresAt: &past,
	}}

	status, err := newLicenseUC(repo, reg).Verify(context.Background(), "acct-1")
	require.NoError(t, err)
	assert.Equal(t, entity.LicenseExpired, status)
}

func TestVerify_UnknownLicenseNotFound(t *testing.T) {
	repo := &fakeContractorRepo{profile: licensedProfile()}
	reg := &fakeRegistry{record: &verification.LicenseRecord{Found: false}}

	status, err := newLicenseUC(repo, reg).Verify(context.Background(), "acct-1")
	require.NoError(t, err)

	assert.Equal(t, entity.LicenseNotFound, status)
	assert.Nil(t, repo.profile.LicenseExpiresAt)
}

func TestVerify_MissingLicenseNumberRejected(t *testing.T) {
	profile := licensedProfile()
	profile.LicenseNumber = ""
	repo := &fakeContractorRepo{profile: profile}
	reg := &fakeRegistry{}

	_, err := newLicenseUC(repo, reg).Verify(context.Background(), "acct-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, reg.calls)
}

func TestSweep_RechecksStaleProfiles(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)
	stale := licensedProfile()
	repo := &fakeContractorRepo{stale: []*entity.ContractorProfile{stale}}
	reg := &fakeRegistry{record: &verification.LicenseRecord{
		Found:     true,
		Status:    "active",
		ExpiresAt: &future,
	}}

	err := newLicenseUC(repo, reg).Sweep(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, reg.calls)
	assert.Equal(t, 1, repo.updated)
	assert.Equal(t, entity.LicenseActive, stale.LicenseStatus)
}
