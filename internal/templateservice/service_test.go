package templateservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/errorspkg"
)

func ptrInt64(v int64) *int64 { return &v }

func TestSelfAccounts(t *testing.T) {
	t.Parallel()

	user := domain.AppUser{ID: 1, Username: "gopher", ClientID: 5}

	owned := []domain.AccountTemplate{{
		AccountID:     ptrInt64(10),
		AccountNumber: "0001",
		AccountType:   domain.AccountTypeSavings,
		ClientID:      5,
		OfficeID:      1,
	}}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockOwnedAccountsRepo)
		checkResponse func(got []domain.AccountTemplate, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockOwnedAccountsRepo) {
				repo.EXPECT().ListOwnedAccounts(gomock.Any(), gomock.Eq(user.ID)).
					Times(1).
					Return(owned, nil)
			},
			checkResponse: func(got []domain.AccountTemplate, err error) {
				if err != nil {
					t.Errorf("SelfAccounts() returned error: %v", err)
				}

				if diff := cmp.Diff(owned, got); diff != "" {
					t.Errorf("SelfAccounts() mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "RepoError",
			buildStubs: func(repo *MockOwnedAccountsRepo) {
				repo.EXPECT().ListOwnedAccounts(gomock.Any(), gomock.Eq(user.ID)).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(got []domain.AccountTemplate, err error) {
				if err != errorspkg.ErrInternal {
					t.Errorf("SelfAccounts() error = %v, want %v", err, errorspkg.ErrInternal)
				}
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ownedRepo := NewMockOwnedAccountsRepo(ctrl)
			destinationsRepo := NewMockDestinationsRepo(ctrl)
			service := New(ownedRepo, destinationsRepo)

			tc.buildStubs(ownedRepo)

			tc.checkResponse(service.SelfAccounts(context.Background(), user))
		})
	}
}

func TestThirdPartyDestinations(t *testing.T) {
	t.Parallel()

	user := domain.AppUser{ID: 1, Username: "gopher", ClientID: 5}

	destinations := []domain.AccountTemplate{
		{
			AccountID:     ptrInt64(20),
			AccountNumber: "9999",
			AccountType:   domain.AccountTypeSavings,
			ClientID:      7,
			OfficeID:      1,
		},
		{
			// External destination, account id unresolved.
			AccountNumber: "4242",
			AccountType:   domain.AccountTypeSavings,
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownedRepo := NewMockOwnedAccountsRepo(ctrl)
	destinationsRepo := NewMockDestinationsRepo(ctrl)
	service := New(ownedRepo, destinationsRepo)

	destinationsRepo.EXPECT().ListDestinations(gomock.Any(), gomock.Eq(user.ID)).
		Times(1).
		Return(destinations, nil)

	got, err := service.ThirdPartyDestinations(context.Background(), user)
	if err != nil {
		t.Errorf("ThirdPartyDestinations() returned error: %v", err)
	}

	if diff := cmp.Diff(destinations, got); diff != "" {
		t.Errorf("ThirdPartyDestinations() mismatch (-want +got):\n%s", diff)
	}
}
