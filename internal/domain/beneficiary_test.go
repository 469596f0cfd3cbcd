package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptrString(s string) *string { return &s }
func ptrInt64(v int64) *int64    { return &v }

func TestBeneficiaryUpdate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		beneficiary   Beneficiary
		newName       *string
		newLimit      *int64
		wantChanges   map[string]interface{}
		wantName      string
		wantLimit     *int64
	}{
		{
			name:        "BothChanged",
			beneficiary: Beneficiary{Name: "Mom", TransferLimit: ptrInt64(500)},
			newName:     ptrString("Mother"),
			newLimit:    ptrInt64(1000),
			wantChanges: map[string]interface{}{"name": "Mother", "transferLimit": int64(1000)},
			wantName:    "Mother",
			wantLimit:   ptrInt64(1000),
		},
		{
			name:        "IdenticalValuesReportNoChanges",
			beneficiary: Beneficiary{Name: "Mom", TransferLimit: ptrInt64(500)},
			newName:     ptrString("Mom"),
			newLimit:    ptrInt64(500),
			wantChanges: map[string]interface{}{},
			wantName:    "Mom",
			wantLimit:   ptrInt64(500),
		},
		{
			name:        "NothingProvided",
			beneficiary: Beneficiary{Name: "Mom"},
			wantChanges: map[string]interface{}{},
			wantName:    "Mom",
		},
		{
			name:        "LimitSetForTheFirstTime",
			beneficiary: Beneficiary{Name: "Mom"},
			newLimit:    ptrInt64(300),
			wantChanges: map[string]interface{}{"transferLimit": int64(300)},
			wantName:    "Mom",
			wantLimit:   ptrInt64(300),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := tc.beneficiary

			got := b.Update(tc.newName, tc.newLimit)

			if diff := cmp.Diff(tc.wantChanges, got); diff != "" {
				t.Errorf("b.Update() changes mismatch (-want +got):\n%s", diff)
			}

			if b.Name != tc.wantName {
				t.Errorf("b.Name = %v, want %v", b.Name, tc.wantName)
			}

			if diff := cmp.Diff(tc.wantLimit, b.TransferLimit); diff != "" {
				t.Errorf("b.TransferLimit mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAccountTemplateHandle(t *testing.T) {
	t.Parallel()

	external := AccountTemplate{AccountNumber: "9999", AccountType: AccountTypeSavings}
	if _, ok := external.Handle(); ok {
		t.Error("external.Handle() ok = true, want false")
	}

	local := AccountTemplate{
		AccountID:     ptrInt64(20),
		AccountNumber: "9999",
		AccountType:   AccountTypeSavings,
		ClientID:      5,
		OfficeID:      1,
	}

	handle, ok := local.Handle()
	if !ok {
		t.Fatal("local.Handle() ok = false, want true")
	}

	want := AccountHandle{AccountID: 20, AccountType: AccountTypeSavings, ClientID: 5, OfficeID: 1}
	if handle != want {
		t.Errorf("local.Handle() = %+v, want %+v", handle, want)
	}
}
