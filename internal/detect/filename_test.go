package detect

import "testing"

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name            string
		filename        string
		wantInstitution string
		wantType        string
		wantSubtype     string
		wantNumber      string
		wantAccountName string
	}{
		{
			name:            "chase checking with number",
			filename:        "chase_checking_1234.csv",
			wantInstitution: "Chase",
			wantType:        TypeDepository,
			wantSubtype:     SubtypeChecking,
			wantNumber:      "1234",
			wantAccountName: "Chase checking 1234",
		},
		{
			name:            "wells fargo savings",
			filename:        "wells_fargo_savings_2210.xlsx",
			wantInstitution: "Wells Fargo",
			wantType:        TypeDepository,
			wantSubtype:     SubtypeSavings,
			wantNumber:      "2210",
			wantAccountName: "Wells Fargo savings 2210",
		},
		{
			name:            "credit card marker beats generic keywords",
			filename:        "citi_credit_card.pdf",
			wantInstitution: "Citibank",
			wantType:        TypeCredit,
			wantSubtype:     SubtypeCreditCard,
			wantAccountName: "Citibank credit card",
		},
		{
			name:            "institution only",
			filename:        "amex.csv",
			wantInstitution: "American Express",
			// "amex" is also a credit keyword, so type resolves too.
			wantType:        TypeCredit,
			wantSubtype:     SubtypeCreditCard,
			wantAccountName: "American Express credit card",
		},
		{
			name:     "digits only",
			filename: "statement_9921.csv",
			// "statement" carries no institution or type.
			wantNumber: "9921",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromFilename(tt.filename)
			if got == nil {
				t.Fatalf("fromFilename(%q) = nil", tt.filename)
			}
			if got.InstitutionName != tt.wantInstitution {
				t.Errorf("institution = %q, want %q", got.InstitutionName, tt.wantInstitution)
			}
			if got.AccountType != tt.wantType {
				t.Errorf("type = %q, want %q", got.AccountType, tt.wantType)
			}
			if got.AccountSubtype != tt.wantSubtype {
				t.Errorf("subtype = %q, want %q", got.AccountSubtype, tt.wantSubtype)
			}
			if got.AccountNumber != tt.wantNumber {
				t.Errorf("number = %q, want %q", got.AccountNumber, tt.wantNumber)
			}
			if got.AccountName != tt.wantAccountName {
				t.Errorf("account name = %q, want %q", got.AccountName, tt.wantAccountName)
			}
		})
	}
}

func TestFromFilename_NoSignal(t *testing.T) {
	for _, filename := range []string{
		"",
		"   ",
		"unknown.csv",
		"unknown_account_2.csv",
		"import_20240115.csv",
		"f47ac10b-58cc-4372-a567-0e02b2c3d479.pdf",
	} {
		if got := fromFilename(filename); got != nil {
			t.Errorf("fromFilename(%q) = %+v, want nil", filename, got)
		}
	}
}

func TestAccountDisplayName(t *testing.T) {
	tests := []struct {
		institution, accountType, subtype, number string
		want                                      string
	}{
		{"Chase", TypeDepository, SubtypeChecking, "1234", "Chase checking 1234"},
		{"Chase", TypeCredit, SubtypeCreditCard, "", "Chase credit card"},
		{"", TypeDepository, "", "9876", "depository 9876"},
		{"Citibank", "", "", "", "Citibank"},
		{"", "", "", "", "Unknown Account"},
	}
	for _, tt := range tests {
		if got := AccountDisplayName(tt.institution, tt.accountType, tt.subtype, tt.number); got != tt.want {
			t.Errorf("AccountDisplayName(%q, %q, %q, %q) = %q, want %q",
				tt.institution, tt.accountType, tt.subtype, tt.number, got, tt.want)
		}
	}
}
