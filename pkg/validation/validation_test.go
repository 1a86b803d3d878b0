package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "ops@example.com", false},
		{"valid with plus tag", "ops+test@example.com", false},
		{"empty", "", true},
		{"missing domain", "ops@", true},
		{"missing at sign", "ops.example.com", true},
		{"missing tld", "ops@example", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q): err=%v, wantErr=%v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"e164", "+15551234567", false},
		{"bare digits", "5551234567", false},
		{"empty", "", true},
		{"too short", "+12345", true},
		{"letters", "+1555CALLNOW", true},
		{"spaces", "+1 555 123 4567", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhone(%q): err=%v, wantErr=%v", tt.phone, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid", "2024-01-31", false},
		{"empty", "", true},
		{"wrong order", "31-01-2024", true},
		{"impossible day", "2024-02-31", true},
		{"missing day", "2024-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate(%q): err=%v, wantErr=%v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAppointment(t *testing.T) {
	if err := ValidateAppointment("Ann", "+15551234567", "2024-05-01", "09:30"); err != nil {
		t.Errorf("valid appointment rejected: %v", err)
	}
	if err := ValidateAppointment("", "+15551234567", "2024-05-01", "09:30"); err == nil {
		t.Error("missing customer name should be rejected")
	}
	if err := ValidateAppointment("Ann", "+15551234567", "2024-05-01", ""); err == nil {
		t.Error("missing time should be rejected")
	}
}

func TestValidateScript(t *testing.T) {
	if err := ValidateScript("greeting", `{"steps": []}`); err != nil {
		t.Errorf("valid script rejected: %v", err)
	}
	if err := ValidateScript("greeting", `{"steps": [`); err == nil {
		t.Error("malformed JSON should be rejected")
	}
	if err := ValidateScript("", `{}`); err == nil {
		t.Error("missing name should be rejected")
	}
}

func TestValidateLoginAndRegister(t *testing.T) {
	if err := ValidateLogin("ops@example.com", "secret1"); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}
	if err := ValidateLogin("ops@example.com", ""); err == nil {
		t.Error("empty password should be rejected")
	}
	if err := ValidateRegister("Ann", "ops@example.com", "short"); err == nil {
		t.Error("short password should be rejected at registration")
	}
}
