package domain

import "testing"

func TestVerifyStatus_String(t *testing.T) {
	tests := []struct {
		name   string
		status VerifyStatus
		want   string
	}{
		{"banned", VerifyStatusBanned, "BANNED"},
		{"none", VerifyStatusNone, "NONE"},
		{"pending", VerifyStatusPending, "PENDING"},
		{"verified", VerifyStatusVerified, "VERIFIED"},
		{"unknown", VerifyStatus(7), "UNKNOWN(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("VerifyStatus.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
