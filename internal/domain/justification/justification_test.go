package justification

import (
	"testing"

	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
)

func TestCreateTypeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateTypeRequest
		wantErr bool
	}{
		{
			name:    "valid discountable for all punches",
			req:     CreateTypeRequest{TimeType: "all", Justification: "Atraso", Discountable: true},
			wantErr: false,
		},
		{
			name:    "valid with no flags",
			req:     CreateTypeRequest{TimeType: "clock_in", Justification: "Consulta médica"},
			wantErr: false,
		},
		{
			name:    "abonable and discountable together",
			req:     CreateTypeRequest{TimeType: "all", Justification: "Abono", Abonable: true, Discountable: true},
			wantErr: true,
		},
		{
			name:    "abonable and absence together",
			req:     CreateTypeRequest{TimeType: "all", Justification: "Falta", Abonable: true, Absence: true},
			wantErr: true,
		},
		{
			name:    "all three flags",
			req:     CreateTypeRequest{TimeType: "all", Justification: "Tudo", Abonable: true, Discountable: true, Absence: true},
			wantErr: true,
		},
		{
			name:    "empty justification",
			req:     CreateTypeRequest{TimeType: "all", Justification: ""},
			wantErr: true,
		},
		{
			name:    "unknown time type",
			req:     CreateTypeRequest{TimeType: "coffee_break", Justification: "Pausa"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestJustificationTypeAppliesTo(t *testing.T) {
	all := JustificationType{TimeType: TimeTypeAll}
	if !all.AppliesTo(timeentry.EventClockIn) || !all.AppliesTo(timeentry.EventClockOut) {
		t.Errorf("type scoped to %q should apply to every punch", TimeTypeAll)
	}

	scoped := JustificationType{TimeType: "lunch_start"}
	if !scoped.AppliesTo(timeentry.EventLunchStart) {
		t.Errorf("type scoped to lunch_start should apply to lunch_start")
	}
	if scoped.AppliesTo(timeentry.EventClockIn) {
		t.Errorf("type scoped to lunch_start should not apply to clock_in")
	}
}

func TestJustificationTypeVisibleTo(t *testing.T) {
	tests := []struct {
		name    string
		jt      JustificationType
		role    user.Role
		visible bool
	}{
		{"plain code visible to member", JustificationType{Discountable: true}, user.RoleMember, true},
		{"abonable hidden from member", JustificationType{Abonable: true}, user.RoleMember, false},
		{"absence hidden from member", JustificationType{Absence: true}, user.RoleMember, false},
		{"abonable visible to manager", JustificationType{Abonable: true}, user.RoleManager, true},
		{"absence visible to manager", JustificationType{Absence: true}, user.RoleManager, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.jt.VisibleTo(tt.role); got != tt.visible {
				t.Errorf("VisibleTo(%s) = %v, want %v", tt.role, got, tt.visible)
			}
		})
	}
}

func TestJustificationIsDecided(t *testing.T) {
	pending := Justification{Status: StatusPending}
	if pending.IsDecided() {
		t.Errorf("pending request should not be decided")
	}
	for _, status := range []Status{StatusApproved, StatusRejected} {
		j := Justification{Status: status}
		if !j.IsDecided() {
			t.Errorf("request with status %s should be decided", status)
		}
	}
}
