package entity

import "testing"

func TestDeriveRole(t *testing.T) {
	if got := DeriveRole(true); got != RoleAdmin {
		t.Fatalf("DeriveRole(true) = %q, want admin", got)
	}
	if got := DeriveRole(false); got != RoleResident {
		t.Fatalf("DeriveRole(false) = %q, want resident", got)
	}
}

func TestBeforeSaveOverwritesClientRole(t *testing.T) {
	// A forged role on a non-superuser is discarded on save.
	u := &User{Role: RoleAdmin, IsSuperuser: false}
	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave failed: %v", err)
	}
	if u.Role != RoleResident {
		t.Fatalf("role = %q, want resident", u.Role)
	}

	u = &User{Role: RoleResident, IsSuperuser: true}
	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave failed: %v", err)
	}
	if u.Role != RoleAdmin {
		t.Fatalf("role = %q, want admin", u.Role)
	}
}
