package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleTeacher, RoleStudent} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	for _, role := range []string{"admin", "TEACHER", "", "guru"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true", role)
		}
	}
}

func TestPasswordNeverSerialized(t *testing.T) {
	u := UserModel{Name: "Budi", Email: "budi@example.com", Password: "hash-rahasia"}
	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "hash-rahasia") {
		t.Errorf("hash password bocor ke JSON: %s", out)
	}
}
