package service

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(4) // low cost keeps the test fast

	hash, err := hasher.Hash("TestPassword123!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "TestPassword123!" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !hasher.Verify("TestPassword123!", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if hasher.Verify("WrongPassword123!", hash) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(4)

	if hasher.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed stored hash must fail verification, not panic")
	}
	if hasher.Verify("anything", "") {
		t.Fatalf("empty stored hash must fail verification")
	}
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"TestPassword123!", true},
		{"Aa1!xxxx", true},
		{"Sh0rt!", false},           // under 8 chars
		{"alllowercase1!", false},   // no uppercase
		{"ALLUPPERCASE1!", false},   // no lowercase
		{"NoDigitsHere!", false},    // no digit
		{"NoSpecials123", false},    // no special character
		{"", false},
	}

	for _, tc := range cases {
		if got := validPassword(tc.password); got != tc.want {
			t.Errorf("validPassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}
