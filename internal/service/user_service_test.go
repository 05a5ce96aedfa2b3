package service_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/repository"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/testutil"
)

// Well-known fernet test key (32 zero-ish bytes, base64). Never used outside tests.
const testFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

// TestRegisterUser tests user registration.
//
// WHY: Registration is the only write path for users; IDs must come out in
// the documented six-character format and must actually be persisted.
func TestRegisterUser(t *testing.T) {
	idFormat := regexp.MustCompile(`^[a-z0-9]{6}$`)

	t.Run("creates a user with a well-formed ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestUserService(t, db)

		resp, err := svc.RegisterUser()
		if err != nil {
			t.Fatalf("Failed to register user: %v", err)
		}

		if !idFormat.MatchString(resp.UserID) {
			t.Errorf("Expected six lowercase alphanumerics, got %q", resp.UserID)
		}
		testutil.AssertRowCount(t, db, "users", 1)
	})

	t.Run("issues no token without a signing key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestUserService(t, db)

		resp, err := svc.RegisterUser()
		if err != nil {
			t.Fatalf("Failed to register user: %v", err)
		}

		if resp.Token != "" {
			t.Errorf("Expected empty token, got %q", resp.Token)
		}
	})

	t.Run("issues a verifiable token when a key is configured", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		svc, err := service.NewUserService(repository.NewUserRepository(db), testFernetKey)
		if err != nil {
			t.Fatalf("Failed to create user service: %v", err)
		}

		resp, err := svc.RegisterUser()
		if err != nil {
			t.Fatalf("Failed to register user: %v", err)
		}
		if resp.Token == "" {
			t.Fatal("Expected a token, got none")
		}

		key, err := fernet.DecodeKey(testFernetKey)
		if err != nil {
			t.Fatalf("Failed to decode key: %v", err)
		}

		msg := fernet.VerifyAndDecrypt([]byte(resp.Token), time.Hour, []*fernet.Key{key})
		if string(msg) != resp.UserID {
			t.Errorf("Expected token to sign %q, got %q", resp.UserID, string(msg))
		}
	})

	t.Run("rejects a malformed signing key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		if _, err := service.NewUserService(repository.NewUserRepository(db), "not-a-key"); err == nil {
			t.Error("Expected error for malformed key, got nil")
		}
	})

	t.Run("generates distinct IDs across registrations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestUserService(t, db)

		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			resp, err := svc.RegisterUser()
			if err != nil {
				t.Fatalf("Failed to register user: %v", err)
			}
			if seen[resp.UserID] {
				t.Fatalf("Duplicate user ID generated: %s", resp.UserID)
			}
			seen[resp.UserID] = true
		}
		testutil.AssertRowCount(t, db, "users", 5)
	})
}

// TestUserExists tests existence lookups.
func TestUserExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestUserService(t, db)

	user := testutil.CreateUser(t, db, "abc123")

	exists, err := svc.Exists(user.UserID)
	if err != nil {
		t.Fatalf("Failed to check user: %v", err)
	}
	if !exists {
		t.Error("Expected registered user to exist")
	}

	exists, err = svc.Exists("zzz999")
	if err != nil {
		t.Fatalf("Failed to check user: %v", err)
	}
	if exists {
		t.Error("Expected unknown user to not exist")
	}
}
