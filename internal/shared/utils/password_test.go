package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse123", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "motdepasse123" {
		t.Fatal("le hash ne doit pas être le mot de passe en clair")
	}

	if !VerifyPassword(hash, "motdepasse123") {
		t.Error("le bon mot de passe doit être accepté")
	}
	if VerifyPassword(hash, "mauvais") {
		t.Error("un mauvais mot de passe doit être refusé")
	}
}

func TestHashPasswordInvalidCost(t *testing.T) {
	// un coût hors bornes retombe sur le coût par défaut
	hash, err := HashPassword("secret", 99)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "secret") {
		t.Error("le hash produit avec le coût par défaut doit rester vérifiable")
	}
}

func TestGenerateTempPassword(t *testing.T) {
	password, err := GenerateTempPassword(12)
	if err != nil {
		t.Fatalf("GenerateTempPassword: %v", err)
	}
	if len(password) != 12 {
		t.Fatalf("longueur attendue 12, obtenu %d", len(password))
	}

	for _, r := range password {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !alnum {
			t.Fatalf("caractère inattendu dans le mot de passe: %q", r)
		}
	}

	other, err := GenerateTempPassword(12)
	if err != nil {
		t.Fatalf("GenerateTempPassword: %v", err)
	}
	if password == other {
		t.Error("deux générations successives ne doivent pas coïncider")
	}
}

func TestGenerateTempPasswordDefaultLength(t *testing.T) {
	password, err := GenerateTempPassword(0)
	if err != nil {
		t.Fatalf("GenerateTempPassword: %v", err)
	}
	if len(password) != 12 {
		t.Fatalf("longueur par défaut attendue 12, obtenu %d", len(password))
	}
}
