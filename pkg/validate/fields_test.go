package validate

import (
	"strings"
	"testing"
	"time"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"empty is optional", "", true},
		{"simple", "nurse@ward.example", true},
		{"plus tag", "a.b+tag@sub.domain.org", true},
		{"no at", "nurse.ward.example", false},
		{"no tld", "nurse@ward", false},
		{"short tld", "nurse@ward.e", false},
		{"too long", strings.Repeat("a", 115) + "@b.co", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if (err == nil) != tt.valid {
				t.Errorf("Email(%q) = %v, want valid=%v", tt.email, err, tt.valid)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"empty is optional", "", true},
		{"digits", "0123456789", true},
		{"formatted", "+1 (555) 123-4567", true},
		{"too short", "123456789", false},
		{"letters", "555-CALL-NOW", false},
		{"too long", strings.Repeat("1", 21), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Phone(tt.phone)
			if (err == nil) != tt.valid {
				t.Errorf("Phone(%q) = %v, want valid=%v", tt.phone, err, tt.valid)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain", "Ada", true},
		{"hyphen apostrophe", "O'Neil-Price", true},
		{"period and space", "J. R. Hartley", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"digits", "R2D2", false},
		{"too long", strings.Repeat("a", 101), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Name(tt.value, "First name")
			if (err == nil) != tt.valid {
				t.Errorf("Name(%q) = %v, want valid=%v", tt.value, err, tt.valid)
			}
		})
	}
}

func TestDateOfBirth(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	ancient := time.Now().AddDate(-151, 0, 0).Format("2006-01-02")

	tests := []struct {
		name  string
		dob   string
		valid bool
	}{
		{"plain", "1987-06-05", true},
		{"empty", "", false},
		{"wrong format", "05/06/1987", false},
		{"not a date", "1987-13-40", false},
		{"future", future, false},
		{"older than possible", ancient, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DateOfBirth(tt.dob)
			if (err == nil) != tt.valid {
				t.Errorf("DateOfBirth(%q) = %v, want valid=%v", tt.dob, err, tt.valid)
			}
		})
	}
}

func TestGender(t *testing.T) {
	for _, g := range []string{"Male", "Female", "Other", "male", "female", "other"} {
		if err := Gender(g); err != nil {
			t.Errorf("Gender(%q) = %v", g, err)
		}
	}
	for _, g := range []string{"", "unknown", "MALE"} {
		if err := Gender(g); err == nil {
			t.Errorf("Gender(%q) should fail", g)
		}
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"plain", "nurse_kelly", true},
		{"hyphen", "ward-7", true},
		{"minimum length", "abc", true},
		{"too short", "ab", false},
		{"empty", "", false},
		{"spaces", "nurse kelly", false},
		{"too long", strings.Repeat("a", 81), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username(tt.username)
			if (err == nil) != tt.valid {
				t.Errorf("Username(%q) = %v, want valid=%v", tt.username, err, tt.valid)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all classes", "Str0ng!pass", true},
		{"empty", "", false},
		{"too short", "Ab1!", false},
		{"no upper", "str0ng!pass", false},
		{"no lower", "STR0NG!PASS", false},
		{"no digit", "Strong!pass", false},
		{"no special", "Str0ngpass", false},
		{"too long", "Aa1!" + strings.Repeat("x", 125), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if (err == nil) != tt.valid {
				t.Errorf("Password(%q) = %v, want valid=%v", tt.password, err, tt.valid)
			}
		})
	}
}

func TestPasswordWeakCitesCharacterClasses(t *testing.T) {
	err := Password("weak")
	if err == nil {
		t.Fatal("weak password accepted")
	}
	// Length fails first for "weak"; a long single-class password must name
	// the missing classes.
	err = Password("weakweakweak")
	if err == nil {
		t.Fatal("single-class password accepted")
	}
	msg := err.Error()
	for _, want := range []string{"uppercase", "lowercase", "digit", "special"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not mention %q", msg, want)
		}
	}
}

func TestTextLength(t *testing.T) {
	if err := TextLength("", 10, "Notes"); err != nil {
		t.Errorf("empty optional text rejected: %v", err)
	}
	if err := TextLength(strings.Repeat("x", 10), 10, "Notes"); err != nil {
		t.Errorf("text at limit rejected: %v", err)
	}
	if err := TextLength(strings.Repeat("x", 11), 10, "Notes"); err == nil {
		t.Error("over-limit text accepted")
	}
}

func TestFieldErrorCarriesField(t *testing.T) {
	err := Name("", "Last name")
	fe, ok := err.(FieldError)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if fe.Field != "Last name" {
		t.Errorf("Field = %q", fe.Field)
	}
	if fe.Message != "Last name is required" {
		t.Errorf("Message = %q", fe.Message)
	}
}
