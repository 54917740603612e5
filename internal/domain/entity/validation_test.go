package entity

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid title", title: "A Guide to Gardening", wantErr: false},
		{name: "empty title", title: "", wantErr: true},
		{name: "whitespace only", title: "   ", wantErr: true},
		{name: "title at max length", title: strings.Repeat("t", 255), wantErr: false},
		{name: "title over max length", title: strings.Repeat("t", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "simple username", username: "alice", wantErr: false},
		{name: "username with allowed symbols", username: "alice.b-c+d@e_f", wantErr: false},
		{name: "empty username", username: "", wantErr: true},
		{name: "username with space", username: "alice smith", wantErr: true},
		{name: "username with slash", username: "alice/admin", wantErr: true},
		{name: "username at max length", username: strings.Repeat("a", 150), wantErr: false},
		{name: "username over max length", username: strings.Repeat("a", 151), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "alice@example.com", wantErr: false},
		{name: "empty email", email: "", wantErr: true},
		{name: "missing domain", email: "alice@", wantErr: true},
		{name: "missing at sign", email: "alice.example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCategoryName(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{name: "valid name", category: "Technology", wantErr: false},
		{name: "empty name", category: "", wantErr: true},
		{name: "name at max length", category: strings.Repeat("c", 30), wantErr: false},
		{name: "name over max length", category: strings.Repeat("c", 31), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryName(tt.category)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategoryName(%q) error = %v, wantErr %v", tt.category, err, tt.wantErr)
			}
		})
	}
}
