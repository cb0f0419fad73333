package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/garajhub/admin-panel/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type adminsFile struct {
	Admins []model.AdminAccount `yaml:"admins"`
}

// LoadAdmins builds the admin registry from ADMINS_FILE, or from the ADMIN_*
// variables when no file is configured.
//
// If neither a file nor ADMIN_PASSWORD_HASH is set, a random password is
// generated for the ADMIN_USERNAME account and returned so the caller can
// print it once. generated is empty in every other case.
func LoadAdmins(cfg *Config) (accounts []model.AdminAccount, generated string, err error) {
	if cfg.AdminsFile != "" {
		accounts, err = readAdminsFile(cfg.AdminsFile)
		return accounts, "", err
	}

	hash := cfg.AdminPasswordHash
	if hash == "" {
		generated = randomPassword()
		b, err := bcrypt.GenerateFromPassword([]byte(generated), cfg.BcryptCost)
		if err != nil {
			return nil, "", fmt.Errorf("hash generated password: %w", err)
		}
		hash = string(b)
	}

	return []model.AdminAccount{{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		FullName:     cfg.AdminFullName,
		Email:        cfg.AdminEmail,
		Role:         "superadmin",
	}}, generated, nil
}

func readAdminsFile(path string) ([]model.AdminAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read admins file: %w", err)
	}

	var f adminsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse admins file: %w", err)
	}
	if len(f.Admins) == 0 {
		return nil, errors.New("admins file lists no accounts")
	}

	for i, a := range f.Admins {
		if a.Username == "" || a.PasswordHash == "" {
			return nil, fmt.Errorf("admins[%d]: username and password_hash are required", i)
		}
		if a.Role == "" {
			f.Admins[i].Role = "admin"
		}
	}
	return f.Admins, nil
}

func randomPassword() string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
