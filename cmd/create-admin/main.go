package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/garajhub/admin-panel/internal/config"
	"github.com/garajhub/admin-panel/internal/logger"
	"github.com/garajhub/admin-panel/internal/model"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Prints an admins-file entry for a new panel account. With ADMINS_FILE set,
// the entry is appended to that file as well.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin Account ===")

	// Username
	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		return
	}

	// Full name
	fmt.Print("Enter Full Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 8 {
		fmt.Println("Error: Password must be at least 8 characters")
		return
	}

	// Role
	fmt.Print("Enter Role (default admin): ")
	role, _ := reader.ReadString('\n')
	role = strings.TrimSpace(role)
	if role == "" {
		role = "admin"
	}

	// ─── Logic ─────────────────────────────────────────────────────────

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	entry, err := yaml.Marshal([]model.AdminAccount{{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FullName:     name,
		Email:        email,
		Role:         role,
		CreatedAt:    time.Now().Format("2006-01-02"),
	}})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode admin entry")
	}

	fmt.Println("\nAdd this entry under `admins:` in your admins file:")
	fmt.Println()
	fmt.Print(indent(string(entry)))

	if cfg.AdminsFile == "" {
		return
	}
	if err := appendEntry(cfg.AdminsFile, entry); err != nil {
		log.Fatal().Err(err).Str("file", cfg.AdminsFile).Msg("Failed to update admins file")
	}
	fmt.Printf("\nSuccess! Admin '%s' appended to %s\n", username, cfg.AdminsFile)
}

func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "")
}

// appendEntry creates the file with an `admins:` key when it does not exist yet.
func appendEntry(path string, entry []byte) error {
	_, statErr := os.Stat(path)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	if os.IsNotExist(statErr) {
		if _, err := f.WriteString("admins:\n"); err != nil {
			return err
		}
	}
	_, err = f.WriteString(indent(string(entry)))
	return err
}
