package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to studydeck! Let's configure your training library.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Materials directory.
	materialsPrompt := promptui.Prompt{
		Label:   "Directory holding the training PDFs",
		Default: cfg.MaterialsDir,
	}
	materialsDir, err := materialsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("materials dir: %w", err)
	}
	if _, err := os.Stat(materialsDir); os.IsNotExist(err) {
		fmt.Printf("Note: %s does not exist yet; create it and copy the PDFs before serving.\n", materialsDir)
	}

	// 2. Catalog file.
	catalogPrompt := promptui.Prompt{
		Label:   "Catalog file (leave as is to use the built-in PMP catalog)",
		Default: cfg.CatalogFile,
	}
	catalogFile, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog file: %w", err)
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. CORS.
	corsPrompt := promptui.Select{
		Label: "Allowed origins",
		Items: []string{
			"localhost only",
			"any origin (development)",
		},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("origin selection: %w", err)
	}

	// 5. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	cfg.MaterialsDir = materialsDir
	cfg.CatalogFile = catalogFile
	cfg.Port = port
	cfg.AllowAllOrigins = corsIdx == 1
	if extra := splitAndTrim(excludeStr); len(extra) > 0 {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), extra...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
