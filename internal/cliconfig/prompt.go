// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cliconfig

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// PromptForMissing interactively fills in whichever connection fields
// were left blank on the command line, the same field/select vocabulary
// the teacher's AutoForm/config.go settings editor drives, but run
// standalone (huh.Form.Run outside a tea.Program) rather than embedded
// in a Bubble Tea model, since this runs once before the dashboard
// connects rather than as one of its views. The scripted CLI entrypoint
// never calls this: a missing flag there is a hard error, not a prompt.
func (f *Flags) PromptForMissing() error {
	if *f.URL == "" {
		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Controller URL").Placeholder("https://192.168.1.1").Value(f.URL),
			huh.NewSelect[string]().
				Title("Auth strategy").
				Options(
					huh.NewOption("API key", "api_key"),
					huh.NewOption("Username/password", "credentials"),
					huh.NewOption("Hybrid (API key + credentials)", "hybrid"),
					huh.NewOption("Cloud", "cloud"),
				).
				Value(f.Auth),
		)).Run(); err != nil {
			return fmt.Errorf("cliconfig: interactive prompt failed: %w", err)
		}
	}

	var fields []huh.Field
	switch *f.Auth {
	case "api_key":
		fields = append(fields, missingPassword("API key", f.ApiKey)...)
	case "credentials":
		fields = append(fields, missingText("Username", f.Username)...)
		fields = append(fields, missingPassword("Password", f.Password)...)
	case "hybrid":
		fields = append(fields, missingPassword("API key", f.ApiKey)...)
		fields = append(fields, missingText("Username", f.Username)...)
		fields = append(fields, missingPassword("Password", f.Password)...)
	case "cloud":
		fields = append(fields, missingPassword("API key", f.ApiKey)...)
		fields = append(fields, missingText("Cloud host ID", f.HostID)...)
	}
	if len(fields) == 0 {
		return nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return fmt.Errorf("cliconfig: interactive prompt failed: %w", err)
	}
	return nil
}

func missingText(title string, value *string) []huh.Field {
	if *value != "" {
		return nil
	}
	return []huh.Field{huh.NewInput().Title(title).Value(value)}
}

func missingPassword(title string, value *string) []huh.Field {
	if *value != "" {
		return nil
	}
	return []huh.Field{huh.NewInput().Title(title).EchoMode(huh.EchoModePassword).Value(value)}
}
