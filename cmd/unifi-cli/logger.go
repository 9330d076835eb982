// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import "github.com/ksc98/unifly-sub001/internal/logging"

func newLoggerForCLI(mode string) (*logging.Logger, error) {
	if mode == "development" {
		return logging.NewDevelopment()
	}
	return logging.New()
}
