// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RegisterRate < 0 || cfg.Server.RegisterBurst < 0 {
		return fmt.Errorf("%w: negative registration limit", ErrInvalidServerConfigs)
	}

	if cfg.Links.TTL <= 0 {
		return ErrInvalidLinksConfigs
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	return nil
}
